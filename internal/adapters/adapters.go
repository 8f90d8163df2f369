package adapters

import (
	"context"

	"fxconvert/internal/domain"
)

type RateClient interface {
	GetExchangeRates(ctx context.Context, base string) (domain.RateTable, error)
}
