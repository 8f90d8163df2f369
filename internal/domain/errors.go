package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey       = errors.New("api key is not configured, set EXCHANGE_RATE_API_KEY")
	ErrUpstreamUnavailable = errors.New("no response received from the currency exchange api, check your internet connection")
	ErrUnknownCurrency     = errors.New("currency code not found")
)

// APIError is returned when the exchange rate api answers but reports a failure,
// either through a non-2xx status or through its own result field.
type APIError struct {
	StatusCode int
	ErrorType  string
}

func (e *APIError) Error() string {
	if e.StatusCode < 200 || e.StatusCode >= 300 {
		return fmt.Sprintf("could not fetch exchange rates from api, status %d: %s", e.StatusCode, e.ErrorType)
	}
	return fmt.Sprintf("failed to fetch exchange rates: %s, check your api key and currency codes", e.ErrorType)
}
