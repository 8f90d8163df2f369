package conversion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fxconvert/internal/adapters"
	"fxconvert/internal/domain"
)

const (
	OutcomeConverted       = "converted"
	OutcomeSameCurrency    = "same_currency"
	OutcomeMissingAPIKey   = "missing_api_key"
	OutcomeUnavailable     = "unavailable"
	OutcomeAPIError        = "api_error"
	OutcomeUnknownCurrency = "unknown_currency"
	OutcomeFailed          = "failed"
)

type outcomeObserver interface {
	ObserveConversion(outcome string)
}

type Service struct {
	rateClient adapters.RateClient
	observer   outcomeObserver
}

// Convert converts req.Amount from req.From to req.To using a freshly fetched rate table.
// Identical currencies short-circuit without any network call. The product is not rounded.
func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest) (domain.ConversionResult, error) {
	req.From = strings.ToUpper(req.From)
	req.To = strings.ToUpper(req.To)

	if req.From == req.To {
		s.observe(OutcomeSameCurrency)
		return domain.ConversionResult{Request: req, Converted: req.Amount}, nil
	}

	rates, err := s.rateClient.GetExchangeRates(ctx, req.From)
	if err != nil {
		s.observe(outcomeOf(err))
		return domain.ConversionResult{}, fmt.Errorf("conversion failed: %w", err)
	}

	// A zero rate is as unusable as a missing one.
	rate, ok := rates[req.To]
	if !ok || rate.IsZero() {
		s.observe(OutcomeUnknownCurrency)
		return domain.ConversionResult{}, fmt.Errorf("conversion failed: %w: '%s'", domain.ErrUnknownCurrency, req.To)
	}

	s.observe(OutcomeConverted)
	return domain.ConversionResult{Request: req, Converted: req.Amount.Mul(rate)}, nil
}

func (s *Service) observe(outcome string) {
	if s.observer != nil {
		s.observer.ObserveConversion(outcome)
	}
}

func outcomeOf(err error) string {
	var apiErr *domain.APIError
	switch {
	case errors.Is(err, domain.ErrMissingAPIKey):
		return OutcomeMissingAPIKey
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return OutcomeUnavailable
	case errors.As(err, &apiErr):
		return OutcomeAPIError
	default:
		return OutcomeFailed
	}
}

func NewService(rateClient adapters.RateClient, observer outcomeObserver) *Service {
	return &Service{rateClient: rateClient, observer: observer}
}
