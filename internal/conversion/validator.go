package conversion

import (
	"errors"
	"math"
	"strings"

	"fxconvert/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	maxAmountLen = 64
	// Amounts with more integer digits than this overflow a float64.
	maxMagnitude = 309
	// Amounts below 10^-minMagnitude underflow a float64 and are treated as zero.
	minMagnitude = 340
)

var (
	ErrAmountInvalid = errors.New("please enter a valid amount")
	ErrFromRequired  = errors.New("please select the currency to convert from")
	ErrToRequired    = errors.New("please select the currency to convert to")
)

// ParseRequest turns raw form input into a ConversionRequest.
// Only the amount is checked numerically; currency codes just have to be present.
func ParseRequest(amount, from, to string) (domain.ConversionRequest, error) {
	value, err := parseAmount(amount)
	if err != nil {
		return domain.ConversionRequest{}, err
	}

	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" {
		return domain.ConversionRequest{}, ErrFromRequired
	}
	if to == "" {
		return domain.ConversionRequest{}, ErrToRequired
	}

	return domain.ConversionRequest{Amount: value, From: from, To: to}, nil
}

// parseAmount accepts only numbers a float64 can hold. The magnitude is checked from the
// digit count and exponent before anything expands the value.
func parseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) > maxAmountLen {
		return decimal.Decimal{}, ErrAmountInvalid
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, ErrAmountInvalid
	}

	magnitude := value.NumDigits() + int(value.Exponent())
	switch {
	case magnitude > maxMagnitude:
		return decimal.Decimal{}, ErrAmountInvalid
	case magnitude < -minMagnitude:
		return decimal.Zero, nil
	case magnitude == maxMagnitude && math.IsInf(value.InexactFloat64(), 0):
		return decimal.Decimal{}, ErrAmountInvalid
	}
	return value, nil
}
