package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable maps a currency code to the rate of one unit of the base currency in that code.
type RateTable map[string]decimal.Decimal

type ConversionRequest struct {
	Amount decimal.Decimal
	From   string
	To     string
}

type ConversionResult struct {
	Request   ConversionRequest
	Converted decimal.Decimal
}

// String formats the result the way the form displays it, e.g. "100.00 USD = 92.00 EUR".
func (r ConversionResult) String() string {
	return fmt.Sprintf("%s %s = %s %s",
		r.Request.Amount.StringFixed(2), r.Request.From,
		r.Converted.StringFixed(2), r.Request.To,
	)
}
