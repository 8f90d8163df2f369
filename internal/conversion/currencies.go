package conversion

import (
	"slices"
	"strings"
)

// Currencies is the sorted list of codes offered by the form. It is not used for validation.
type Currencies struct {
	codes []string // read only
}

func (c *Currencies) Codes() []string {
	return slices.Clone(c.codes)
}

// NewCurrencies normalizes, sorts and de-duplicates codes. Extra codes (e.g. the form defaults)
// are always included so a pre-selected value is never missing from the list.
func NewCurrencies(codes []string, extra ...string) *Currencies {
	all := make([]string, 0, len(codes)+len(extra))
	for _, code := range slices.Concat(codes, extra) {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			all = append(all, code)
		}
	}
	slices.Sort(all)
	return &Currencies{codes: slices.Compact(all)}
}
