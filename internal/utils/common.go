package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a rand amount the way the gateway expects: two decimals, no symbol.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount parses a configured or posted amount; blank is an error.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	return decimal.NewFromString(s)
}

// MustAmount is ParseAmount for values validated at startup.
func MustAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		panic(fmt.Sprintf("invalid amount %q: %v", s, err))
	}
	return d
}

func MapToJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
