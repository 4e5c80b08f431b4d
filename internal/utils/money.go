// internal/utils/money.go
package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CostLabelFree          = "Free"
	CostLabelContactVendor = "Contact Vendor"
)

// ParseCost keeps only digits and dots from raw. Empty or unparseable input
// yields nil.
func ParseCost(raw string) *float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)
	if cleaned == "" {
		return nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	v, _ := d.Round(2).Float64()
	return &v
}

// FormatCost renders a plan cost: nil is "Contact Vendor", zero is "Free".
func FormatCost(cost *float64, places int32) string {
	if cost == nil {
		return CostLabelContactVendor
	}
	d := decimal.NewFromFloat(*cost)
	if d.IsZero() {
		return CostLabelFree
	}
	return "$" + d.StringFixed(places)
}
