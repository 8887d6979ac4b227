package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses an amount string into a decimal.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return d, nil
}

// IsValidAmount reports whether amount parses as a strictly positive number.
func IsValidAmount(amount string) bool {
	d, err := decimal.NewFromString(amount)
	return err == nil && d.IsPositive()
}

// FormatAmount renders an amount with a fixed number of decimal places.
func FormatAmount(amount float64, decimals int32) string {
	return decimal.NewFromFloat(amount).StringFixed(decimals)
}

// ToSmallestUnit converts an amount to its smallest-unit representation,
// e.g. BTC to satoshis with decimals=8.
func ToSmallestUnit(amount float64, decimals int32) int64 {
	return decimal.NewFromFloat(amount).Shift(decimals).IntPart()
}

// FromSmallestUnit converts a smallest-unit amount back to its standard
// representation.
func FromSmallestUnit(amount int64, decimals int32) float64 {
	f, _ := decimal.NewFromInt(amount).Shift(-decimals).Float64()
	return f
}
