package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a decoded JSON value into an exact decimal price.
// Strings are parsed verbatim; float64 (the encoding/json default for numbers)
// goes through NewFromFloat, which yields the shortest exact representation.
func ParsePrice(v interface{}) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch val := v.(type) {
	case decimal.Decimal:
		d = val
	case float64:
		d = decimal.NewFromFloat(val)
	case int:
		d = decimal.NewFromInt(int64(val))
	case int64:
		d = decimal.NewFromInt(val)
	case string:
		parsed, err := decimal.NewFromString(strings.TrimSpace(val))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, val)
		}
		d = parsed
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidPrice, v)
	}
	if err := ValidatePrice(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ValidatePrice rejects negative prices.
func ValidatePrice(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, d.String())
	}
	return nil
}

// ValidateBrandName rejects blank names and returns the trimmed value.
func ValidateBrandName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", ErrInvalidBrandName
	}
	return trimmed, nil
}
