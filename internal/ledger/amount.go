package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a non-negative decimal string into cents.
// Format examples: "12.34" -> 1234, "7" -> 700, "0.5" -> 50.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}

	if d.IsNegative() || d.Exponent() < -2 {
		return 0, ErrInvalidAmount
	}

	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() || cents.GreaterThan(decimal.NewFromInt(maxCents)) {
		return 0, ErrInvalidAmount
	}

	return cents.IntPart(), nil
}

const maxCents = 1<<63 - 1
