package helpers

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange is returned when a dollar amount does not fit in int64 cents
var ErrAmountOutOfRange = errors.New("amount out of range")

var (
	centsPerDollar = decimal.NewFromInt(100)
	maxCents       = decimal.NewFromInt(math.MaxInt64)
	minCents       = decimal.NewFromInt(math.MinInt64)
)

// DollarsToCents converts a dollar amount to integer cents, rounding half away from zero.
func DollarsToCents(dollars decimal.Decimal) (int64, error) {
	cents := dollars.Mul(centsPerDollar).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrAmountOutOfRange
	}
	return cents.IntPart(), nil
}
