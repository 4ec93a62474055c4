package normalize

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const maxDecimals = 18

var maxAmount = decimal.NewFromInt(math.MaxInt64)

// Units converts coin amounts reported by the node into integer smallest units.
type Units struct {
	decimals int32
}

// NewUnits returns a converter for a coin with the given number of decimal places.
func NewUnits(decimals int32) (Units, error) {
	if decimals < 0 || decimals > maxDecimals {
		return Units{}, fmt.Errorf("decimals %d out of range [0, %d]", decimals, maxDecimals)
	}
	return Units{decimals: decimals}, nil
}

// ToSmallest scales value by the unit divisor and rounds once to the nearest integer.
func (u Units) ToSmallest(value float64) (int64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, value)
	}
	amount := decimal.NewFromFloat(value).Shift(u.decimals).Round(0)
	if amount.IsNegative() {
		return 0, fmt.Errorf("%w: negative value %v", ErrInvalidAmount, value)
	}
	if amount.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %v overflows int64 smallest units", ErrInvalidAmount, value)
	}
	return amount.IntPart(), nil
}
