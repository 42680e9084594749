package pricing

import "github.com/shopspring/decimal"

var finalizeOffset = decimal.RequireFromString("0.99")

// Ceil rounds an intermediate value up to the next integer.
func Ceil(x decimal.Decimal) decimal.Decimal {
	return x.Ceil()
}

// Finalize converts a price to the emitted whole number: x + 0.99, truncated toward zero.
// An exact integer is left unchanged (100 -> 100) while any fraction rounds up (100.5 -> 101).
func Finalize(x decimal.Decimal) int64 {
	return x.Add(finalizeOffset).IntPart()
}
