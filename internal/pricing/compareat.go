package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Band is one step of the compare-at markup schedule. A band applies to prices below
// Below; the last band has a zero Below and covers everything above the previous one.
type Band struct {
	Below  decimal.Decimal
	Markup decimal.Decimal
}

// DefaultBands is the stock markup schedule.
func DefaultBands() []Band {
	return []Band{
		{Below: decimal.NewFromInt(500), Markup: decimal.NewFromInt(60)},
		{Below: decimal.NewFromInt(1600), Markup: decimal.NewFromInt(100)},
		{Below: decimal.NewFromInt(2800), Markup: decimal.NewFromInt(200)},
		{Markup: decimal.NewFromInt(350)},
	}
}

// CompareAt computes the anchor price for an already adjusted sale price.
// A zero price has no anchor.
func CompareAt(bands []Band, price decimal.Decimal) decimal.Decimal {
	if price.IsZero() {
		return decimal.Zero
	}
	for _, band := range bands {
		if band.Below.IsZero() || price.LessThan(band.Below) {
			return price.Add(band.Markup)
		}
	}
	return price
}

func validateBands(bands []Band) error {
	if len(bands) == 0 {
		return fmt.Errorf("compare-at bands: at least one band is required")
	}
	prev := decimal.Zero
	for i, band := range bands {
		last := i == len(bands)-1
		if band.Below.IsZero() != last {
			return fmt.Errorf("compare-at bands: only the last band may be open-ended (band %d)", i)
		}
		if !last && !band.Below.GreaterThan(prev) {
			return fmt.Errorf("compare-at bands: upper bounds must increase (band %d)", i)
		}
		if band.Markup.IsNegative() {
			return fmt.Errorf("compare-at bands: markup must not be negative (band %d)", i)
		}
		prev = band.Below
	}
	return nil
}
