package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Adjuster applies multiplicative surcharges for add-on textures and finishes.
type Adjuster struct {
	factors map[string]decimal.Decimal
}

// NewAdjuster builds an adjuster over an option name -> factor table. The table is copied.
func NewAdjuster(factors map[string]decimal.Decimal) *Adjuster {
	a := &Adjuster{factors: make(map[string]decimal.Decimal, len(factors))}
	for name, factor := range factors {
		a.factors[name] = factor
	}
	return a
}

// Select picks the add-on code for a variant. The texture wins when it names a known
// option; the finish is only consulted otherwise.
func (a *Adjuster) Select(texture, finish string) (string, bool) {
	texture = strings.TrimSpace(texture)
	if _, ok := a.factors[texture]; ok {
		return texture, true
	}
	finish = strings.TrimSpace(finish)
	if _, ok := a.factors[finish]; ok {
		return finish, true
	}
	return "", false
}

// Factor returns the multiplier for code, or 1 when the code is not a known option.
func (a *Adjuster) Factor(code string) decimal.Decimal {
	if factor, ok := a.factors[code]; ok {
		return factor
	}
	return decimal.NewFromInt(1)
}

// Apply returns ceil(base * factor) together with the factor used. An unknown code
// leaves base untouched with a factor of 1.
func (a *Adjuster) Apply(base decimal.Decimal, code string) (decimal.Decimal, decimal.Decimal) {
	factor, ok := a.factors[code]
	if !ok {
		return base, decimal.NewFromInt(1)
	}
	return Ceil(base.Mul(factor)), factor
}
