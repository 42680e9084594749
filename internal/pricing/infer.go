package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const defaultTrace = "0 (default)"

var (
	doubleSidedRatio = decimal.RequireFromString("1.4")
	frpRatio         = decimal.RequireFromString("0.75")
)

// Ledger holds the directly quoted price per class for one listing. A class that is
// present but not Valid was seen without a usable price.
type Ledger map[Class]decimal.NullDecimal

// Record notes a row's quote for class. The first valid price recorded for a class is
// kept; later quotes never overwrite it.
func (l Ledger) Record(class Class, price decimal.NullDecimal) {
	current, seen := l[class]
	if !seen || (price.Valid && !current.Valid) {
		l[class] = price
	}
}

// Inference is the full price table for a listing after the cascade ran.
type Inference struct {
	Prices map[Class]decimal.Decimal `json:"prices"`
	Trace  map[Class]string          `json:"trace"`
	// Rule names the cascade rule that fired, empty when none did.
	Rule string `json:"rule,omitempty"`
}

type ratioOp int

const (
	opMul ratioOp = iota
	opDiv
)

// derivation computes target from source with a fixed ratio.
type derivation struct {
	target Class
	source Class
	op     ratioOp
	ratio  decimal.Decimal
}

func (d derivation) apply(base decimal.Decimal) decimal.Decimal {
	if d.op == opDiv {
		return Ceil(base.Div(d.ratio))
	}
	return Ceil(base.Mul(d.ratio))
}

func (d derivation) trace(base, out decimal.Decimal) string {
	symbol := "*"
	if d.op == opDiv {
		symbol = "/"
	}
	return fmt.Sprintf("%d %s %s = %s", base.IntPart(), symbol, d.ratio.String(), out.String())
}

// rule fires when its basis class has a direct price. Steps run in order and read
// from the working table, so a later step can chain off an earlier derived value.
type rule struct {
	name  string
	basis Class
	steps []derivation
}

// cascade is evaluated top to bottom; the first rule whose basis is known wins.
var cascade = []rule{
	{
		name:  "single-sided basis",
		basis: ClassSingleSidedCarbon,
		steps: []derivation{
			{target: ClassDoubleSidedCarbon, source: ClassSingleSidedCarbon, op: opMul, ratio: doubleSidedRatio},
			{target: ClassFRPOrCarbon, source: ClassSingleSidedCarbon, op: opMul, ratio: frpRatio},
		},
	},
	{
		name:  "double-sided basis",
		basis: ClassDoubleSidedCarbon,
		steps: []derivation{
			{target: ClassSingleSidedCarbon, source: ClassDoubleSidedCarbon, op: opDiv, ratio: doubleSidedRatio},
			{target: ClassFRPOrCarbon, source: ClassSingleSidedCarbon, op: opMul, ratio: frpRatio},
		},
	},
}

// Infer fills in prices for every class in classes and in the ledger. Direct prices are
// kept as quoted, the first matching cascade rule derives what it can, and anything left
// over resolves to 0. Infer does not modify the ledger.
func Infer(classes []Class, ledger Ledger) Inference {
	result := Inference{
		Prices: make(map[Class]decimal.Decimal),
		Trace:  make(map[Class]string),
	}

	known := make(map[Class]decimal.Decimal)
	for class, price := range ledger {
		if price.Valid {
			known[class] = price.Decimal
			result.Prices[class] = price.Decimal
			result.Trace[class] = fmt.Sprintf("%d (direct)", price.Decimal.IntPart())
		}
	}

	if len(known) > 0 {
		if r, ok := matchRule(known); ok {
			result.Rule = r.name
			for _, step := range r.steps {
				if _, direct := known[step.target]; direct {
					continue
				}
				base, ok := result.Prices[step.source]
				if !ok {
					continue
				}
				out := step.apply(base)
				result.Prices[step.target] = out
				result.Trace[step.target] = step.trace(base, out)
			}
		}
	}

	fill := func(class Class) {
		if _, ok := result.Prices[class]; !ok {
			result.Prices[class] = decimal.Zero
			result.Trace[class] = defaultTrace
		}
	}
	for _, class := range classes {
		fill(class)
	}
	for class := range ledger {
		fill(class)
	}
	return result
}

func matchRule(known map[Class]decimal.Decimal) (rule, bool) {
	for _, r := range cascade {
		if _, ok := known[r.basis]; ok {
			return r, true
		}
	}
	return rule{}, false
}
