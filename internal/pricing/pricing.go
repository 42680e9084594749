package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	unknownSKU    = "Unknown SKU"
	weightMissing = "Weight: N/A"

	minPriceExponent = -8
	maxPriceExponent = 15
)

var maxPrice = decimal.New(1, 15)

// Row is a single variant row of a listing. The engine only reads from it.
type Row interface {
	Get(column string) (string, bool)
}

// Result is the priced output for one variant row.
type Result struct {
	SKU       string `json:"sku"`
	Class     Class  `json:"class"`
	AddOn     string `json:"add_on,omitempty"`
	Price     int64  `json:"price"`
	CompareAt int64  `json:"compare_at"`
	Comment   string `json:"comment"`
}

// Line renders the result as "SKU : price : compare-at".
func (r Result) Line() string {
	return fmt.Sprintf("%s : %d : %d", r.SKU, r.Price, r.CompareAt)
}

// Annotation is the trailing trace comment printed after Line.
func (r Result) Annotation() string {
	return " # " + r.Comment
}

// Sheet groups the full pricing output of a listing.
type Sheet struct {
	Results   []Result  `json:"results"`
	Weights   []string  `json:"weights"`
	Inference Inference `json:"inference"`
}

// WeightInfo joins the known shipping weights, or reports them as not available.
func (s Sheet) WeightInfo() string {
	if len(s.Weights) == 0 {
		return weightMissing
	}
	return "Weight: " + strings.Join(s.Weights, ", ")
}

// Engine prices listings from immutable tables. It is safe for concurrent use.
type Engine struct {
	classifier *Classifier
	adjuster   *Adjuster
	bands      []Band
	columns    Columns
}

// NewEngine builds an engine from tables. Tables are expected to be validated.
func NewEngine(t Tables) *Engine {
	bands := make([]Band, len(t.Bands))
	copy(bands, t.Bands)
	return &Engine{
		classifier: NewClassifier(t.Materials),
		adjuster:   NewAdjuster(t.AddOns),
		bands:      bands,
		columns:    t.Columns,
	}
}

// Classify exposes the engine's material classifier.
func (e *Engine) Classify(raw string) Class {
	return e.classifier.Classify(raw)
}

// Infer runs the inference cascade over every class the engine knows.
func (e *Engine) Infer(ledger Ledger) Inference {
	return Infer(e.classifier.Classes(), ledger)
}

// Ledger collects the direct price per class from a listing's rows.
func (e *Engine) Ledger(rows []Row) Ledger {
	ledger := make(Ledger)
	for _, row := range rows {
		class := e.classifier.Classify(value(row, e.columns.Material))
		ledger.Record(class, ParsePrice(value(row, e.columns.RetailPrice)))
	}
	return ledger
}

// PriceListing computes the sale and compare-at price of every row of one listing.
// Rows are expected to share a listing; malformed prices degrade to inference.
func (e *Engine) PriceListing(rows []Row) Sheet {
	inference := e.Infer(e.Ledger(rows))
	sheet := Sheet{
		Results:   make([]Result, 0, len(rows)),
		Weights:   []string{},
		Inference: inference,
	}

	var (
		skuOrder []string
		weights  = make(map[string]string)
	)
	for _, row := range rows {
		result := e.priceRow(row, inference)
		sheet.Results = append(sheet.Results, result)

		if _, seen := weights[result.SKU]; !seen {
			skuOrder = append(skuOrder, result.SKU)
		}
		weights[result.SKU] = value(row, e.columns.Weight)
	}

	for _, sku := range skuOrder {
		if w := weights[sku]; w != "" {
			sheet.Weights = append(sheet.Weights, w)
		}
	}
	return sheet
}

func (e *Engine) priceRow(row Row, inference Inference) Result {
	result := Result{
		SKU:   value(row, e.columns.SKU),
		Class: e.classifier.Classify(value(row, e.columns.Material)),
	}
	if result.SKU == "" {
		result.SKU = unknownSKU
	}

	var price decimal.Decimal
	if direct := ParsePrice(value(row, e.columns.RetailPrice)); direct.Valid {
		price = direct.Decimal
		result.Comment = fmt.Sprintf("%d (direct)", price.IntPart())
	} else {
		price = inference.Prices[result.Class]
		result.Comment = inference.Trace[result.Class]
		if result.Comment == "" {
			result.Comment = defaultTrace
		}
	}

	if code, ok := e.adjuster.Select(value(row, e.columns.Texture), value(row, e.columns.Finish)); ok {
		base := price
		var factor decimal.Decimal
		price, factor = e.adjuster.Apply(base, code)
		result.AddOn = code
		result.Comment = fmt.Sprintf("%d * %s = %d", base.IntPart(), factor.String(), price.IntPart())
	}

	result.Price = Finalize(price)
	result.CompareAt = Finalize(CompareAt(e.bands, price))
	return result
}

// ParsePrice reads a quoted retail price. Empty or non-numeric input is unknown, and so
// is any value outside the range a retail price can take.
func ParsePrice(raw string) decimal.NullDecimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}
	}
	if d.IsZero() {
		return decimal.NewNullDecimal(decimal.Zero)
	}
	// Bound the exponent first; comparing values with extreme exponents rescales them.
	if exp := d.Exponent(); exp < minPriceExponent || exp > maxPriceExponent {
		return decimal.NullDecimal{}
	}
	if d.Abs().GreaterThanOrEqual(maxPrice) {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

func value(row Row, column string) string {
	if column == "" {
		return ""
	}
	v, ok := row.Get(column)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}
