package pricing

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Columns names the catalog columns the engine reads from a row.
type Columns struct {
	Listing     string `yaml:"listing"`
	ListingType string `yaml:"listing_type"`
	SKU         string `yaml:"sku"`
	Material    string `yaml:"material"`
	Texture     string `yaml:"texture"`
	Finish      string `yaml:"finish"`
	RetailPrice string `yaml:"retail_price"`
	Weight      string `yaml:"weight"`
}

// Tables is the static configuration the engine is built from. It is read once at
// startup and never modified afterwards.
type Tables struct {
	Materials map[string]Class
	AddOns    map[string]decimal.Decimal
	Bands     []Band
	Columns   Columns
}

// DefaultColumns returns the column names used by the product sheet.
func DefaultColumns() Columns {
	return Columns{
		Listing:     "序号",
		ListingType: "Listing Type",
		SKU:         "PSS SKU",
		Material:    "材质 - 简写",
		Texture:     "纹路",
		Finish:      "封层",
		RetailPrice: "Retail Price",
		Weight:      "Shipping Weight",
	}
}

// DefaultTables returns the built-in classification, add-on and markup tables.
func DefaultTables() Tables {
	return Tables{
		Materials: map[string]Class{
			"FRP":                          ClassFRPOrCarbon,
			"FRP or Carbon":                ClassFRPOrCarbon,
			"Full FRP":                     ClassFRPOrCarbon,
			"Pre-preg Carbon":              ClassFullCarbon,
			"Vacuumed Carbon":              ClassFullCarbon,
			"Partial Pre-preg Carbon":      ClassPartialCarbon,
			"Partial Vacuumed Carbon":      ClassPartialCarbon,
			"Single-sided Pre-preg Carbon": ClassSingleSidedCarbon,
			"Single-sided Vacuumed Carbon": ClassSingleSidedCarbon,
			"Double-sided Pre-preg Carbon": ClassDoubleSidedCarbon,
			"Double-sided Vacuumed Carbon": ClassDoubleSidedCarbon,
		},
		AddOns: map[string]decimal.Decimal{
			"Matte":                             decimal.RequireFromString("1.1"),
			"Forged":                            decimal.RequireFromString("1.2"),
			"Honeycomb":                         decimal.RequireFromString("1.2"),
			"Forged and Woven Carbon Fiber Mix": decimal.RequireFromString("1.2"),
		},
		Bands:   DefaultBands(),
		Columns: DefaultColumns(),
	}
}

// Validate reports configuration that would make the engine misbehave.
func (t Tables) Validate() error {
	if len(t.Materials) == 0 {
		return fmt.Errorf("materials table is empty")
	}
	for name, factor := range t.AddOns {
		if !factor.IsPositive() {
			return fmt.Errorf("add-on %q: factor must be positive", name)
		}
	}
	if t.Columns.SKU == "" || t.Columns.Material == "" || t.Columns.RetailPrice == "" {
		return fmt.Errorf("columns: sku, material and retail_price are required")
	}
	return validateBands(t.Bands)
}

type tablesFile struct {
	Materials map[string]string `yaml:"materials"`
	AddOns    map[string]string `yaml:"add_ons"`
	CompareAt []struct {
		Below  string `yaml:"below"`
		Markup string `yaml:"markup"`
	} `yaml:"compare_at"`
	Columns Columns `yaml:"columns"`
}

// LoadTables reads a YAML file and overlays it on DefaultTables. Each section present
// in the file replaces the built-in section; column names are overridden one by one.
func LoadTables(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	return ParseTables(data)
}

// ParseTables is LoadTables for an in-memory document.
func ParseTables(data []byte) (Tables, error) {
	var file tablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Tables{}, fmt.Errorf("parse tables file: %w", err)
	}

	tables := DefaultTables()
	if len(file.Materials) > 0 {
		tables.Materials = make(map[string]Class, len(file.Materials))
		for code, class := range file.Materials {
			tables.Materials[code] = Class(class)
		}
	}
	if len(file.AddOns) > 0 {
		tables.AddOns = make(map[string]decimal.Decimal, len(file.AddOns))
		for name, raw := range file.AddOns {
			factor, err := decimal.NewFromString(raw)
			if err != nil {
				return Tables{}, fmt.Errorf("add-on %q: %w", name, err)
			}
			tables.AddOns[name] = factor
		}
	}
	if len(file.CompareAt) > 0 {
		tables.Bands = make([]Band, 0, len(file.CompareAt))
		for i, raw := range file.CompareAt {
			var (
				band Band
				err  error
			)
			if raw.Below != "" {
				if band.Below, err = decimal.NewFromString(raw.Below); err != nil {
					return Tables{}, fmt.Errorf("compare_at[%d].below: %w", i, err)
				}
			}
			if band.Markup, err = decimal.NewFromString(raw.Markup); err != nil {
				return Tables{}, fmt.Errorf("compare_at[%d].markup: %w", i, err)
			}
			tables.Bands = append(tables.Bands, band)
		}
	}
	overlayColumns(&tables.Columns, file.Columns)

	if err := tables.Validate(); err != nil {
		return Tables{}, fmt.Errorf("validate tables: %w", err)
	}
	return tables, nil
}

func overlayColumns(dst *Columns, src Columns) {
	set := func(field *string, value string) {
		if value != "" {
			*field = value
		}
	}
	set(&dst.Listing, src.Listing)
	set(&dst.ListingType, src.ListingType)
	set(&dst.SKU, src.SKU)
	set(&dst.Material, src.Material)
	set(&dst.Texture, src.Texture)
	set(&dst.Finish, src.Finish)
	set(&dst.RetailPrice, src.RetailPrice)
	set(&dst.Weight, src.Weight)
}
