package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Simplici0/listing-pricer/internal/pricing"
)

// ErrUnsupportedListingType is returned for listings the pricer does not handle.
var ErrUnsupportedListingType = errors.New("unsupported listing type")

var supportedListingTypes = map[string]struct{}{
	"Single Product - Multiple Material Option":               {},
	"Bundle Product - Multiple Material Option":               {},
	"Joint Listing (Same Design for Different Model or Year)": {},
	"Multiple Listing": {},
}

// Cell is one column of a variant row.
type Cell struct {
	Column string `json:"column"`
	Value  string `json:"value"`
}

// Row is a variant row of the product sheet. Column order is kept as imported.
type Row struct {
	cells []Cell
	index map[string]int
}

// NewRow builds a row from cells. A repeated column keeps its first position and its last value.
func NewRow(cells ...Cell) Row {
	r := Row{index: make(map[string]int, len(cells))}
	for _, c := range cells {
		r.Set(c.Column, c.Value)
	}
	return r
}

// Set assigns value to column, appending the column when it is new.
func (r *Row) Set(column, value string) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[column]; ok {
		r.cells[i].Value = value
		return
	}
	r.index[column] = len(r.cells)
	r.cells = append(r.cells, Cell{Column: column, Value: value})
}

// Get returns the raw value of column.
func (r Row) Get(column string) (string, bool) {
	i, ok := r.index[column]
	if !ok {
		return "", false
	}
	return r.cells[i].Value, true
}

// Cells returns a copy of the row's cells in column order.
func (r Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

func (r Row) MarshalJSON() ([]byte, error) {
	cells := r.cells
	if cells == nil {
		cells = []Cell{}
	}
	return json.Marshal(cells)
}

func (r *Row) UnmarshalJSON(data []byte) error {
	var cells []Cell
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("decode row cells: %w", err)
	}
	*r = NewRow(cells...)
	return nil
}

// ListingType returns the trimmed listing type of the first row, which stands for the
// whole listing.
func ListingType(rows []Row, column string) string {
	if len(rows) == 0 {
		return ""
	}
	v, _ := rows[0].Get(column)
	return strings.TrimSpace(v)
}

// SupportedListingType reports whether listingType is one the pricer handles.
func SupportedListingType(listingType string) bool {
	_, ok := supportedListingTypes[listingType]
	return ok
}

// CheckListingType returns the listing type of rows, or ErrUnsupportedListingType when it
// is missing or not supported.
func CheckListingType(rows []Row, column string) (string, error) {
	listingType := ListingType(rows, column)
	if !SupportedListingType(listingType) {
		return listingType, fmt.Errorf("%q: %w", listingType, ErrUnsupportedListingType)
	}
	return listingType, nil
}

// PricingRows adapts rows for the pricing engine.
func PricingRows(rows []Row) []pricing.Row {
	out := make([]pricing.Row, len(rows))
	for i := range rows {
		out[i] = rows[i]
	}
	return out
}
