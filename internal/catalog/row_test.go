package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_SetKeepsFirstPosition(t *testing.T) {
	row := NewRow(
		Cell{Column: "SKU", Value: "A"},
		Cell{Column: "Price", Value: "1"},
		Cell{Column: "SKU", Value: "B"},
	)

	v, ok := row.Get("SKU")
	require.True(t, ok)
	assert.Equal(t, "B", v)
	assert.Equal(t, []Cell{{"SKU", "B"}, {"Price", "1"}}, row.Cells())

	_, ok = row.Get("Weight")
	assert.False(t, ok)
}

func TestRow_JSONKeepsColumnOrder(t *testing.T) {
	row := NewRow(Cell{Column: "Z", Value: "1"}, Cell{Column: "A", Value: "2"})

	data, err := json.Marshal(row)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"column":"Z","value":"1"},{"column":"A","value":"2"}]`, string(data))

	var back Row
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, row.Cells(), back.Cells())
}

func TestListingType(t *testing.T) {
	rows := []Row{
		NewRow(Cell{Column: "Listing Type", Value: " Multiple Listing "}),
		NewRow(Cell{Column: "Listing Type", Value: "ignored"}),
	}

	assert.Equal(t, "Multiple Listing", ListingType(rows, "Listing Type"))
	assert.Empty(t, ListingType(nil, "Listing Type"))
	assert.True(t, SupportedListingType("Multiple Listing"))
	assert.True(t, SupportedListingType("Joint Listing (Same Design for Different Model or Year)"))
	assert.False(t, SupportedListingType("Single Product"))
}

func TestCheckListingType(t *testing.T) {
	rows := []Row{NewRow(Cell{Column: "Listing Type", Value: "Bundle Product - Multiple Material Option"})}

	got, err := CheckListingType(rows, "Listing Type")
	require.NoError(t, err)
	assert.Equal(t, "Bundle Product - Multiple Material Option", got)

	_, err = CheckListingType([]Row{NewRow(Cell{Column: "Listing Type", Value: "Single"})}, "Listing Type")
	require.ErrorIs(t, err, ErrUnsupportedListingType)

	_, err = CheckListingType([]Row{NewRow()}, "Listing Type")
	require.ErrorIs(t, err, ErrUnsupportedListingType)
}

func TestPricingRows(t *testing.T) {
	rows := []Row{NewRow(Cell{Column: "PSS SKU", Value: "A"})}

	out := PricingRows(rows)
	require.Len(t, out, 1)
	v, ok := out[0].Get("PSS SKU")
	assert.True(t, ok)
	assert.Equal(t, "A", v)
}
