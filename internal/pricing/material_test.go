package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultTables().Materials)

	cases := map[string]Class{
		"FRP":                          ClassFRPOrCarbon,
		"  Full FRP ":                  ClassFRPOrCarbon,
		"Vacuumed Carbon":              ClassFullCarbon,
		"Partial Pre-preg Carbon":      ClassPartialCarbon,
		"Single-sided Vacuumed Carbon": ClassSingleSidedCarbon,
		"Double-sided Pre-preg Carbon": ClassDoubleSidedCarbon,
		"ABS":                          ClassOther,
		"":                             ClassOther,
		"   ":                          ClassOther,
		"double-sided pre-preg carbon": ClassOther,
	}
	for raw, want := range cases {
		assert.Equal(t, want, c.Classify(raw), "raw=%q", raw)
	}
}

func TestClassifierClasses(t *testing.T) {
	c := NewClassifier(map[string]Class{
		"Kevlar": "Aramid",
		"FRP":    ClassFRPOrCarbon,
		"PP":     "Plastic",
	})

	assert.Equal(t, []Class{ClassFRPOrCarbon, "Aramid", "Plastic"}, c.Classes())
}
