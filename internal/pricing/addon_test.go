package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjusterSelect(t *testing.T) {
	adjuster := NewAdjuster(DefaultTables().AddOns)

	t.Run("texture wins over finish", func(t *testing.T) {
		code, ok := adjuster.Select("Forged", "Matte")
		assert.True(t, ok)
		assert.Equal(t, "Forged", code)
	})

	t.Run("finish used when texture is not an add-on", func(t *testing.T) {
		code, ok := adjuster.Select("Woven 3K", " Matte ")
		assert.True(t, ok)
		assert.Equal(t, "Matte", code)
	})

	t.Run("no match", func(t *testing.T) {
		_, ok := adjuster.Select("Woven 3K", "Gloss")
		assert.False(t, ok)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, ok := adjuster.Select("forged", "matte")
		assert.False(t, ok)
	})
}

func TestAdjusterApply(t *testing.T) {
	adjuster := NewAdjuster(DefaultTables().AddOns)

	price, factor := adjuster.Apply(dec("1000"), "Forged")
	requireDecimal(t, "price", price, "1200")
	requireDecimal(t, "factor", factor, "1.2")

	price, factor = adjuster.Apply(dec("375"), "Matte")
	requireDecimal(t, "price", price, "413")
	requireDecimal(t, "factor", factor, "1.1")

	price, factor = adjuster.Apply(dec("100.5"), "Chrome")
	requireDecimal(t, "price", price, "100.5")
	requireDecimal(t, "factor", factor, "1")
}

func TestPriceListing_TexturePrecedence(t *testing.T) {
	engine := NewEngine(DefaultTables())
	cols := DefaultColumns()

	r := row("T-1", "Pre-preg Carbon", "1000")
	r[cols.Texture] = "Forged"
	r[cols.Finish] = "Matte"

	sheet := engine.PriceListing([]Row{r})

	assert.Equal(t, "T-1 : 1200 : 1300", sheet.Results[0].Line())
	assert.Equal(t, "1000 * 1.2 = 1200", sheet.Results[0].Comment)
	assert.Equal(t, "Forged", sheet.Results[0].AddOn)
}

func TestAdjusterFactor(t *testing.T) {
	adjuster := NewAdjuster(DefaultTables().AddOns)

	requireDecimal(t, "matte", adjuster.Factor("Matte"), "1.1")
	requireDecimal(t, "honeycomb", adjuster.Factor("Honeycomb"), "1.2")
	requireDecimal(t, "unknown", adjuster.Factor("Gloss"), "1")
}
