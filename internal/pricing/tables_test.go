package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesValidate(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestParseTables_OverlaysSections(t *testing.T) {
	tables, err := ParseTables([]byte(`
add_ons:
  Matte: "1.15"
  Chrome: 1.3
compare_at:
  - below: 1000
    markup: 50
  - markup: 150
columns:
  sku: SKU
`))
	require.NoError(t, err)

	assert.Len(t, tables.Materials, len(DefaultTables().Materials), "materials keep defaults")
	require.Len(t, tables.AddOns, 2)
	requireDecimal(t, "matte", tables.AddOns["Matte"], "1.15")
	requireDecimal(t, "chrome", tables.AddOns["Chrome"], "1.3")
	require.Len(t, tables.Bands, 2)
	requireDecimal(t, "below", tables.Bands[0].Below, "1000")
	assert.True(t, tables.Bands[1].Below.IsZero())
	assert.Equal(t, "SKU", tables.Columns.SKU)
	assert.Equal(t, DefaultColumns().Material, tables.Columns.Material)
}

func TestParseTables_Rejects(t *testing.T) {
	cases := map[string]string{
		"bad yaml":        "materials: [",
		"bad factor":      "add_ons:\n  Matte: abc\n",
		"zero factor":     "add_ons:\n  Matte: 0\n",
		"closed schedule": "compare_at:\n  - below: 500\n    markup: 60\n",
		"bad markup":      "compare_at:\n  - markup: x\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTables([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("materials:\n  Kevlar: Aramid\n"), 0o600))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]Class{"Kevlar": "Aramid"}, tables.Materials)

	_, err = LoadTables(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
