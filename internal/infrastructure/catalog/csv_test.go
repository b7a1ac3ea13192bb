package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autobake/backend/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVLoader_Load(t *testing.T) {
	t.Run("parses records with numeric coercion", func(t *testing.T) {
		path := writeCSV(t, `Machine Name,Company Name,Category,Products,Dough Min (g),Dough Max (g),Production Capacity (pcs/hr),Key Features / Notes
SM-80, BakeTech ,Spiral Mixer,"Bread Loaf, Bun",300,800,"1,200",Removable bowl
SL-3,Allied,Bread Slicer,bread loaf,-,n/a,Varies,
`)
		records, err := NewCSVLoader(path).Load()
		require.NoError(t, err)
		require.Len(t, records, 2)

		first := records[0]
		assert.Equal(t, "SM-80", first.Name)
		assert.Equal(t, "BakeTech", first.Manufacturer, "cells are trimmed")
		assert.Equal(t, "bread loaf, bun", first.Products, "products are lowercased")
		require.NotNil(t, first.DoughMin)
		assert.Equal(t, 300.0, *first.DoughMin)
		require.NotNil(t, first.Capacity)
		assert.Equal(t, 1200.0, *first.Capacity, "thousands separator is stripped")

		second := records[1]
		assert.Nil(t, second.DoughMin, "skip sentinel coerces to unknown")
		assert.Nil(t, second.DoughMax, "placeholder coerces to unknown")
		assert.Nil(t, second.Capacity, "non-numeric text coerces to unknown")
		assert.Equal(t, "Varies", second.CapacityRaw, "raw cell is preserved")
	})

	t.Run("drops fully duplicated rows", func(t *testing.T) {
		path := writeCSV(t, `Machine Name,Company Name,Category,Products,Dough Min (g),Dough Max (g),Production Capacity (pcs/hr),Key Features / Notes
SM-80,BakeTech,Spiral Mixer,bun,300,800,600,
SM-80,BakeTech,Spiral Mixer,bun,300,800,600,
SM-80,BakeTech,Spiral Mixer,bun,300,800,900,
`)
		records, err := NewCSVLoader(path).Load()
		require.NoError(t, err)
		assert.Len(t, records, 2, "exact duplicates collapse, near-duplicates survive")
	})

	t.Run("tolerates short and ragged rows", func(t *testing.T) {
		path := writeCSV(t, `Machine Name,Company Name,Category,Products,Dough Min (g),Dough Max (g),Production Capacity (pcs/hr),Key Features / Notes
SM-80,BakeTech,Spiral Mixer
`)
		records, err := NewCSVLoader(path).Load()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "", records[0].Products)
		assert.Nil(t, records[0].Capacity)
	})

	t.Run("missing products column still loads", func(t *testing.T) {
		path := writeCSV(t, `Machine Name,Company Name,Category
SM-80,BakeTech,Spiral Mixer
`)
		records, err := NewCSVLoader(path).Load()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "", records[0].Products)
	})

	t.Run("missing file wraps the catalog error", func(t *testing.T) {
		_, err := NewCSVLoader(filepath.Join(t.TempDir(), "nope.csv")).Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
	})

	t.Run("empty file is an error", func(t *testing.T) {
		path := writeCSV(t, "")
		_, err := NewCSVLoader(path).Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
	})
}

func TestParseNumeric(t *testing.T) {
	testCases := []struct {
		in   string
		want *float64
	}{
		{"600", ptr(600.0)},
		{" 600 ", ptr(600.0)},
		{"1,200", ptr(1200.0)},
		{"12.5", ptr(12.5)},
		{"", nil},
		{"-", nil},
		{"N/A", nil},
		{"nan", nil},
		{"Varies", nil},
	}

	for _, tc := range testCases {
		got := parseNumeric(tc.in)
		if tc.want == nil {
			assert.Nil(t, got, "parseNumeric(%q)", tc.in)
		} else {
			require.NotNil(t, got, "parseNumeric(%q)", tc.in)
			assert.Equal(t, *tc.want, *got, "parseNumeric(%q)", tc.in)
		}
	}
}

func ptr(v float64) *float64 { return &v }
