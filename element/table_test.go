// SPDX-License-Identifier: MIT
// Package element_test verifies the element table contract.

package element_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemgraph/element"
)

// TestDefault_ReferenceValues locks the reference valences and weights.
func TestDefault_ReferenceValues(t *testing.T) {
	cases := []struct {
		symbol  string
		valence int
		weight  float64
	}{
		{"H", 1, 1.0},
		{"B", 3, 10.8},
		{"C", 4, 12.0},
		{"N", 3, 14.0},
		{"O", 2, 16.0},
		{"F", 1, 19.0},
		{"Mg", 2, 24.3},
		{"P", 3, 31.0},
		{"S", 2, 32.1},
		{"Cl", 1, 35.5},
		{"Br", 1, 80.0},
	}
	tbl := element.Default()
	require.Equal(t, len(cases), tbl.Len())
	for _, tc := range cases {
		e, err := tbl.Lookup(tc.symbol)
		require.NoError(t, err, tc.symbol)
		require.Equal(t, tc.symbol, e.Symbol)
		require.Equal(t, tc.valence, e.Valence, tc.symbol)
		require.InDelta(t, tc.weight, e.Weight, 1e-9, tc.symbol)
	}
}

// TestDefault_IsShared checks Default decodes once and returns the same table.
func TestDefault_IsShared(t *testing.T) {
	require.Same(t, element.Default(), element.Default())
}

// TestLookup_Unknown verifies the sentinel for symbols outside the table.
func TestLookup_Unknown(t *testing.T) {
	for _, sym := range []string{"", "X", "c", "Na", "CL"} {
		_, err := element.Lookup(sym)
		require.ErrorIs(t, err, element.ErrElementUnknown, sym)
		require.False(t, element.Default().Has(sym), sym)
	}
}

// TestSymbols_SortedCopy verifies ordering and that callers cannot alias the index.
func TestSymbols_SortedCopy(t *testing.T) {
	tbl := element.Default()
	syms := tbl.Symbols()
	require.Equal(t, []string{"B", "Br", "C", "Cl", "F", "H", "Mg", "N", "O", "P", "S"}, syms)

	syms[0] = "Zz"
	require.Equal(t, "B", tbl.Symbols()[0])
}

// TestParse_Custom decodes a custom table and rejects malformed ones.
func TestParse_Custom(t *testing.T) {
	tbl, err := element.Load(strings.NewReader(`
elements:
  - symbol: C
    valence: 4
    weight: 12.011
  - symbol: Si
    valence: 4
    weight: 28.085
`))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	si, err := tbl.Lookup("Si")
	require.NoError(t, err)
	require.Equal(t, 4, si.Valence)
	_, err = tbl.Lookup("H")
	require.ErrorIs(t, err, element.ErrElementUnknown)

	bad := map[string]string{
		"empty":       "elements: []",
		"no symbol":   "elements:\n  - valence: 1\n    weight: 1",
		"zero val":    "elements:\n  - symbol: X\n    valence: 0\n    weight: 1",
		"zero weight": "elements:\n  - symbol: X\n    valence: 1\n    weight: 0",
		"duplicate":   "elements:\n  - {symbol: X, valence: 1, weight: 1}\n  - {symbol: X, valence: 2, weight: 2}",
	}
	for name, doc := range bad {
		_, err := element.Parse([]byte(doc))
		require.ErrorIs(t, err, element.ErrInvalidTable, name)
	}

	_, err = element.Parse([]byte("elements: [ {symbol: "))
	require.Error(t, err)
	require.False(t, errors.Is(err, element.ErrInvalidTable))
}

// TestMustLookup_Panics covers the panic path reserved for constants.
func TestMustLookup_Panics(t *testing.T) {
	require.Equal(t, 4, element.Default().MustLookup(element.Carbon).Valence)
	require.Panics(t, func() { element.Default().MustLookup("Xx") })
}
