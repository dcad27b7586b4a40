// SPDX-License-Identifier: MIT
// Package: chemgraph/element
//
// table.go - Element value type and the immutable symbol registry.
//
// Design:
//   • A Table is built once (Parse/Load/Default) and never mutated afterwards,
//     so it can be shared freely between molecules.
//   • Default() decodes the embedded elements.yaml exactly once.
//   • Lookup never panics; MustLookup is reserved for package constants.

package element

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Symbols used by name elsewhere in chemgraph.
const (
	Hydrogen = "H"
	Carbon   = "C"
	Oxygen   = "O"
)

//go:embed elements.yaml
var referenceTable []byte

// Element describes one entry of the table.
type Element struct {
	// Symbol is the chemical symbol, e.g. "C" or "Mg".
	Symbol string `yaml:"symbol"`

	// Valence is the maximum number of bond units an atom of this element accepts.
	Valence int `yaml:"valence"`

	// Weight is the atomic weight used for molecular weight sums.
	Weight float64 `yaml:"weight"`
}

// document is the on-disk YAML layout.
type document struct {
	Elements []Element `yaml:"elements"`
}

// Table is an immutable symbol → Element registry.
type Table struct {
	bySymbol map[string]Element
	symbols  []string // sorted, for deterministic iteration
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the reference table shipped with chemgraph.
// The embedded document is decoded on first use; a decoding failure is a
// build defect and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(referenceTable)
		if err != nil {
			panic(fmt.Sprintf("element: embedded reference table: %v", err))
		}
		defaultTable = t
	})

	return defaultTable
}

// Lookup resolves symbol against the Default table.
func Lookup(symbol string) (Element, error) {
	return Default().Lookup(symbol)
}

// Parse decodes a YAML element table.
//
// Errors:
//   - yaml decoding errors are returned wrapped.
//   - ErrInvalidTable for empty tables, duplicate symbols, empty symbols,
//     valence < 1 or weight <= 0.
//
// Complexity: O(n log n) for n elements (sorted symbol index).
func Parse(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("element: decode table: %w", err)
	}

	return newTable(doc.Elements)
}

// Load reads a whole YAML element table from r and decodes it with Parse.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("element: read table: %w", err)
	}

	return Parse(data)
}

// newTable validates entries and builds the lookup index.
func newTable(entries []Element) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no elements: %w", ErrInvalidTable)
	}
	t := &Table{
		bySymbol: make(map[string]Element, len(entries)),
		symbols:  make([]string, 0, len(entries)),
	}
	for i, e := range entries {
		switch {
		case e.Symbol == "":
			return nil, fmt.Errorf("entry %d: empty symbol: %w", i, ErrInvalidTable)
		case e.Valence < 1:
			return nil, fmt.Errorf("%s: valence %d: %w", e.Symbol, e.Valence, ErrInvalidTable)
		case e.Weight <= 0:
			return nil, fmt.Errorf("%s: weight %v: %w", e.Symbol, e.Weight, ErrInvalidTable)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("%s: duplicate symbol: %w", e.Symbol, ErrInvalidTable)
		}
		t.bySymbol[e.Symbol] = e
		t.symbols = append(t.symbols, e.Symbol)
	}
	sort.Strings(t.symbols)

	return t, nil
}

// Lookup returns the Element registered under symbol.
// Returns ErrElementUnknown (wrapped with the symbol) when absent.
// Complexity: O(1).
func (t *Table) Lookup(symbol string) (Element, error) {
	e, ok := t.bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%q: %w", symbol, ErrElementUnknown)
	}

	return e, nil
}

// MustLookup is Lookup for symbols known to be present; it panics otherwise.
func (t *Table) MustLookup(symbol string) Element {
	e, err := t.Lookup(symbol)
	if err != nil {
		panic(err)
	}

	return e
}

// Has reports whether symbol is registered.
func (t *Table) Has(symbol string) bool {
	_, ok := t.bySymbol[symbol]

	return ok
}

// Symbols returns every registered symbol in ascending order.
// The returned slice is a copy.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.symbols))
	copy(out, t.symbols)

	return out
}

// Len returns the number of registered elements.
func (t *Table) Len() int { return len(t.symbols) }
