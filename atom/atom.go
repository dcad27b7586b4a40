// SPDX-License-Identifier: MIT
// File: atom.go
// Role: Atom identity (element, id), derived capacity/weight, one Ledger.
// Policy:
//   - Valence and weight are always derived from the element Table; they are
//     never set directly.
//   - Atoms are only mutated through Bond/Unbond and the Registry; the
//     exported surface of *Atom and *Ledger is read-only.
//   - A nil *Atom is the null atom: Exists, Element, ID, Key and String are
//     safe to call on it.

package atom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chemgraph/element"
)

// Atom is one node of a molecule graph.
type Atom struct {
	table   *element.Table
	element string
	id      int
	valence int
	weight  float64
	bonds   *Ledger
}

// New creates an unbonded atom of the given element.
//
// Errors:
//   - element.ErrElementUnknown if symbol is not in tbl.
//   - ErrInvalidID if id < 1.
//
// A nil tbl means element.Default().
func New(tbl *element.Table, symbol string, id int) (*Atom, error) {
	if tbl == nil {
		tbl = element.Default()
	}
	if id < 1 {
		return nil, fmt.Errorf("%s.%d: %w", symbol, id, ErrInvalidID)
	}
	e, err := tbl.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	return &Atom{
		table:   tbl,
		element: e.Symbol,
		id:      id,
		valence: e.Valence,
		weight:  e.Weight,
		bonds:   newLedger(),
	}, nil
}

// Exists reports whether a is a real atom (false for the nil null atom).
func (a *Atom) Exists() bool { return a != nil }

// Element returns the element symbol, "" for the null atom.
func (a *Atom) Element() string {
	if a == nil {
		return ""
	}
	return a.element
}

// ID returns the atom id, 0 for the null atom.
func (a *Atom) ID() int {
	if a == nil {
		return 0
	}
	return a.id
}

// Key returns the (element, id) address; the zero Key for the null atom.
func (a *Atom) Key() Key {
	if a == nil {
		return Key{}
	}
	return Key{Element: a.element, ID: a.id}
}

// Valence returns the maximum number of bond units.
func (a *Atom) Valence() int { return a.valence }

// Weight returns the atomic weight of the current element.
func (a *Atom) Weight() float64 { return a.weight }

// Bonds exposes the atom's ledger for reading.
func (a *Atom) Bonds() *Ledger { return a.bonds }

// FreeSpots returns valence minus bonds in use.
func (a *Atom) FreeSpots() int { return a.valence - a.bonds.Total() }

// Clone returns a detached copy of a, ledger included. Nil clones to nil.
func (a *Atom) Clone() *Atom {
	if a == nil {
		return nil
	}
	c := *a
	c.bonds = a.bonds.clone()

	return &c
}

// setElement switches the atom to another element, re-deriving valence and
// weight. Existing bonds are left untouched; Registry.Transmute validates
// capacity and patches the partners.
func (a *Atom) setElement(symbol string) error {
	e, err := a.table.Lookup(symbol)
	if err != nil {
		return err
	}
	a.element = e.Symbol
	a.valence = e.Valence
	a.weight = e.Weight

	return nil
}

// setID renumbers the atom; only the registry does this.
func (a *Atom) setID(id int) { a.id = id }

// linkTo records a bond towards other in this atom's ledger only.
// Returns ErrInvalidBond if other is the null atom, is a itself, or a has no
// free spot left.
func (a *Atom) linkTo(other *Atom) error {
	switch {
	case !other.Exists():
		return fmt.Errorf("%s cannot connect to a missing atom: %w", a.Key(), ErrInvalidBond)
	case other == a || other.Key() == a.Key():
		return fmt.Errorf("%s cannot connect to itself: %w", a.Key(), ErrInvalidBond)
	case a.FreeSpots() < 1:
		return fmt.Errorf("%s cannot connect to %s: valence %d reached: %w",
			a.Key(), other.Key(), a.valence, ErrInvalidBond)
	}
	a.bonds.add(other.element, other.id)

	return nil
}

// String renders the atom and its partners, e.g. "Atom(C.3: C4,O7,Br6,N2)".
// Partner elements are ordered alphabetically with C then O pulled to the
// front and H pushed last; ids ascend within an element; hydrogens are
// rendered without id.
func (a *Atom) String() string {
	if a == nil {
		return "Atom(null)"
	}
	var b strings.Builder
	b.WriteString("Atom(")
	b.WriteString(a.Key().String())
	if !a.bonds.IsEmpty() {
		b.WriteString(": ")
		b.WriteString(strings.Join(a.partnerLabels(), ","))
	}
	b.WriteByte(')')

	return b.String()
}

// partnerLabels lists one label per bond unit in display order.
func (a *Atom) partnerLabels() []string {
	elems := frontLoad(a.bonds.Elements(), element.Carbon, element.Oxygen)
	labels := make([]string, 0, a.bonds.Total())
	var tail []string
	for _, elem := range elems {
		ids := a.bonds.IDs(elem)
		sort.Ints(ids)
		for _, id := range ids {
			if elem == element.Hydrogen {
				tail = append(tail, elem)
				continue
			}
			labels = append(labels, elem+strconv.Itoa(id))
		}
	}

	return append(labels, tail...)
}

// frontLoad moves the listed symbols, when present, to the front of sorted
// in the given order; the rest keeps its relative order.
func frontLoad(sorted []string, front ...string) []string {
	out := make([]string, 0, len(sorted))
	taken := make(map[string]bool, len(front))
	for _, f := range front {
		for _, s := range sorted {
			if s == f {
				out = append(out, s)
				taken[s] = true
				break
			}
		}
	}
	for _, s := range sorted {
		if !taken[s] {
			out = append(out, s)
		}
	}

	return out
}
