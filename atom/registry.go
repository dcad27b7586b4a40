// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Owner of every Atom of one molecule: insertion-ordered primary list,
//       element → ids secondary index, id allocation, aggregate properties and
//       the transmute/renumber cascades.
// Determinism:
//   - Atoms() returns insertion order; Formula() is independent of it.
// Invariants:
//   - list, index and byKey always describe the same set of atoms.
//   - Remove does not detach bonds; call Detach first when the atom is bonded.

package atom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/chemgraph/element"
)

// Registry holds the atoms of one molecule.
type Registry struct {
	atoms []*Atom          // insertion order
	index map[string][]int // element → ids, insertion order
	byKey map[Key]*Atom
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string][]int),
		byKey: make(map[Key]*Atom),
	}
}

// Add appends a to the registry.
// Returns ErrAtomNotInMolecule for the null atom and ErrDuplicateAtom when
// the key is taken.
func (r *Registry) Add(a *Atom) error {
	if !a.Exists() {
		return fmt.Errorf("add: %w", ErrAtomNotInMolecule)
	}
	k := a.Key()
	if _, dup := r.byKey[k]; dup {
		return fmt.Errorf("add %s: %w", k, ErrDuplicateAtom)
	}
	r.atoms = append(r.atoms, a)
	r.index[k.Element] = append(r.index[k.Element], k.ID)
	r.byKey[k] = a

	return nil
}

// Remove deletes the atom stored under elem/id and reports whether it existed.
// Complexity: O(n).
func (r *Registry) Remove(elem string, id int) bool {
	k := Key{Element: elem, ID: id}
	a, ok := r.byKey[k]
	if !ok {
		return false
	}
	delete(r.byKey, k)
	r.dropIndex(elem, id)
	for i, v := range r.atoms {
		if v == a {
			r.atoms = append(r.atoms[:i], r.atoms[i+1:]...)
			break
		}
	}

	return true
}

// Get returns the atom stored under elem/id, or nil (the null atom).
// Complexity: O(1).
func (r *Registry) Get(elem string, id int) *Atom {
	return r.byKey[Key{Element: elem, ID: id}]
}

// Has reports whether k is registered.
func (r *Registry) Has(k Key) bool {
	_, ok := r.byKey[k]

	return ok
}

// Len returns the number of atoms.
func (r *Registry) Len() int { return len(r.atoms) }

// Atoms returns the atoms in insertion order. The slice is a copy; the atoms
// are shared.
func (r *Registry) Atoms() []*Atom {
	out := make([]*Atom, len(r.atoms))
	copy(out, r.atoms)

	return out
}

// IDs returns the ids registered for elem, in insertion order.
func (r *Registry) IDs(elem string) []int {
	ids := r.index[elem]
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// NextID returns the highest id registered for elem plus one, or 1.
func (r *Registry) NextID(elem string) int {
	next := 1
	for _, id := range r.index[elem] {
		if id >= next {
			next = id + 1
		}
	}

	return next
}

// NextSerial returns the highest id across all elements plus one, or 1.
func (r *Registry) NextSerial() int {
	next := 1
	for _, a := range r.atoms {
		if a.id >= next {
			next = a.id + 1
		}
	}

	return next
}

// Transmute switches a to symbol, keeping its id and bonds, and cascades the
// new key into the index and every partner's ledger. Switching to the
// current element is a no-op.
//
// Errors:
//   - ErrAtomNotInMolecule if a is not registered here.
//   - element.ErrElementUnknown if symbol is not in a's table.
//   - ErrInvalidBond if the bonds in use exceed the new valence.
//   - ErrDuplicateAtom if symbol/a.ID is already taken.
func (r *Registry) Transmute(a *Atom, symbol string) error {
	if !a.Exists() || r.byKey[a.Key()] != a {
		return fmt.Errorf("transmute %s: %w", a.Key(), ErrAtomNotInMolecule)
	}
	e, err := a.table.Lookup(symbol)
	if err != nil {
		return err
	}
	if e.Symbol == a.element {
		return nil
	}
	if used := a.bonds.Total(); used > e.Valence {
		return fmt.Errorf("%s to %s: %d bonds exceed valence %d: %w",
			a.Key(), e.Symbol, used, e.Valence, ErrInvalidBond)
	}
	if next := (Key{Element: e.Symbol, ID: a.id}); r.Has(next) {
		return fmt.Errorf("%s to %s: %w", a.Key(), next, ErrDuplicateAtom)
	}
	old := a.element
	if err = a.setElement(e.Symbol); err != nil {
		return err
	}
	delete(r.byKey, Key{Element: old, ID: a.id})
	r.dropIndex(old, a.id)
	r.index[a.element] = append(r.index[a.element], a.id)
	r.byKey[a.Key()] = a
	for _, p := range a.bonds.Partners() {
		if n := r.Get(p.Element, p.ID); n != nil {
			n.bonds.rename(old, a.element, a.id)
		}
	}

	return nil
}

// Ranking selects how RenumberContinuously assigns ids.
type Ranking int

const (
	// RankSerial numbers every atom 1..n across the whole registry.
	RankSerial Ranking = iota
	// RankPerElement numbers the atoms of each element 1..k on their own.
	RankPerElement
)

// RenumberContinuously gives every atom its 1-based rank in insertion order,
// counted molecule-wide or within its element depending on rank. rewrite
// (may be nil) is called once per changed atom, in insertion order, so that
// external position records can follow. An already continuous registry is
// left untouched.
func (r *Registry) RenumberContinuously(rank Ranking, rewrite func(old Key, newID int)) {
	moved := make(map[Key]int)
	order := make([]Key, 0)
	seen := make(map[string]int)
	for i, a := range r.atoms {
		id := i + 1
		if rank == RankPerElement {
			seen[a.element]++
			id = seen[a.element]
		}
		if a.id != id {
			moved[a.Key()] = id
			order = append(order, a.Key())
		}
	}
	if len(moved) == 0 {
		return
	}
	r.renumber(moved)
	if rewrite == nil {
		return
	}
	for _, k := range order {
		rewrite(k, moved[k])
	}
}

// renumber is the renumber cascade: every atom keyed in moved takes its new
// id and every ledger follows. Ledgers are rewritten in one pass so that
// swapped ids never collide halfway through. The caller guarantees the
// resulting keys are unique.
func (r *Registry) renumber(moved map[Key]int) {
	remap := func(k Key) Key {
		if id, ok := moved[k]; ok {
			return Key{Element: k.Element, ID: id}
		}
		return k
	}
	for _, a := range r.atoms {
		a.bonds.remap(remap)
	}
	for _, a := range r.atoms {
		if id, ok := moved[a.Key()]; ok {
			a.setID(id)
		}
	}
	r.rebuildIndex()
}

// Detach removes every bond of a, on both sides, and returns the number of
// bond units removed.
func (r *Registry) Detach(a *Atom) int {
	removed := 0
	for _, p := range a.bonds.Partners() {
		n := r.Get(p.Element, p.ID)
		for c := a.bonds.Count(p.Element, p.ID); c > 0; c-- {
			if n != nil {
				n.bonds.remove(a.element, a.id)
			}
			removed++
		}
	}
	a.bonds.clear()

	return removed
}

// TotalWeight sums every atom's weight in insertion order.
func (r *Registry) TotalWeight() float64 {
	total := 0.0
	for _, a := range r.atoms {
		total += a.weight
	}

	return total
}

// Formula renders the raw formula: C, H and O first (in that order), the
// other elements alphabetically, counts omitted when equal to 1.
func (r *Registry) Formula() string {
	elems := make([]string, 0, len(r.index))
	for elem := range r.index {
		elems = append(elems, elem)
	}
	sort.Strings(elems)
	elems = frontLoad(elems, element.Carbon, element.Hydrogen, element.Oxygen)

	var b strings.Builder
	for _, elem := range elems {
		b.WriteString(elem)
		if n := len(r.index[elem]); n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}

	return b.String()
}

// String renders one atom per line, in insertion order.
func (r *Registry) String() string {
	lines := make([]string, len(r.atoms))
	for i, a := range r.atoms {
		lines[i] = a.String()
	}

	return strings.Join(lines, "\n")
}

// dropIndex removes id from the elem bucket, deleting empty buckets.
func (r *Registry) dropIndex(elem string, id int) {
	ids := r.index[elem]
	for i, v := range ids {
		if v == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(r.index, elem)
		return
	}
	r.index[elem] = ids
}

// rebuildIndex recomputes index and byKey from the primary list.
func (r *Registry) rebuildIndex() {
	r.index = make(map[string][]int, len(r.index))
	r.byKey = make(map[Key]*Atom, len(r.atoms))
	for _, a := range r.atoms {
		r.index[a.element] = append(r.index[a.element], a.id)
		r.byKey[a.Key()] = a
	}
}
