// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// topology.go - connectivity queries over the bond graph.
//
// Determinism:
//   - Fragments are discovered in atom insertion order and each fragment
//     lists its atoms in breadth-first order from its first atom; partners
//     are expanded in Ledger.Partners order (element, then id).
// Multiplicity:
//   - A double or triple bond counts as one edge for Rings, so benzene has
//     one ring whatever its bond orders.

package molecule

import "github.com/katalvlaran/chemgraph/atom"

// Fragments returns the connected components of the bond graph.
// Time: O(V + E). Memory: O(V).
func (m *Molecule) Fragments() [][]atom.Key {
	atoms := m.reg.Atoms()
	seen := make(map[atom.Key]bool, len(atoms))
	var comps [][]atom.Key

	for _, a := range atoms {
		k0 := a.Key()
		if seen[k0] {
			continue
		}
		queue := []atom.Key{k0}
		seen[k0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := m.reg.Get(queue[qi].Element, queue[qi].ID)
			for _, p := range u.Bonds().Partners() {
				if !seen[p] {
					seen[p] = true
					queue = append(queue, p)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Rings returns the number of independent cycles of the bond graph: distinct
// bonded pairs minus atoms plus fragments.
func (m *Molecule) Rings() int {
	edges := 0
	for _, a := range m.reg.Atoms() {
		edges += len(a.Bonds().Partners())
	}

	return edges/2 - m.reg.Len() + len(m.Fragments())
}
