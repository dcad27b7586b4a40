// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// cmd_lock.go - hydrogenation (lock) and its reversal (unlock).
//
// Lock fills every free spot of every atom present at the start of the call
// with a new hydrogen. Unlock strips every hydrogen atom, whether added by the
// lock or not, drops hydrogen slots and emptied branches from both skeletons,
// and renumbers the remaining atoms continuously in insertion order: 1..n
// molecule-wide under SerialIDs, 1..k within each element under
// PerElementIDs.

package molecule

import (
	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
)

type lockMolecule struct {
	m     *Molecule
	added int
}

func (c *lockMolecule) execute(struct{}) error {
	c.added = 0
	for _, a := range c.m.reg.Atoms() {
		for free := a.FreeSpots(); free > 0; free-- {
			h, err := c.m.spawn(element.Hydrogen)
			if err != nil {
				return err
			}
			c.m.hydrogens = append(c.m.hydrogens, h.Key())
			c.added++
			if err = atom.Bond(a, h); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *lockMolecule) undo(struct{}) {
	_, _ = c.strip()
}

// strip is the unlock path. It returns the number of hydrogen atoms removed,
// and ErrEmptyMolecule when no branch keeps a real atom afterwards; the
// structure is fully reverted in both cases.
func (c *lockMolecule) strip() (int, error) {
	m := c.m
	removed := 0
	for _, a := range m.reg.Atoms() {
		if a.Element() != element.Hydrogen {
			continue
		}
		m.discard(a)
		removed++
	}
	m.hydrogens = nil

	for _, sk := range []*Skeleton{m.branches, m.chains} {
		sk.Dehydrogenate()
		sk.PruneEmpty()
	}

	moved := make(map[atom.Key]atom.Key)
	m.reg.RenumberContinuously(m.ranking(), func(old atom.Key, id int) {
		moved[old] = atom.Key{Element: old.Element, ID: id}
	})
	if len(moved) > 0 {
		follow := func(k atom.Key) atom.Key {
			if n, ok := moved[k]; ok {
				return n
			}
			return k
		}
		m.branches.Rewrite(follow)
		m.chains.Rewrite(follow)
	}

	if !m.branches.HasAtoms() {
		return removed, ErrEmptyMolecule
	}

	return removed, nil
}
