// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// command.go - the command contract and the per-tuple apply loop.
//
// Contract:
//   - execute validates before it mutates whenever it can; when it fails
//     halfway, undo removes exactly what that attempt added.
//   - undo is only meaningful right after a failed execute with the same
//     argument; commands keep the state of their last attempt for it.
//   - apply stops at the first failing tuple. Earlier tuples of the same call
//     stay committed; later tuples are not attempted.

package molecule

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
)

// command is one mutating operation applied once per argument tuple.
type command[A any] interface {
	execute(arg A) error
	undo(arg A)
}

// apply runs cmd once per argument. On the first failure it undoes that
// attempt, reports it and returns the error tagged with op and the tuple.
func apply[A any](m *Molecule, op Op, cmd command[A], args []A) error {
	for _, arg := range args {
		tuple := fmt.Sprint(arg)
		m.cfg.logger.Debug("apply", slog.String("op", string(op)), slog.String("args", tuple))
		if err := cmd.execute(arg); err != nil {
			cmd.undo(arg)
			m.cfg.logger.Warn("rolled back",
				slog.String("op", string(op)),
				slog.String("args", tuple),
				slog.Any("err", err))
			m.cfg.observer.ObserveCommand(op, err)

			return opError(op, fmt.Errorf("%s: %w", tuple, err))
		}
		m.cfg.observer.ObserveCommand(op, nil)
	}

	return nil
}

// resolve returns the atom addressed by (pos, branch).
//
// Errors:
//   - ErrInvalidInput if pos or branch is not positive.
//   - ErrAtomNotInMolecule if nothing lives at the address.
func (m *Molecule) resolve(pos, branch int) (*atom.Atom, error) {
	if pos < 1 || branch < 1 {
		return nil, fmt.Errorf("position (%d,%d): %w", pos, branch, ErrInvalidInput)
	}
	k, ok := m.branches.Position(branch, pos)
	if !ok {
		return nil, fmt.Errorf("position (%d,%d): %w", pos, branch, ErrAtomNotInMolecule)
	}
	a := m.reg.Get(k.Element, k.ID)
	if !a.Exists() {
		return nil, fmt.Errorf("position (%d,%d) -> %s: %w", pos, branch, k, ErrAtomNotInMolecule)
	}

	return a, nil
}

// nextID allocates an id for a new atom of elem under the configured scheme.
func (m *Molecule) nextID(elem string) int {
	if m.cfg.scheme == PerElementIDs {
		return m.reg.NextID(elem)
	}

	return m.reg.NextSerial()
}

// spawn creates an unbonded atom of elem and registers it.
func (m *Molecule) spawn(elem string) (*atom.Atom, error) {
	a, err := atom.New(m.cfg.table, elem, m.nextID(elem))
	if err != nil {
		return nil, err
	}
	if err = m.reg.Add(a); err != nil {
		return nil, err
	}

	return a, nil
}

// discard detaches a and drops it from the registry.
func (m *Molecule) discard(a *atom.Atom) {
	m.reg.Detach(a)
	m.reg.Remove(a.Element(), a.ID())
}

// rename switches a to elem through the registry cascade, then relabels
// both skeletons.
func (m *Molecule) rename(a *atom.Atom, elem string) error {
	old := a.Key()
	if err := m.reg.Transmute(a, elem); err != nil {
		return err
	}
	m.branches.Relabel(old, a.Key())
	m.chains.Relabel(old, a.Key())

	return nil
}

// ranking maps the id scheme onto the registry's renumbering.
func (m *Molecule) ranking() atom.Ranking {
	if m.cfg.scheme == PerElementIDs {
		return atom.RankPerElement
	}

	return atom.RankSerial
}

// buildRun spawns one atom per symbol into branch of sk, bonding each to its
// predecessor. Every spawned atom is appended to *added, even on failure, so
// that the caller can roll the run back.
func (m *Molecule) buildRun(sk *Skeleton, branch int, symbols []string, added *[]*atom.Atom) error {
	var prev *atom.Atom
	for _, sym := range symbols {
		a, err := m.spawn(sym)
		if err != nil {
			return err
		}
		*added = append(*added, a)
		sk.Append(branch, a.Key())
		if prev != nil {
			if err = atom.Bond(prev, a); err != nil {
				return err
			}
		}
		prev = a
	}

	return nil
}

// rollbackRun discards added in reverse order and drops branch from sk.
func (m *Molecule) rollbackRun(sk *Skeleton, branch int, added []*atom.Atom) {
	for i := len(added) - 1; i >= 0; i-- {
		m.discard(added[i])
	}
	if branch > 0 {
		sk.Discard(branch)
	}
}

// carbons returns n carbon symbols.
func carbons(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = element.Carbon
	}

	return out
}
