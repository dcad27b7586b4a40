// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// molecule.go - the Molecule facade and its Unlocked/Locked state machine.
//
// State machine:
//   - Unlocked (initial): Brancher, Bounder, Mutate, Add, AddChaining and
//     Closer are allowed; Formula, MolecularWeight and Unlock are not.
//   - Locked: Formula, MolecularWeight and Unlock are allowed; every
//     structural mutator and a second Closer fail with ErrLockedMolecule.
//
// Batches:
//   - Variadic mutators apply one command per tuple and stop at the first
//     failure; that tuple is rolled back, earlier tuples stay committed.
//
// Concurrency:
//   - A Molecule is not safe for concurrent use. It owns its registry and
//     skeletons exclusively.

package molecule

import (
	"log/slog"

	"github.com/katalvlaran/chemgraph/atom"
)

// Molecule is a molecular graph under construction.
type Molecule struct {
	name      string
	cfg       config
	reg       *atom.Registry
	branches  *Skeleton
	chains    *Skeleton
	hydrogens []atom.Key
	locked    bool

	grow   growBranch
	link   linkBranches
	mutate mutateAtom
	add    addAtom
	chain  addChain
	lock   lockMolecule
}

// New returns an empty, unlocked molecule named name (may be "").
func New(name string, opts ...Option) *Molecule {
	m := &Molecule{
		name:     name,
		cfg:      newConfig(opts...),
		reg:      atom.NewRegistry(),
		branches: NewSkeleton(),
		chains:   NewSkeleton(),
	}
	m.grow.m = m
	m.link.m = m
	m.mutate.m = m
	m.add.m = m
	m.chain.m = m
	m.lock.m = m

	return m
}

// Brancher appends one new branch of linked carbons per length.
//
// Errors: ErrLockedMolecule, ErrInvalidInput (length < 1).
func (m *Molecule) Brancher(lengths ...int) error {
	if err := m.unlocked(OpBrancher); err != nil {
		return err
	}

	return apply[int](m, OpBrancher, &m.grow, lengths)
}

// Bounder bonds the two atoms addressed by each Bond.
//
// Errors: ErrLockedMolecule, ErrInvalidInput, ErrAtomNotInMolecule,
// ErrInvalidBond (self-bond or no free spot on either side).
func (m *Molecule) Bounder(bonds ...Bond) error {
	if err := m.unlocked(OpBounder); err != nil {
		return err
	}

	return apply[Bond](m, OpBounder, &m.link, bonds)
}

// Mutate changes the element of each addressed atom, keeping ids and bonds.
//
// Errors: ErrLockedMolecule, ErrInvalidInput, ErrAtomNotInMolecule,
// ErrElementUnknown, ErrInvalidBond (bonds in use exceed the new valence),
// ErrDuplicateAtom (PerElementIDs only).
func (m *Molecule) Mutate(targets ...Target) error {
	if err := m.unlocked(OpMutate); err != nil {
		return err
	}

	return apply[Target](m, OpMutate, &m.mutate, targets)
}

// Add attaches a new atom of Target.Element to each addressed atom.
//
// Errors: ErrLockedMolecule, ErrInvalidInput, ErrAtomNotInMolecule,
// ErrElementUnknown, ErrInvalidBond.
func (m *Molecule) Add(targets ...Target) error {
	if err := m.unlocked(OpAdd); err != nil {
		return err
	}

	return apply[Target](m, OpAdd, &m.add, targets)
}

// AddChaining builds a chain of elements, in order, and bonds its first atom
// to the atom at (pos, branch). Chains are not addressable.
//
// Errors: ErrLockedMolecule, ErrInvalidInput (no elements), ErrElementUnknown,
// ErrAtomNotInMolecule, ErrInvalidBond.
func (m *Molecule) AddChaining(pos, branch int, elements ...string) error {
	if err := m.unlocked(OpAddChaining); err != nil {
		return err
	}
	ch := Chaining{Pos: pos, Branch: branch, Elements: append([]string(nil), elements...)}

	return apply[Chaining](m, OpAddChaining, &m.chain, []Chaining{ch})
}

// Closer hydrogenates every free spot and locks the molecule.
//
// Errors: ErrLockedMolecule.
func (m *Molecule) Closer() error {
	if m.locked {
		m.cfg.observer.ObserveCommand(OpCloser, ErrLockedMolecule)
		return opError(OpCloser, ErrLockedMolecule)
	}
	if err := apply[struct{}](m, OpCloser, &m.lock, []struct{}{{}}); err != nil {
		return err
	}
	m.locked = true
	m.cfg.observer.ObserveLock(m.lock.added)
	m.cfg.logger.Info("locked",
		slog.String("molecule", m.name),
		slog.Int("atoms", m.reg.Len()),
		slog.Int("hydrogens", m.lock.added))

	return nil
}

// Unlock strips every hydrogen atom, prunes emptied branches, renumbers the
// remaining atoms and unlocks the molecule.
//
// When no branch keeps an atom, Unlock returns ErrEmptyMolecule but does not
// stay locked: the hydrogens are already gone and the molecule is unlocked,
// ready for Brancher.
//
// Errors: ErrUnlockedMolecule, ErrEmptyMolecule.
func (m *Molecule) Unlock() error {
	if !m.locked {
		m.cfg.observer.ObserveCommand(OpUnlock, ErrUnlockedMolecule)
		return opError(OpUnlock, ErrUnlockedMolecule)
	}
	removed, err := m.lock.strip()
	m.locked = false
	m.cfg.observer.ObserveCommand(OpUnlock, err)
	m.cfg.observer.ObserveUnlock(removed)
	m.cfg.logger.Info("unlocked",
		slog.String("molecule", m.name),
		slog.Int("atoms", m.reg.Len()),
		slog.Int("hydrogens_removed", removed))
	if err != nil {
		return opError(OpUnlock, err)
	}

	return nil
}

// Name returns the molecule name.
func (m *Molecule) Name() string { return m.name }

// Locked reports whether the molecule is locked.
func (m *Molecule) Locked() bool { return m.locked }

// Atoms returns a snapshot of every atom in insertion order. The atoms are
// clones; changing them never reaches the molecule.
func (m *Molecule) Atoms() []*atom.Atom {
	atoms := m.reg.Atoms()
	for i, a := range atoms {
		atoms[i] = a.Clone()
	}

	return atoms
}

// At returns a snapshot of the atom at (pos, branch).
func (m *Molecule) At(pos, branch int) (*atom.Atom, error) {
	a, err := m.resolve(pos, branch)
	if err != nil {
		return nil, err
	}

	return a.Clone(), nil
}

// Branches returns a copy of the branch layout: Branches()[b][pos-1] is the
// key at (pos, b). Index 0 is the always-empty root.
func (m *Molecule) Branches() [][]atom.Key { return m.branches.Snapshot() }

// Chains returns a copy of the chain layout, indexed like Branches.
func (m *Molecule) Chains() [][]atom.Key { return m.chains.Snapshot() }

// Hydrogens returns the keys of the hydrogens added by the last Closer, or
// nil while unlocked.
func (m *Molecule) Hydrogens() []atom.Key {
	if len(m.hydrogens) == 0 {
		return nil
	}

	return append([]atom.Key(nil), m.hydrogens...)
}

// Formula returns the raw formula, e.g. "C3H7BrMg".
//
// Errors: ErrUnlockedMolecule.
func (m *Molecule) Formula() (string, error) {
	if !m.locked {
		return "", opError("formula", ErrUnlockedMolecule)
	}

	return m.reg.Formula(), nil
}

// MolecularWeight returns the sum of every atom's weight.
//
// Errors: ErrUnlockedMolecule.
func (m *Molecule) MolecularWeight() (float64, error) {
	if !m.locked {
		return 0, opError("molecularWeight", ErrUnlockedMolecule)
	}

	return m.reg.TotalWeight(), nil
}

// String renders one atom per line in insertion order.
func (m *Molecule) String() string { return m.reg.String() }

// unlocked guards structural mutators.
func (m *Molecule) unlocked(op Op) error {
	if !m.locked {
		return nil
	}
	m.cfg.observer.ObserveCommand(op, ErrLockedMolecule)

	return opError(op, ErrLockedMolecule)
}
