// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// build.go - one-call orchestrator over the facade.
//
// Contract:
//   - Build creates the molecule from opts and applies steps in order.
//   - The first failing step aborts the build; the error is wrapped with
//     "Build: %w" and no partial molecule is returned.
//   - Step factories copy their arguments; reusing a Step is safe.

package molecule

import "fmt"

// Step applies one facade call to a molecule.
type Step func(m *Molecule) error

// Build creates a molecule named name and applies steps in order.
//
// Errors: ErrInvalidInput for a nil step, otherwise the first step error.
func Build(name string, opts []Option, steps ...Step) (*Molecule, error) {
	m := New(name, opts...)
	for i, step := range steps {
		if step == nil {
			return nil, fmt.Errorf("Build: nil step at index %d: %w", i, ErrInvalidInput)
		}
		if err := step(m); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}

// Branches is Brancher as a Step.
func Branches(lengths ...int) Step {
	lengths = append([]int(nil), lengths...)
	return func(m *Molecule) error { return m.Brancher(lengths...) }
}

// Bonds is Bounder as a Step.
func Bonds(bonds ...Bond) Step {
	bonds = append([]Bond(nil), bonds...)
	return func(m *Molecule) error { return m.Bounder(bonds...) }
}

// Mutations is Mutate as a Step.
func Mutations(targets ...Target) Step {
	targets = append([]Target(nil), targets...)
	return func(m *Molecule) error { return m.Mutate(targets...) }
}

// Additions is Add as a Step.
func Additions(targets ...Target) Step {
	targets = append([]Target(nil), targets...)
	return func(m *Molecule) error { return m.Add(targets...) }
}

// Chain is AddChaining as a Step.
func Chain(pos, branch int, elements ...string) Step {
	elements = append([]string(nil), elements...)
	return func(m *Molecule) error { return m.AddChaining(pos, branch, elements...) }
}

// Close is Closer as a Step.
func Close() Step {
	return func(m *Molecule) error { return m.Closer() }
}

// Open is Unlock as a Step.
func Open() Step {
	return func(m *Molecule) error { return m.Unlock() }
}
