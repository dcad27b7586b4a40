// SPDX-License-Identifier: MIT

// Package molecule builds molecular graphs under valence constraints.
//
// A Molecule grows through a small set of commands:
//
//   - Brancher appends branches of linked carbons.
//   - Bounder bonds two atoms addressed by (position, branch).
//   - Mutate changes an atom's element, keeping its id and bonds.
//   - Add attaches a new atom to an addressed one.
//   - AddChaining attaches a run of mixed-element atoms.
//
// Positions and branches are 1-based. Chains and added atoms are not
// addressable. Every bond consumes one unit of valence on both sides and is
// refused when either side is full; bonding a pair twice forms a double bond.
//
// Closer locks the molecule by filling every free spot with hydrogen; only
// then are Formula and MolecularWeight defined. Unlock strips the hydrogens,
// drops emptied branches and renumbers the remaining atoms continuously.
//
// Variadic calls apply one command per tuple. A failing tuple is rolled back
// and returned as an error; tuples before it stay applied and tuples after it
// are skipped.
//
// Errors are sentinels checked with errors.Is. ErrAtomNotInMolecule wraps
// ErrInvalidBond, so a bad address also matches ErrInvalidBond.
//
// Example:
//
//	m, err := molecule.Build("isopropylmagnesium bromide", nil,
//		molecule.Branches(4, 1),
//		molecule.Bonds(molecule.Bond{Pos1: 2, Branch1: 1, Pos2: 1, Branch2: 2}),
//		molecule.Mutations(
//			molecule.Target{Pos: 3, Branch: 1, Element: "Mg"},
//			molecule.Target{Pos: 4, Branch: 1, Element: "Br"},
//		),
//		molecule.Close(),
//	)
//	f, _ := m.Formula() // "C3H7BrMg"
package molecule
