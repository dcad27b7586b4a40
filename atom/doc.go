// Package atom defines the nodes of a chemgraph molecule and the registry
// that owns them.
//
// An Atom is identified by its (element, id) Key. Bonds are stored in a
// Ledger per atom, grouped by partner element: partners are referenced by
// Key rather than by pointer, so that renaming or renumbering an atom only
// requires rewriting records, never a web of live pointers. The cost is that
// every such change must be cascaded into the partners' ledgers; Registry
// owns both cascades (Transmute, RenumberContinuously).
//
// Invariants kept by this package:
//
//   - For every atom, Bonds().Total() <= Valence(). Bond validates both sides
//     before committing either.
//   - Every bond unit is recorded on both endpoints (symmetry). Bond and
//     Unbond are the only pair-level mutators; Registry.Detach removes both
//     sides at once.
//   - Atom and Ledger expose no mutators: only Bond, Unbond and the Registry
//     change them. Clone gives callers a detached copy.
//   - A nil *Atom is the null atom returned by Registry.Get on a miss.
//
// Errors:
//
//	ErrInvalidBond        - self-bond, bond to the null atom, capacity exceeded.
//	ErrAtomNotInMolecule  - an address resolved to the null atom (wraps ErrInvalidBond).
//	ErrDuplicateAtom      - the registry already holds the key.
//	ErrInvalidID          - id below 1.
package atom
