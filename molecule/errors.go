// SPDX-License-Identifier: MIT
// Package: chemgraph/molecule
//
// errors.go - sentinel errors for the molecule facade.
//
// Error policy:
//   • Callers branch with errors.Is; messages are not part of the contract.
//   • Facade errors carry the operation name: "molecule: <op>: <detail>: <sentinel>".
//   • Element and atom sentinels are re-exported so callers need a single import.

package molecule

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
)

// ErrInvalidInput indicates malformed command arguments (non-positive lengths
// or coordinates, empty element lists, nil steps).
var ErrInvalidInput = errors.New("molecule: invalid input")

// ErrLockedMolecule indicates a structural mutation, or a second Closer, on a
// locked molecule.
var ErrLockedMolecule = errors.New("molecule: molecule is locked")

// ErrUnlockedMolecule indicates Formula, MolecularWeight or Unlock on an
// unlocked molecule.
var ErrUnlockedMolecule = errors.New("molecule: molecule is unlocked")

// ErrEmptyMolecule indicates that unlocking left no branch holding a real atom.
var ErrEmptyMolecule = errors.New("molecule: no branch left")

// Re-exported sentinels of the lower layers.
var (
	ErrElementUnknown    = element.ErrElementUnknown
	ErrInvalidBond       = atom.ErrInvalidBond
	ErrAtomNotInMolecule = atom.ErrAtomNotInMolecule
	ErrDuplicateAtom     = atom.ErrDuplicateAtom
)

// opError prefixes err with the facade operation.
func opError(op Op, err error) error {
	return fmt.Errorf("molecule: %s: %w", op, err)
}
