// SPDX-License-Identifier: MIT
// Package: chemgraph/atom
//
// errors.go - sentinel errors for atoms, ledgers and the registry.

package atom

import (
	"errors"
	"fmt"
)

// ErrInvalidBond indicates a bond that would break the valence rules: a
// self-bond, a bond to the null atom, or a bond past an atom's capacity.
var ErrInvalidBond = errors.New("atom: invalid bond")

// ErrAtomNotInMolecule indicates an address resolved to the null atom where a
// real atom was required. It wraps ErrInvalidBond: an unresolved bond endpoint
// is also a bond that cannot be made.
var ErrAtomNotInMolecule = fmt.Errorf("atom: atom not in molecule: %w", ErrInvalidBond)

// ErrDuplicateAtom indicates a registry already holds an atom under the same
// (element, id) key.
var ErrDuplicateAtom = errors.New("atom: duplicate atom key")

// ErrInvalidID indicates an atom id below 1.
var ErrInvalidID = errors.New("atom: id must be positive")
