// SPDX-License-Identifier: MIT

package atom

import "fmt"

// Bond links a and b symmetrically, consuming one bond unit on each side.
// Both sides are validated before either ledger is touched, so a failure
// leaves a and b exactly as they were. Bonding an already linked pair again
// forms a multiple bond.
func Bond(a, b *Atom) error {
	switch {
	case !a.Exists() || !b.Exists():
		return fmt.Errorf("%s cannot connect to %s: %w", a.Key(), b.Key(), ErrInvalidBond)
	case a == b || a.Key() == b.Key():
		return fmt.Errorf("%s cannot connect to itself: %w", a.Key(), ErrInvalidBond)
	case a.FreeSpots() < 1 || b.FreeSpots() < 1:
		return fmt.Errorf("%s cannot connect to %s: %w", a.Key(), b.Key(), ErrInvalidBond)
	}
	if err := a.linkTo(b); err != nil {
		return err
	}
	if err := b.linkTo(a); err != nil {
		a.bonds.remove(b.element, b.id)
		return err
	}

	return nil
}

// Unbond removes one bond unit between a and b on both sides.
// Returns false, changing nothing, when no such bond exists.
func Unbond(a, b *Atom) bool {
	if !a.Exists() || !b.Exists() {
		return false
	}
	if a.bonds.Count(b.element, b.id) == 0 || b.bonds.Count(a.element, a.id) == 0 {
		return false
	}
	a.bonds.remove(b.element, b.id)
	b.bonds.remove(a.element, a.id)

	return true
}
