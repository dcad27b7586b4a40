// SPDX-License-Identifier: MIT

package molecule

import "fmt"

// Op names a facade operation; it labels logs, metrics and errors.
type Op string

// Facade operations.
const (
	OpBrancher    Op = "brancher"
	OpBounder     Op = "bounder"
	OpMutate      Op = "mutate"
	OpAdd         Op = "add"
	OpAddChaining Op = "addChaining"
	OpCloser      Op = "closer"
	OpUnlock      Op = "unlock"
)

// Bond addresses two atoms to link: slot Pos1 of branch Branch1 with slot
// Pos2 of branch Branch2. Slots and branches are 1-based.
type Bond struct {
	Pos1, Branch1 int
	Pos2, Branch2 int
}

// String renders the tuple as "[p1,b1,p2,b2]".
func (b Bond) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", b.Pos1, b.Branch1, b.Pos2, b.Branch2)
}

// Target addresses one atom (Pos, Branch) together with an element: the new
// element for Mutate, the element of the atom to attach for Add.
type Target struct {
	Pos, Branch int
	Element     string
}

// String renders the tuple as "[pos,branch,El]".
func (t Target) String() string {
	return fmt.Sprintf("[%d,%d,%s]", t.Pos, t.Branch, t.Element)
}

// Chaining describes a chain of Elements, in order, whose first atom is
// bonded to slot Pos of branch Branch.
type Chaining struct {
	Pos, Branch int
	Elements    []string
}

// String renders the tuple as "[pos,branch,El,El,...]".
func (c Chaining) String() string {
	s := fmt.Sprintf("[%d,%d", c.Pos, c.Branch)
	for _, e := range c.Elements {
		s += "," + e
	}

	return s + "]"
}

// IDScheme selects how new atom ids are allocated.
type IDScheme int

const (
	// SerialIDs numbers atoms molecule-wide: every new atom takes the highest
	// id in the molecule plus one, whatever its element.
	SerialIDs IDScheme = iota

	// PerElementIDs numbers atoms per element: a new atom takes the highest
	// id of its own element plus one.
	PerElementIDs
)

// String returns the scheme name.
func (s IDScheme) String() string {
	switch s {
	case SerialIDs:
		return "serial"
	case PerElementIDs:
		return "per-element"
	default:
		return fmt.Sprintf("IDScheme(%d)", int(s))
	}
}
