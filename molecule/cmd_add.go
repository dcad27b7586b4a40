// SPDX-License-Identifier: MIT

package molecule

import "github.com/katalvlaran/chemgraph/atom"

// addAtom attaches a new atom to an addressed one. The new atom is not
// addressable through the branches.
type addAtom struct {
	m     *Molecule
	added *atom.Atom
}

func (c *addAtom) execute(t Target) error {
	c.added = nil
	anchor, err := c.m.resolve(t.Pos, t.Branch)
	if err != nil {
		return err
	}
	a, err := c.m.spawn(t.Element)
	if err != nil {
		return err
	}
	c.added = a

	return atom.Bond(anchor, a)
}

func (c *addAtom) undo(Target) {
	if c.added != nil {
		c.m.discard(c.added)
	}
	c.added = nil
}
