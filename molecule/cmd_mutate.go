// SPDX-License-Identifier: MIT

package molecule

import "github.com/katalvlaran/chemgraph/atom"

// mutateAtom changes the element of an addressed atom, keeping its id and
// its bonds. The new element must be able to hold the bonds already in use;
// the registry enforces that.
type mutateAtom struct {
	m      *Molecule
	target *atom.Atom // set only once the mutation is applied
	prev   string
}

func (c *mutateAtom) execute(t Target) error {
	c.target, c.prev = nil, ""
	a, err := c.m.resolve(t.Pos, t.Branch)
	if err != nil {
		return err
	}
	prev := a.Element()
	if err = c.m.rename(a, t.Element); err != nil {
		return err
	}
	if a.Element() != prev {
		c.target, c.prev = a, prev
	}

	return nil
}

func (c *mutateAtom) undo(Target) {
	if c.target != nil {
		_ = c.m.rename(c.target, c.prev)
	}
	c.target, c.prev = nil, ""
}
