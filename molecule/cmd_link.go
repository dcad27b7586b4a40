// SPDX-License-Identifier: MIT

package molecule

import "github.com/katalvlaran/chemgraph/atom"

// linkBranches bonds two addressed atoms. Linking an already bonded pair
// again forms a multiple bond.
type linkBranches struct {
	m    *Molecule
	a, b *atom.Atom // set only once the bond exists
}

func (c *linkBranches) execute(bd Bond) error {
	c.a, c.b = nil, nil
	a, err := c.m.resolve(bd.Pos1, bd.Branch1)
	if err != nil {
		return err
	}
	b, err := c.m.resolve(bd.Pos2, bd.Branch2)
	if err != nil {
		return err
	}
	if err = atom.Bond(a, b); err != nil {
		return err
	}
	c.a, c.b = a, b

	return nil
}

func (c *linkBranches) undo(Bond) {
	if c.a != nil {
		atom.Unbond(c.a, c.b)
	}
	c.a, c.b = nil, nil
}
