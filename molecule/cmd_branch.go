// SPDX-License-Identifier: MIT

package molecule

import (
	"fmt"

	"github.com/katalvlaran/chemgraph/atom"
)

// growBranch appends a new branch of length linked carbons.
type growBranch struct {
	m      *Molecule
	branch int
	added  []*atom.Atom
}

func (c *growBranch) execute(length int) error {
	c.branch, c.added = 0, c.added[:0]
	if length < 1 {
		return fmt.Errorf("branch length %d: %w", length, ErrInvalidInput)
	}
	c.branch = c.m.branches.NewBranch()

	return c.m.buildRun(c.m.branches, c.branch, carbons(length), &c.added)
}

func (c *growBranch) undo(int) {
	c.m.rollbackRun(c.m.branches, c.branch, c.added)
	c.branch, c.added = 0, nil
}
