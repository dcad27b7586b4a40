// SPDX-License-Identifier: MIT

package molecule

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/chemgraph/atom"
)

// addChain builds a run of mixed-element atoms and bonds its first atom to
// an addressed anchor. The run is recorded as a chain, not a branch.
type addChain struct {
	m     *Molecule
	chain int
	added []*atom.Atom
}

func (c *addChain) execute(ch Chaining) error {
	c.chain, c.added = 0, c.added[:0]
	if len(ch.Elements) == 0 {
		return fmt.Errorf("empty chain: %w", ErrInvalidInput)
	}
	var unknown []string
	for _, sym := range ch.Elements {
		if !c.m.cfg.table.Has(sym) {
			unknown = append(unknown, fmt.Sprintf("%q", sym))
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(unknown, ","), ErrElementUnknown)
	}
	anchor, err := c.m.resolve(ch.Pos, ch.Branch)
	if err != nil {
		return err
	}

	c.chain = c.m.chains.NewBranch()
	if err = c.m.buildRun(c.m.chains, c.chain, ch.Elements, &c.added); err != nil {
		return err
	}

	return atom.Bond(c.added[0], anchor)
}

func (c *addChain) undo(Chaining) {
	c.m.rollbackRun(c.m.chains, c.chain, c.added)
	c.chain, c.added = 0, nil
}
