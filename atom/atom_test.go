// SPDX-License-Identifier: MIT
// Package atom_test verifies atom construction, bonding and rendering.

package atom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
)

// mustAtom builds an atom from the default table or fails the test.
func mustAtom(t *testing.T, symbol string, id int) *atom.Atom {
	t.Helper()
	a, err := atom.New(nil, symbol, id)
	require.NoError(t, err)

	return a
}

// AtomSuite groups single-atom and pair-level contracts.
type AtomSuite struct {
	suite.Suite
}

func (s *AtomSuite) TestNew() {
	c, err := atom.New(element.Default(), "C", 1)
	s.Require().NoError(err)
	s.Equal("C", c.Element())
	s.Equal(1, c.ID())
	s.Equal(4, c.Valence())
	s.InDelta(12.0, c.Weight(), 1e-9)
	s.Equal(4, c.FreeSpots())
	s.True(c.Bonds().IsEmpty())
	s.Equal(atom.Key{Element: "C", ID: 1}, c.Key())

	_, err = atom.New(nil, "Xx", 1)
	s.ErrorIs(err, element.ErrElementUnknown)
	_, err = atom.New(nil, "C", 0)
	s.ErrorIs(err, atom.ErrInvalidID)
}

func (s *AtomSuite) TestNullAtom() {
	var null *atom.Atom
	s.False(null.Exists())
	s.Equal("", null.Element())
	s.Equal(0, null.ID())
	s.True(null.Key().IsZero())
	s.Equal("Atom(null)", null.String())
}

func (s *AtomSuite) TestClone_Detached() {
	c := mustAtom(s.T(), "C", 1)
	o := mustAtom(s.T(), "O", 2)
	s.Require().NoError(atom.Bond(c, o))

	cp := c.Clone()
	s.Equal(c.String(), cp.String())
	s.NotSame(c, cp)

	// Bonding the clone must leave the original's ledger alone.
	s.Require().NoError(atom.Bond(cp, mustAtom(s.T(), "N", 3)))
	s.Equal("Atom(C.1: O2)", c.String())
	s.Equal(3, c.FreeSpots())

	var null *atom.Atom
	s.Nil(null.Clone())
}

func (s *AtomSuite) TestBond_Symmetric() {
	c1 := mustAtom(s.T(), "C", 1)
	c2 := mustAtom(s.T(), "C", 2)
	s.Require().NoError(atom.Bond(c1, c2))
	s.Require().NoError(atom.Bond(c1, c2))
	s.Equal(2, c1.Bonds().Count("C", 2))
	s.Equal(2, c2.Bonds().Count("C", 1))
	s.Equal("Atom(C.1: C2,C2)", c1.String())
}

func (s *AtomSuite) TestBond_AllOrNothing() {
	c := mustAtom(s.T(), "C", 1)
	f := mustAtom(s.T(), "F", 2)
	br := mustAtom(s.T(), "Br", 3)
	s.Require().NoError(atom.Bond(c, f))

	// F is full: neither side may change.
	err := atom.Bond(br, f)
	s.ErrorIs(err, atom.ErrInvalidBond)
	s.Equal(0, br.Bonds().Total())
	s.Equal(1, f.Bonds().Total())

	s.ErrorIs(atom.Bond(c, c), atom.ErrInvalidBond)
	s.ErrorIs(atom.Bond(c, nil), atom.ErrInvalidBond)
	s.Equal(1, c.Bonds().Total())
}

func (s *AtomSuite) TestUnbond() {
	c := mustAtom(s.T(), "C", 1)
	n := mustAtom(s.T(), "N", 2)
	s.Require().NoError(atom.Bond(c, n))
	s.Require().NoError(atom.Bond(c, n))

	s.True(atom.Unbond(c, n))
	s.Equal(1, c.Bonds().Count("N", 2))
	s.Equal(1, n.Bonds().Count("C", 1))
	s.True(atom.Unbond(n, c))
	s.False(atom.Unbond(c, n))
	s.False(atom.Unbond(c, nil))
}

func (s *AtomSuite) TestString_Ordering() {
	c3 := mustAtom(s.T(), "C", 3)
	for _, p := range []*atom.Atom{
		mustAtom(s.T(), "N", 2),
		mustAtom(s.T(), "C", 4),
		mustAtom(s.T(), "Br", 6),
		mustAtom(s.T(), "O", 7),
	} {
		s.Require().NoError(atom.Bond(c3, p))
	}
	s.Equal("Atom(C.3: C4,O7,Br6,N2)", c3.String())

	c9 := mustAtom(s.T(), "C", 9)
	s.Require().NoError(atom.Bond(c9, mustAtom(s.T(), "S", 8)))
	s.Require().NoError(atom.Bond(c9, mustAtom(s.T(), "B", 10)))
	s.Require().NoError(atom.Bond(c9, mustAtom(s.T(), "H", 12)))
	s.Require().NoError(atom.Bond(c9, mustAtom(s.T(), "H", 11)))
	s.Equal("Atom(C.9: B10,S8,H,H)", c9.String())

	s.Equal("Atom(C.1)", mustAtom(s.T(), "C", 1).String())
}

func TestAtomSuite(t *testing.T) {
	suite.Run(t, new(AtomSuite))
}
