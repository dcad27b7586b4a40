// SPDX-License-Identifier: MIT

package molecule_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
	"github.com/katalvlaran/chemgraph/molecule"
)

// recorder is an in-memory Observer.
type recorder struct {
	commands []string
	locks    []int
	unlocks  []int
}

func (r *recorder) ObserveCommand(op molecule.Op, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.commands = append(r.commands, string(op)+":"+outcome)
}

func (r *recorder) ObserveLock(n int)   { r.locks = append(r.locks, n) }
func (r *recorder) ObserveUnlock(n int) { r.unlocks = append(r.unlocks, n) }

// requireConsistent checks that every bond is recorded on both sides and no
// atom exceeds its valence.
func requireConsistent(t *testing.T, m *molecule.Molecule) {
	t.Helper()
	byKey := make(map[atom.Key]*atom.Atom)
	for _, a := range m.Atoms() {
		byKey[a.Key()] = a
	}
	for _, a := range m.Atoms() {
		require.LessOrEqual(t, a.Bonds().Total(), a.Valence(), "%s over valence", a.Key())
		for _, p := range a.Bonds().Partners() {
			n, ok := byKey[p]
			require.True(t, ok, "%s bonded to unknown %s", a.Key(), p)
			require.Equal(t,
				a.Bonds().Count(p.Element, p.ID),
				n.Bonds().Count(a.Element(), a.ID()),
				"asymmetric bond %s-%s", a.Key(), p)
		}
	}
}

// MoleculeSuite covers the facade state machine and its error surface.
type MoleculeSuite struct {
	suite.Suite
	m *molecule.Molecule
}

func (s *MoleculeSuite) SetupTest() {
	s.m = molecule.New("test")
}

func (s *MoleculeSuite) TestLockedRejectsMutators() {
	s.Require().NoError(s.m.Brancher(2))
	s.Require().NoError(s.m.Closer())
	s.True(s.m.Locked())

	s.ErrorIs(s.m.Brancher(1), molecule.ErrLockedMolecule)
	s.ErrorIs(s.m.Bounder(bd(1, 1, 2, 1)), molecule.ErrLockedMolecule)
	s.ErrorIs(s.m.Mutate(tg(1, 1, "O")), molecule.ErrLockedMolecule)
	s.ErrorIs(s.m.Add(tg(1, 1, "O")), molecule.ErrLockedMolecule)
	s.ErrorIs(s.m.AddChaining(1, 1, "O"), molecule.ErrLockedMolecule)
	s.ErrorIs(s.m.Closer(), molecule.ErrLockedMolecule)
}

func (s *MoleculeSuite) TestUnlockedRejectsReads() {
	s.Require().NoError(s.m.Brancher(2))
	s.False(s.m.Locked())

	_, err := s.m.Formula()
	s.ErrorIs(err, molecule.ErrUnlockedMolecule)
	_, err = s.m.MolecularWeight()
	s.ErrorIs(err, molecule.ErrUnlockedMolecule)
	s.ErrorIs(s.m.Unlock(), molecule.ErrUnlockedMolecule)
	s.Nil(s.m.Hydrogens())
}

func (s *MoleculeSuite) TestInvalidInput() {
	err := s.m.Brancher(2, 0, 3)
	s.ErrorIs(err, molecule.ErrInvalidInput)
	s.EqualError(err, "molecule: brancher: 0: branch length 0: molecule: invalid input")
	s.Len(s.m.Atoms(), 2, "tuples after the failing one are skipped")
	s.Len(s.m.Branches(), 2)

	s.ErrorIs(s.m.Bounder(bd(0, 1, 1, 1)), molecule.ErrInvalidInput)
	s.ErrorIs(s.m.AddChaining(1, 1), molecule.ErrInvalidInput)
}

func (s *MoleculeSuite) TestUnknownElements() {
	s.Require().NoError(s.m.Brancher(2))

	err := s.m.AddChaining(1, 1, "Xx", "C", "Yy")
	s.ErrorIs(err, molecule.ErrElementUnknown)
	s.NotErrorIs(err, molecule.ErrInvalidBond)
	s.ErrorIs(s.m.Mutate(tg(1, 1, "Xx")), molecule.ErrElementUnknown)
	s.ErrorIs(s.m.Add(tg(1, 1, "Xx")), molecule.ErrElementUnknown)

	s.Equal([]string{"Atom(C.1: C2)", "Atom(C.2: C1)"}, render(s.m, true))
}

func (s *MoleculeSuite) TestAddressing() {
	s.Require().NoError(s.m.Brancher(2))

	a, err := s.m.At(2, 1)
	s.Require().NoError(err)
	s.Equal(atom.Key{Element: "C", ID: 2}, a.Key())

	_, err = s.m.At(3, 1)
	s.ErrorIs(err, molecule.ErrAtomNotInMolecule)
	err = s.m.Add(tg(1, 2, "O"))
	s.ErrorIs(err, molecule.ErrAtomNotInMolecule)
	s.ErrorIs(err, molecule.ErrInvalidBond)
}

func (s *MoleculeSuite) TestAddedAtomsAreNotAddressable() {
	s.Require().NoError(s.m.Brancher(1))
	s.Require().NoError(s.m.Add(tg(1, 1, "O")))
	s.Require().NoError(s.m.AddChaining(1, 1, "N", "C"))

	want := [][]atom.Key{{}, {key("C", 1)}}
	if diff := cmp.Diff(want, s.m.Branches()); diff != "" {
		s.Failf("branches mismatch", "(-want +got):\n%s", diff)
	}
	wantChains := [][]atom.Key{{}, {key("N", 3), key("C", 4)}}
	if diff := cmp.Diff(wantChains, s.m.Chains()); diff != "" {
		s.Failf("chains mismatch", "(-want +got):\n%s", diff)
	}
}

func (s *MoleculeSuite) TestMutationRelabelsBranches() {
	s.Require().NoError(s.m.Brancher(3))
	s.Require().NoError(s.m.Mutate(tg(2, 1, "O")))
	s.Require().NoError(s.m.Mutate(tg(2, 1, "O")), "same element is a no-op")

	want := [][]atom.Key{{}, {key("C", 1), key("O", 2), key("C", 3)}}
	if diff := cmp.Diff(want, s.m.Branches()); diff != "" {
		s.Failf("branches mismatch", "(-want +got):\n%s", diff)
	}
	s.Equal([]string{"Atom(C.1: O2)", "Atom(O.2: C1,C3)", "Atom(C.3: O2)"}, render(s.m, true))
	requireConsistent(s.T(), s.m)
}

func (s *MoleculeSuite) TestCloseUnlockRoundTrip() {
	s.Require().NoError(s.m.Brancher(4, 1))
	s.Require().NoError(s.m.Bounder(bd(2, 1, 1, 2), bd(1, 1, 1, 2)))
	s.Require().NoError(s.m.Mutate(tg(3, 1, "Mg"), tg(4, 1, "Br")))
	s.Require().NoError(s.m.AddChaining(2, 1, "O", "C"))
	requireConsistent(s.T(), s.m)

	atoms := render(s.m, true)
	branches := s.m.Branches()
	chains := s.m.Chains()

	s.Require().NoError(s.m.Closer())
	requireConsistent(s.T(), s.m)
	s.NotEmpty(s.m.Hydrogens())
	s.Require().NoError(s.m.Unlock())

	s.Equal(atoms, render(s.m, true))
	s.Empty(cmp.Diff(branches, s.m.Branches()))
	s.Empty(cmp.Diff(chains, s.m.Chains()))
	s.Nil(s.m.Hydrogens())
}

func (s *MoleculeSuite) TestUnlockToEmptyMolecule() {
	s.Require().NoError(s.m.Brancher(1))
	s.Require().NoError(s.m.Mutate(tg(1, 1, "H")))
	s.Require().NoError(s.m.Closer())
	f, err := s.m.Formula()
	s.Require().NoError(err)
	s.Equal("H2", f)

	s.ErrorIs(s.m.Unlock(), molecule.ErrEmptyMolecule)
	s.False(s.m.Locked())
	s.Empty(s.m.Atoms())
	s.Len(s.m.Branches(), 1)
}

func (s *MoleculeSuite) TestIsomorphicFormulas() {
	a, err := molecule.Build("", nil, molecule.Branches(4), molecule.Close())
	s.Require().NoError(err)
	b, err := molecule.Build("", nil,
		molecule.Branches(3, 1),
		molecule.Bonds(bd(2, 1, 1, 2)),
		molecule.Close(),
	)
	s.Require().NoError(err)

	fa, _ := a.Formula()
	fb, _ := b.Formula()
	s.Equal("C4H10", fa)
	s.Equal(fa, fb)
	wa, _ := a.MolecularWeight()
	wb, _ := b.MolecularWeight()
	s.InDelta(wa, wb, 1e-9)
}

func TestMoleculeSuite(t *testing.T) {
	suite.Run(t, new(MoleculeSuite))
}

func TestPerElementIDs(t *testing.T) {
	m := molecule.New("", molecule.WithIDScheme(molecule.PerElementIDs))
	require.NoError(t, m.Brancher(2))
	require.NoError(t, m.Add(tg(2, 1, "O")))
	require.Equal(t, []string{"Atom(C.1: C2)", "Atom(C.2: C1,O1)", "Atom(O.1: C2)"}, render(m, true))

	require.ErrorIs(t, m.Mutate(tg(1, 1, "O")), molecule.ErrDuplicateAtom)
	require.Equal(t, "Atom(C.1: C2)", m.Atoms()[0].String())

	require.NoError(t, m.Mutate(tg(2, 1, "N")))
	require.NoError(t, m.Closer())
	f, err := m.Formula()
	require.NoError(t, err)
	require.Equal(t, "CH5ON", f)
	requireConsistent(t, m)
}

func TestPerElementIDsSurviveCloseAndUnlock(t *testing.T) {
	m := molecule.New("", molecule.WithIDScheme(molecule.PerElementIDs))
	require.NoError(t, m.Brancher(3))
	require.NoError(t, m.Add(tg(1, 1, "O")))
	before := render(m, true)
	require.Equal(t, []string{"Atom(C.1: C2,O1)", "Atom(C.2: C1,C3)", "Atom(C.3: C2)", "Atom(O.1: C1)"}, before)
	branches := m.Branches()

	require.NoError(t, m.Closer())
	require.NoError(t, m.Unlock())
	require.Equal(t, before, render(m, true), "nothing removed, nothing renumbered")
	require.Empty(t, cmp.Diff(branches, m.Branches()))

	require.NoError(t, m.Add(tg(2, 1, "O")))
	require.Contains(t, render(m, true), "Atom(O.2: C2)")
	requireConsistent(t, m)
}

func TestPerElementIDsRenumberWithinElement(t *testing.T) {
	m := molecule.New("", molecule.WithIDScheme(molecule.PerElementIDs))
	require.NoError(t, m.Brancher(1, 2))
	require.NoError(t, m.Mutate(tg(1, 1, "H")))
	require.NoError(t, m.Closer())
	require.NoError(t, m.Unlock())

	require.Equal(t, []string{"Atom(C.1: C2)", "Atom(C.2: C1)"}, render(m, true))
	a, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, atom.Key{Element: "C", ID: 1}, a.Key())
	requireConsistent(t, m)
}

func TestFailedBondLeavesMoleculeUnchanged(t *testing.T) {
	m := molecule.New("")
	require.NoError(t, m.Brancher(3, 1, 1, 1))
	require.NoError(t, m.Bounder(bd(2, 1, 1, 2), bd(2, 1, 1, 3)))
	before := render(m, true)
	branches := m.Branches()

	for name, b := range map[string]molecule.Bond{
		"valence overflow": bd(2, 1, 1, 4),
		"self bond":        bd(1, 1, 1, 1),
	} {
		err := m.Bounder(b)
		require.ErrorIs(t, err, molecule.ErrInvalidBond, name)
		require.Equal(t, before, render(m, true), name)
		require.Empty(t, cmp.Diff(branches, m.Branches()), name)
		requireConsistent(t, m)
	}
}

func TestFailedMutationLeavesAtomUnchanged(t *testing.T) {
	m := molecule.New("")
	require.NoError(t, m.Brancher(3))
	require.NoError(t, m.Bounder(bd(1, 1, 2, 1), bd(3, 1, 2, 1)))
	before := render(m, true)
	require.Equal(t, "Atom(C.2: C1,C1,C3,C3)", before[1])

	require.ErrorIs(t, m.Mutate(tg(2, 1, "N")), molecule.ErrInvalidBond)
	require.Equal(t, before, render(m, true))
	a, err := m.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, "C", a.Element())
	require.Equal(t, 0, a.FreeSpots())
	requireConsistent(t, m)
}

func TestSnapshotsAreDetached(t *testing.T) {
	m := molecule.New("")
	require.NoError(t, m.Brancher(2))

	stray, err := atom.New(nil, "O", 9)
	require.NoError(t, err)
	require.NoError(t, atom.Bond(m.Atoms()[0], stray))

	a, err := m.At(2, 1)
	require.NoError(t, err)
	require.NoError(t, atom.Bond(a, stray))

	require.Equal(t, []string{"Atom(C.1: C2)", "Atom(C.2: C1)"}, render(m, true))
	require.NoError(t, m.Closer())
	f, err := m.Formula()
	require.NoError(t, err)
	require.Equal(t, "C2H6", f)
	requireConsistent(t, m)
}

func TestCustomElementTable(t *testing.T) {
	tbl, err := element.Parse([]byte(`
elements:
  - {symbol: C, valence: 2, weight: 12}
  - {symbol: H, valence: 1, weight: 1}
`))
	require.NoError(t, err)

	m := molecule.New("ring", molecule.WithElementTable(tbl))
	require.NoError(t, m.Brancher(3))
	require.ErrorIs(t, m.Mutate(tg(1, 1, "O")), molecule.ErrElementUnknown)
	require.NoError(t, m.Bounder(bd(1, 1, 3, 1)))
	require.ErrorIs(t, m.Add(tg(2, 1, "H")), molecule.ErrInvalidBond)
	require.NoError(t, m.Closer())

	f, err := m.Formula()
	require.NoError(t, err)
	require.Equal(t, "C3", f)
	w, err := m.MolecularWeight()
	require.NoError(t, err)
	require.InDelta(t, 36.0, w, 1e-9)
}

func TestObserverAndLogger(t *testing.T) {
	rec := &recorder{}
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := molecule.New("obs", molecule.WithObserver(rec), molecule.WithLogger(logger))
	require.Error(t, m.Brancher(1, 0))
	require.NoError(t, m.Closer())
	require.Error(t, m.Brancher(1))
	require.NoError(t, m.Unlock())

	require.Equal(t, []string{
		"brancher:ok", "brancher:error", "closer:ok", "brancher:error", "unlock:ok",
	}, rec.commands)
	require.Equal(t, []int{4}, rec.locks)
	require.Equal(t, []int{4}, rec.unlocks)

	out := buf.String()
	require.Contains(t, out, `"op":"brancher"`)
	require.Contains(t, out, `"msg":"rolled back"`)
	require.Contains(t, out, `"msg":"locked"`)
	require.Contains(t, out, `"hydrogens_removed":4`)
}

func TestOptionsPanicOnInvalidValues(t *testing.T) {
	require.Panics(t, func() { molecule.WithElementTable(nil) })
	require.Panics(t, func() { molecule.WithLogger(nil) })
	require.Panics(t, func() { molecule.WithObserver(nil) })
	require.Panics(t, func() { molecule.WithIDScheme(molecule.IDScheme(9)) })
}

func TestBuildErrors(t *testing.T) {
	m, err := molecule.Build("", nil, molecule.Branches(1), nil)
	require.Nil(t, m)
	require.ErrorIs(t, err, molecule.ErrInvalidInput)

	_, err = molecule.Build("", nil, molecule.Branches(1), molecule.Open())
	require.ErrorIs(t, err, molecule.ErrUnlockedMolecule)
	require.ErrorContains(t, err, "Build: ")

	m, err = molecule.Build("cycle", nil, molecule.Branches(3), molecule.Close(), molecule.Open())
	require.NoError(t, err)
	require.False(t, m.Locked())
	require.Len(t, m.Atoms(), 3)
}

func TestTupleRendering(t *testing.T) {
	require.Equal(t, "[1,2,3,4]", bd(1, 2, 3, 4).String())
	require.Equal(t, "[1,1,Cl]", tg(1, 1, "Cl").String())
	require.Equal(t, "[4,1,S,C,B]", molecule.Chaining{Pos: 4, Branch: 1, Elements: []string{"S", "C", "B"}}.String())
	require.Equal(t, "serial", molecule.SerialIDs.String())
	require.Equal(t, "per-element", molecule.PerElementIDs.String())
	require.Equal(t, "IDScheme(9)", molecule.IDScheme(9).String())
}

func TestTopology(t *testing.T) {
	m := molecule.New("")
	require.NoError(t, m.Brancher(2, 3))
	require.Equal(t, [][]atom.Key{
		{key("C", 1), key("C", 2)},
		{key("C", 3), key("C", 4), key("C", 5)},
	}, m.Fragments())
	require.Zero(t, m.Rings())

	cubane, err := molecule.Build("cubane", nil,
		molecule.Branches(4, 4),
		molecule.Bonds(bd(1, 1, 4, 1), bd(1, 2, 4, 2), bd(1, 1, 1, 2), bd(2, 1, 2, 2), bd(3, 1, 3, 2), bd(4, 1, 4, 2)),
		molecule.Close(),
	)
	require.NoError(t, err)
	require.Len(t, cubane.Fragments(), 1)
	require.Equal(t, 5, cubane.Rings())

	benzene, err := molecule.Build("benzene", nil,
		molecule.Branches(2, 2, 2),
		molecule.Bonds(bd(1, 1, 2, 1), bd(1, 2, 2, 2), bd(1, 3, 2, 3), bd(2, 1, 1, 2), bd(2, 2, 1, 3), bd(2, 3, 1, 1)),
	)
	require.NoError(t, err)
	require.Equal(t, 1, benzene.Rings(), "double bonds count once")
}
