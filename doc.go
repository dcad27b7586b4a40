// Package chemgraph builds organic-molecule-like graphs under valence
// constraints, locks them with hydrogens and reports their raw formula and
// molecular weight.
//
// What is inside?
//
//	element/  - symbol → valence/weight table (YAML, built-in reference set)
//	atom/     - Atom, bond Ledger and the per-molecule Registry
//	molecule/ - branch addressing, commands with rollback, the Molecule facade
//	metrics/  - Prometheus Observer for molecule operations
//	cmd/      - the chemgraph command-line tool
//
// Quick ASCII example (isopropylmagnesium bromide):
//
//	CH3
//	   \
//	    CH─Mg─Br
//	   /
//	CH3
//
//	m, _ := molecule.Build("isopropylmagnesium bromide", nil,
//		molecule.Branches(4, 1),
//		molecule.Bonds(molecule.Bond{Pos1: 2, Branch1: 1, Pos2: 1, Branch2: 2}),
//		molecule.Mutations(
//			molecule.Target{Pos: 3, Branch: 1, Element: "Mg"},
//			molecule.Target{Pos: 4, Branch: 1, Element: "Br"},
//		),
//		molecule.Close(),
//	)
//	f, _ := m.Formula()          // "C3H7BrMg"
//	w, _ := m.MolecularWeight()  // 147.3
package chemgraph
