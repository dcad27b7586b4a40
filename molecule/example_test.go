// SPDX-License-Identifier: MIT

package molecule_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemgraph/molecule"
)

////////////////////////////////////////////////////////////////////////////////
// Facade examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMolecule_Closer locks a single carbon into methane.
func ExampleMolecule_Closer() {
	m := molecule.New("methane")
	_ = m.Brancher(1)
	_ = m.Closer()

	f, _ := m.Formula()
	w, _ := m.MolecularWeight()
	fmt.Println(f, w)
	fmt.Println(m.Atoms()[0])
	// Output:
	// CH4 16
	// Atom(C.1: H,H,H,H)
}

// ExampleBuild assembles isopropylmagnesium bromide:
//
//	CH3
//	   \
//	    CH-Mg-Br
//	   /
//	CH3
func ExampleBuild() {
	m, err := molecule.Build("isopropylmagnesium bromide", nil,
		molecule.Branches(4, 1),
		molecule.Bonds(molecule.Bond{Pos1: 2, Branch1: 1, Pos2: 1, Branch2: 2}),
		molecule.Mutations(
			molecule.Target{Pos: 3, Branch: 1, Element: "Mg"},
			molecule.Target{Pos: 4, Branch: 1, Element: "Br"},
		),
		molecule.Close(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	f, _ := m.Formula()
	w, _ := m.MolecularWeight()
	fmt.Printf("%s %.1f\n", f, w)
	// Output:
	// C3H7BrMg 147.3
}

// ExampleMolecule_Add shows that a failing tuple leaves earlier ones applied.
func ExampleMolecule_Add() {
	m := molecule.New("")
	_ = m.Brancher(1)

	cl := molecule.Target{Pos: 1, Branch: 1, Element: "Cl"}
	err := m.Add(cl, cl, cl, cl, cl)
	fmt.Println(errors.Is(err, molecule.ErrInvalidBond))
	fmt.Println(m.Atoms()[0])
	// Output:
	// true
	// Atom(C.1: Cl2,Cl3,Cl4,Cl5)
}

// ExampleMolecule_Unlock strips hydrogens and renumbers the carbons.
func ExampleMolecule_Unlock() {
	m := molecule.New("")
	_ = m.Brancher(3)
	_ = m.Add(molecule.Target{Pos: 2, Branch: 1, Element: "H"})
	_ = m.Brancher(1)
	_ = m.Bounder(molecule.Bond{Pos1: 2, Branch1: 1, Pos2: 1, Branch2: 2})
	_ = m.Closer()
	_ = m.Unlock()

	fmt.Println(m)
	// Output:
	// Atom(C.1: C2)
	// Atom(C.2: C1,C3,C4)
	// Atom(C.3: C2)
	// Atom(C.4: C2)
}
