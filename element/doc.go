// Package element provides the registry of chemical elements known to
// chemgraph: for every symbol, the maximum number of bond units an atom of
// that element may take part in (its valence) and its atomic weight.
//
// What:
//
//   - Element is a plain value {Symbol, Valence, Weight}.
//   - Table is an immutable symbol → Element registry.
//   - Default() returns the fixed reference table (H, B, C, N, O, F, Mg, P,
//     S, Cl, Br), decoded once from the embedded elements.yaml.
//   - Parse/Load decode alternative tables with the same YAML schema.
//
// Why:
//
//   - Every other package derives capacity and weight from a Table, so the
//     valence rules live in exactly one place.
//
// Errors:
//
//   - ErrElementUnknown: symbol outside the table.
//   - ErrInvalidTable: a decoded table is empty, has duplicate symbols, or
//     non-positive valences/weights.
//
// Schema:
//
//	elements:
//	  - symbol: C
//	    valence: 4
//	    weight: 12.0
package element
