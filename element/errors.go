// SPDX-License-Identifier: MIT
// Package: chemgraph/element
//
// errors.go - sentinel errors for the element package.
//
// Callers branch with errors.Is; implementations attach the offending symbol
// or field with %w wrapping, never by redefining the sentinel.

package element

import "errors"

// ErrElementUnknown indicates a symbol that is not part of the Table in use.
var ErrElementUnknown = errors.New("element: unknown element")

// ErrInvalidTable indicates a decoded table violates the table contract
// (empty, duplicate symbol, non-positive valence or weight).
var ErrInvalidTable = errors.New("element: invalid element table")
