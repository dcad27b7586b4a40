// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/chemgraph/molecule"
)

// ErrBadTuple indicates a malformed comma-separated flag value.
var ErrBadTuple = errors.New("cli: malformed tuple")

// splitTuple splits "a,b,c" into trimmed fields, requiring at least min.
func splitTuple(s string, min int) ([]string, error) {
	fields := strings.Split(s, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < min {
		return nil, fmt.Errorf("%q: want at least %d fields: %w", s, min, ErrBadTuple)
	}
	return fields, nil
}

// atoi parses one integer field of s.
func atoi(s, field string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("%q: %q is not an integer: %w", s, field, ErrBadTuple)
	}
	return n, nil
}

// parseBond parses "p1,b1,p2,b2".
func parseBond(s string) (molecule.Bond, error) {
	f, err := splitTuple(s, 4)
	if err != nil {
		return molecule.Bond{}, err
	}
	if len(f) != 4 {
		return molecule.Bond{}, fmt.Errorf("%q: want 4 fields: %w", s, ErrBadTuple)
	}
	var n [4]int
	for i := range n {
		if n[i], err = atoi(s, f[i]); err != nil {
			return molecule.Bond{}, err
		}
	}
	return molecule.Bond{Pos1: n[0], Branch1: n[1], Pos2: n[2], Branch2: n[3]}, nil
}

// parseTarget parses "pos,branch,Element".
func parseTarget(s string) (molecule.Target, error) {
	f, err := splitTuple(s, 3)
	if err != nil {
		return molecule.Target{}, err
	}
	if len(f) != 3 {
		return molecule.Target{}, fmt.Errorf("%q: want 3 fields: %w", s, ErrBadTuple)
	}
	pos, err := atoi(s, f[0])
	if err != nil {
		return molecule.Target{}, err
	}
	branch, err := atoi(s, f[1])
	if err != nil {
		return molecule.Target{}, err
	}
	return molecule.Target{Pos: pos, Branch: branch, Element: f[2]}, nil
}

// parseChaining parses "pos,branch,El[,El...]".
func parseChaining(s string) (molecule.Chaining, error) {
	f, err := splitTuple(s, 3)
	if err != nil {
		return molecule.Chaining{}, err
	}
	pos, err := atoi(s, f[0])
	if err != nil {
		return molecule.Chaining{}, err
	}
	branch, err := atoi(s, f[1])
	if err != nil {
		return molecule.Chaining{}, err
	}
	return molecule.Chaining{Pos: pos, Branch: branch, Elements: f[2:]}, nil
}
