// SPDX-License-Identifier: MIT
// File: skeleton.go
// Role: Branch/chain addressing. A Skeleton is an arena of ordered slot lists
//       holding atom Keys; commands translate a human-facing (slot, branch)
//       pair into a registry lookup through Position.
// Layout:
//   - branches[0] is a reserved root holding only the placeholder, so that
//     user-facing branch indexes start at 1 and an empty molecule still has a
//     meaningful index space. It is never pruned.
//   - slot 0 of every branch is the placeholder (zero Key), so slots are
//     1-based and "no previous atom" is explicit while linking a new branch.
// Invariants:
//   - Only Keys are stored; renaming or renumbering an atom rewrites slot
//     contents through Relabel/Rewrite, never a graph of pointers.

package molecule

import (
	"github.com/katalvlaran/chemgraph/atom"
	"github.com/katalvlaran/chemgraph/element"
)

// Skeleton is an ordered collection of branches.
type Skeleton struct {
	branches [][]atom.Key
}

// NewSkeleton returns a skeleton holding only the root branch.
func NewSkeleton() *Skeleton {
	return &Skeleton{branches: [][]atom.Key{{{}}}}
}

// NewBranch appends an empty, placeholder-led branch and returns its index.
func (s *Skeleton) NewBranch() int {
	s.branches = append(s.branches, []atom.Key{{}})

	return len(s.branches) - 1
}

// Append stores k in the next slot of branch. Out-of-range branches are ignored.
func (s *Skeleton) Append(branch int, k atom.Key) {
	if branch < 1 || branch >= len(s.branches) {
		return
	}
	s.branches[branch] = append(s.branches[branch], k)
}

// Position returns the Key stored at slot of branch, or false when the pair
// is out of range or addresses a placeholder.
// Complexity: O(1).
func (s *Skeleton) Position(branch, slot int) (atom.Key, bool) {
	if branch < 0 || branch >= len(s.branches) {
		return atom.Key{}, false
	}
	b := s.branches[branch]
	if slot < 1 || slot >= len(b) {
		return atom.Key{}, false
	}

	return b[slot], true
}

// Discard drops branch if it is the last one; used to roll back a branch
// whose construction failed. The root cannot be discarded.
func (s *Skeleton) Discard(branch int) bool {
	if branch < 1 || branch != len(s.branches)-1 {
		return false
	}
	s.branches = s.branches[:branch]

	return true
}

// Len returns the number of branches, root included.
func (s *Skeleton) Len() int { return len(s.branches) }

// Relabel replaces every slot holding old with to and returns the count.
func (s *Skeleton) Relabel(old, to atom.Key) int {
	n := 0
	for _, b := range s.branches {
		for i := 1; i < len(b); i++ {
			if b[i] == old {
				b[i] = to
				n++
			}
		}
	}

	return n
}

// Rewrite passes every non-placeholder slot through fn.
func (s *Skeleton) Rewrite(fn func(atom.Key) atom.Key) {
	for _, b := range s.branches {
		for i := 1; i < len(b); i++ {
			b[i] = fn(b[i])
		}
	}
}

// Dehydrogenate drops every hydrogen slot from every branch; later slots of
// the branch shift down. Returns the number of slots removed.
func (s *Skeleton) Dehydrogenate() int {
	removed := 0
	for bi, b := range s.branches {
		kept := b[:1]
		for _, k := range b[1:] {
			if k.Element == element.Hydrogen {
				removed++
				continue
			}
			kept = append(kept, k)
		}
		s.branches[bi] = kept
	}

	return removed
}

// PruneEmpty drops every branch but the root that holds only its
// placeholder. Later branches shift down. Returns the number dropped.
func (s *Skeleton) PruneEmpty() int {
	kept := s.branches[:1]
	for _, b := range s.branches[1:] {
		if len(b) > 1 {
			kept = append(kept, b)
		}
	}
	dropped := len(s.branches) - len(kept)
	s.branches = kept

	return dropped
}

// HasAtoms reports whether any branch holds at least one real atom.
func (s *Skeleton) HasAtoms() bool {
	for _, b := range s.branches {
		if len(b) > 1 {
			return true
		}
	}

	return false
}

// Snapshot returns a copy of every branch, root included, without
// placeholders: Snapshot()[b][slot-1] is the Key at (slot, b).
func (s *Skeleton) Snapshot() [][]atom.Key {
	out := make([][]atom.Key, len(s.branches))
	for i, b := range s.branches {
		out[i] = make([]atom.Key, len(b)-1)
		copy(out[i], b[1:])
	}

	return out
}
