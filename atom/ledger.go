// SPDX-License-Identifier: MIT
// File: ledger.go
// Role: Per-atom multiset of bond partners, grouped by partner element.
// Determinism:
//   - Elements() and Partners() return sorted results.
//   - IDs keep insertion order; a repeated id is one more bond unit
//     (double/triple bonds).
// Invariants:
//   - No empty buckets: removing the last id of an element drops the bucket.
//   - Ledgers are only ever mutated in reciprocal pairs by Bond/Unbond and the
//     registry cascades, hence the unexported mutators; a Ledger never
//     validates capacity itself.

package atom

import "sort"

// Ledger records which atoms an atom is bonded to.
// links[partnerElement] = partner ids (duplicates allowed).
type Ledger struct {
	links map[string][]int
}

// newLedger returns an empty ledger.
func newLedger() *Ledger {
	return &Ledger{links: make(map[string][]int)}
}

// add appends one bond unit towards elem/id.
// Complexity: O(1) amortized.
func (l *Ledger) add(elem string, id int) {
	l.links[elem] = append(l.links[elem], id)
}

// remove drops one bond unit towards elem/id and reports whether one existed.
// Complexity: O(k) for k bonds towards elem.
func (l *Ledger) remove(elem string, id int) bool {
	ids, ok := l.links[elem]
	if !ok {
		return false
	}
	for i, v := range ids {
		if v != id {
			continue
		}
		ids = append(ids[:i], ids[i+1:]...)
		if len(ids) == 0 {
			delete(l.links, elem)
		} else {
			l.links[elem] = ids
		}

		return true
	}

	return false
}

// Count returns the number of bond units towards elem/id.
func (l *Ledger) Count(elem string, id int) int {
	n := 0
	for _, v := range l.links[elem] {
		if v == id {
			n++
		}
	}

	return n
}

// Total returns the number of bond units across all partners.
// Complexity: O(E) for E distinct partner elements.
func (l *Ledger) Total() int {
	total := 0
	for _, ids := range l.links {
		total += len(ids)
	}

	return total
}

// IsEmpty reports whether the atom has no bond at all.
func (l *Ledger) IsEmpty() bool { return len(l.links) == 0 }

// Elements returns the partner elements in ascending order.
func (l *Ledger) Elements() []string {
	out := make([]string, 0, len(l.links))
	for elem := range l.links {
		out = append(out, elem)
	}
	sort.Strings(out)

	return out
}

// IDs returns a copy of the partner ids recorded under elem.
func (l *Ledger) IDs(elem string) []int {
	ids := l.links[elem]
	out := make([]int, len(ids))
	copy(out, ids)

	return out
}

// Partners returns every distinct partner once, sorted by element then id.
func (l *Ledger) Partners() []Key {
	out := make([]Key, 0, len(l.links))
	for _, elem := range l.Elements() {
		seen := make(map[int]struct{}, len(l.links[elem]))
		for _, id := range l.links[elem] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, Key{Element: elem, ID: id})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Element != out[j].Element {
			return out[i].Element < out[j].Element
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// rename moves every bond unit recorded as oldElem/id to newElem/id.
// Used when the partner changed element but kept its id.
func (l *Ledger) rename(oldElem, newElem string, id int) {
	if oldElem == newElem {
		return
	}
	for n := l.Count(oldElem, id); n > 0; n-- {
		l.remove(oldElem, id)
		l.add(newElem, id)
	}
}

// remap rewrites every entry through fn in one pass, so that a permutation of
// ids never collides with itself halfway through.
func (l *Ledger) remap(fn func(Key) Key) {
	next := make(map[string][]int, len(l.links))
	for elem, ids := range l.links {
		for _, id := range ids {
			k := fn(Key{Element: elem, ID: id})
			next[k.Element] = append(next[k.Element], k.ID)
		}
	}
	l.links = next
}

// clone returns a deep copy.
func (l *Ledger) clone() *Ledger {
	c := newLedger()
	for elem, ids := range l.links {
		c.links[elem] = append([]int(nil), ids...)
	}

	return c
}

// clear drops every entry.
func (l *Ledger) clear() {
	l.links = make(map[string][]int)
}
