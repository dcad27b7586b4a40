// SPDX-License-Identifier: MIT

package atom

import "strconv"

// Key addresses an atom by (element, id). Ids are unique within an element at
// any instant; the zero Key is the "no atom" placeholder.
type Key struct {
	Element string
	ID      int
}

// IsZero reports whether k is the placeholder.
func (k Key) IsZero() bool { return k.Element == "" && k.ID == 0 }

// String renders k as "C.3".
func (k Key) String() string { return k.Element + "." + strconv.Itoa(k.ID) }
