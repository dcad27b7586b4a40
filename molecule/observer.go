// SPDX-License-Identifier: MIT

package molecule

// Observer receives the outcome of facade operations. Calls happen
// synchronously on the caller's goroutine, after the operation settled.
type Observer interface {
	// ObserveCommand is called once per applied tuple (or once for Closer and
	// Unlock); err is nil on success.
	ObserveCommand(op Op, err error)

	// ObserveLock reports how many hydrogens Closer added.
	ObserveLock(hydrogens int)

	// ObserveUnlock reports how many hydrogens Unlock removed.
	ObserveUnlock(hydrogens int)
}

type nopObserver struct{}

func (nopObserver) ObserveCommand(Op, error) {}
func (nopObserver) ObserveLock(int)          {}
func (nopObserver) ObserveUnlock(int)        {}
