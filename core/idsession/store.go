package idsession

import "time"

// Store is a keyed collection of sessions. Implementations must be safe
// for concurrent use without external locking; sessions cross the
// boundary by value so the store retains exclusive ownership of its
// entries.
type Store interface {
	// Put stores the session under its ID, replacing any existing entry.
	Put(sess Session)
	// Get returns a copy of the stored session, or false when no entry
	// exists. Absence is not an error.
	Get(id string) (Session, bool)
	// Update applies fn to the stored session atomically with respect to
	// concurrent reads and returns the updated copy, or false when no
	// entry exists.
	Update(id string, fn func(*Session)) (Session, bool)
	// PurgeExpired removes every session created before cutoff and
	// returns the number removed.
	PurgeExpired(cutoff time.Time) int
}
