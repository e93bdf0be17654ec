// Package lock implements the seat-lock table: temporary, exclusive,
// time-bounded claims on seats taken between seat selection and booking
// confirmation.  The provider in this package is the sole arbiter of
// "who currently holds seat S" for the whole process.
package lock

import (
	"time"

	"github.com/showtix/seat-booking/internal/model"
)

// SeatLock records one seat being held by one user for a bounded
// duration.  A SeatLock is immutable once created; when a lock expires
// and the seat is taken again, a fresh SeatLock replaces it rather
// than the old one being refreshed in place.
//
// Fields:
//  Seat     – the seat being held.
//  Show     – the show the seat belongs to; part of the lock key.
//  LockedBy – the user holding the seat.
//  LockedAt – when the hold was taken.
//  TTL      – how long the hold stays valid.
type SeatLock struct {
	Seat     *model.Seat
	Show     *model.Show
	LockedBy *model.User
	LockedAt time.Time
	TTL      time.Duration
}

// IsExpired reports whether the lock has outlived its TTL at the given
// instant.  Expiry is discovered lazily on access; nothing sweeps the
// table in the background.
func (l *SeatLock) IsExpired(now time.Time) bool {
	return now.Sub(l.LockedAt) > l.TTL
}
