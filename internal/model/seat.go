package model

import (
	"strconv"
	"sync/atomic"
)

// SeatType categorises seats for display and pricing purposes.
type SeatType string

const (
	SeatRegular SeatType = "REGULAR"
	SeatPremium SeatType = "PREMIUM"
	SeatVIP     SeatType = "VIP"
)

// Seat is one bookable seat of a show.  Seat identity (show + seat id)
// is the key used by the lock provider; everything except the booked
// flag is immutable after catalog load.
//
// The booked flag is the only piece of seat state the booking flow
// mutates.  It is stored as an atomic so that concurrent readers (seat
// availability listings, lock checks) never observe a torn write; the
// ordering of booked-flag transitions relative to lock-table changes is
// enforced by the lock provider's critical section.
//
// Fields:
//  ID     – seat identifier, unique within a show.
//  Row    – row label such as "A".
//  Number – seat number within the row.
//  Type   – REGULAR, PREMIUM or VIP.
type Seat struct {
	ID     uint64   // seats.id
	Row    string   // seats.row_label
	Number uint32   // seats.seat_number
	Type   SeatType // seats.seat_type

	booked atomic.Bool
}

// IsBooked reports whether the seat has been permanently booked.
func (s *Seat) IsBooked() bool { return s.booked.Load() }

// Book marks the seat as permanently booked.  Callers must only invoke
// this while the seat is locked on their behalf by the lock provider.
func (s *Seat) Book() { s.booked.Store(true) }

// Release returns the seat to the free pool.  Used by booking
// cancellation only; lock expiry never touches the booked flag.
func (s *Seat) Release() { s.booked.Store(false) }

// Label returns the human readable seat label, e.g. "A1".
func (s *Seat) Label() string {
	return s.Row + strconv.FormatUint(uint64(s.Number), 10)
}
