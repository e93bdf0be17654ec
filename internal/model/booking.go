package model

import (
	"sync"
	"time"
)

// BookingStatus is the lifecycle state of a booking.  A booking is
// created in BOOKED state and can only move to CANCELLED; it is never
// re-opened.
type BookingStatus string

const (
	BookingBooked    BookingStatus = "BOOKED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking records a confirmed purchase of one or more seats of a show
// by a user.  Everything except the status is immutable once the
// ledger has created the record.
//
// Fields:
//  ID        – booking identifier, allocated monotonically by the ledger.
//  User      – the actor the booking belongs to.
//  Show      – the show the seats were booked for.
//  Seats     – exactly the seats that were locked and confirmed together.
//  CreatedAt – confirmation timestamp.
type Booking struct {
	ID        uint64    // bookings.id
	User      *User     // bookings.user_id
	Show      *Show     // bookings.show_id
	Seats     []*Seat   // bookings -> booking_seats
	CreatedAt time.Time // bookings.created_at

	mu     sync.Mutex
	status BookingStatus
}

// NewBooking constructs a booking in BOOKED state.  Only the ledger
// should call this; it does not register the booking anywhere.
func NewBooking(id uint64, user *User, show *Show, seats []*Seat, createdAt time.Time) *Booking {
	return &Booking{
		ID:        id,
		User:      user,
		Show:      show,
		Seats:     seats,
		CreatedAt: createdAt,
		status:    BookingBooked,
	}
}

// Status returns the current lifecycle state.
func (b *Booking) Status() BookingStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// Cancel transitions the booking from BOOKED to CANCELLED.  It returns
// false without changing anything when the booking is already
// cancelled, which is what makes cancellation idempotent: the caller
// only frees the seats when Cancel reports a real transition.
func (b *Booking) Cancel() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == BookingCancelled {
		return false
	}
	b.status = BookingCancelled
	return true
}
