// Package booking orchestrates the two-phase hold-then-confirm workflow
// and keeps the in-process record of confirmed bookings.
package booking

import (
	"sort"
	"sync"
	"time"

	"github.com/showtix/seat-booking/internal/model"
)

// Ledger is the in-process map from booking id to booking record.  It
// owns booking-id allocation: ids are monotonically increasing and
// unique even when many confirmations race, because allocation and
// insert happen under one mutex.
type Ledger struct {
	mu       sync.Mutex
	nextID   uint64
	bookings map[uint64]*model.Booking
}

// NewLedger returns an empty ledger.  The first allocated booking id
// is 1.
func NewLedger() *Ledger {
	return &Ledger{bookings: make(map[uint64]*model.Booking)}
}

// Create allocates the next booking id, builds a BOOKED record for the
// user, show and seats, stores it and returns it.
func (l *Ledger) Create(user *model.User, show *model.Show, seats []*model.Seat) *model.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nextID++
	b := model.NewBooking(l.nextID, user, show, seats, time.Now().UTC())
	l.bookings[b.ID] = b
	return b
}

// Get returns the booking with the given id.
func (l *Ledger) Get(id uint64) (*model.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.bookings[id]
	return b, ok
}

// ListByUser returns every booking made by the given user, oldest
// first.  Cancelled bookings are included; the caller can filter on
// status.
func (l *Ledger) ListByUser(userID uint64) []*model.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*model.Booking, 0)
	for _, b := range l.bookings {
		if b.User.ID == userID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
