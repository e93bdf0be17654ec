package lock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/showtix/seat-booking/internal/model"
)

// ErrSeatAlreadyLocked is returned by LockSeats when any requested seat
// is held by a different user under a non-expired lock.  The caller can
// retry later or pick different seats.
var ErrSeatAlreadyLocked = errors.New("seat already locked")

// ErrSeatAlreadyBooked is returned by LockSeats when any requested seat
// has been permanently booked.  Unlike a lock, a booking never expires;
// the seat only becomes holdable again through cancellation.
var ErrSeatAlreadyBooked = errors.New("seat already booked")

// ErrSeatNotHeld is returned by ConfirmSeats when the confirming user
// does not hold a current, non-expired lock on every requested seat.
var ErrSeatNotHeld = errors.New("seat not held by user")

// seatKey scopes lock entries per show so that equal seat ids of
// different shows never collide in the table.
type seatKey struct {
	showID uint64
	seatID uint64
}

// Provider owns the mapping from seat identity to active lock and
// enforces mutual exclusion on it.  Every multi-seat operation runs
// under one coarse mutex spanning both its check and its commit phase,
// so two callers racing on overlapping seat sets can never both observe
// the seats as free.
//
// Lock acquisition never blocks waiting for a busy seat: LockSeats
// reports failure immediately and leaves retry policy to the caller.
type Provider struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	locks map[seatKey]*SeatLock
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock overrides the time source.  Tests use this to drive lock
// expiry without sleeping.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProvider builds a provider whose locks live for ttl.  The lock
// duration is the only externally tunable knob of the locking core.
func NewProvider(ttl time.Duration, opts ...Option) *Provider {
	p := &Provider{
		ttl:   ttl,
		now:   time.Now,
		locks: make(map[seatKey]*SeatLock),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TTL returns the configured lock duration.
func (p *Provider) TTL() time.Duration { return p.ttl }

// LockSeats acquires a hold on every requested seat for the user as a
// single all-or-nothing action.  The first pass verifies that every
// seat is free (an expired lock counts as free and is purged; a lock
// already held by the same user counts as free and is refreshed); only
// when all seats pass does the second pass install fresh locks.  On
// failure nothing is acquired.
func (p *Provider) LockSeats(user *model.User, show *model.Show, seats []*model.Seat) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for _, seat := range seats {
		if seat.IsBooked() {
			return fmt.Errorf("%w: seat %s of show %d", ErrSeatAlreadyBooked, seat.Label(), show.ID)
		}
		key := seatKey{showID: show.ID, seatID: seat.ID}
		held, ok := p.locks[key]
		if !ok {
			continue
		}
		if held.IsExpired(now) {
			delete(p.locks, key)
			continue
		}
		if held.LockedBy.ID != user.ID {
			return fmt.Errorf("%w: seat %s of show %d", ErrSeatAlreadyLocked, seat.Label(), show.ID)
		}
	}

	for _, seat := range seats {
		p.locks[seatKey{showID: show.ID, seatID: seat.ID}] = &SeatLock{
			Seat:     seat,
			Show:     show,
			LockedBy: user,
			LockedAt: now,
			TTL:      p.ttl,
		}
	}
	return nil
}

// IsSeatLocked reports whether a non-expired lock exists for the seat,
// regardless of who holds it.  An expired entry found along the way is
// evicted.
func (p *Provider) IsSeatLocked(show *model.Show, seat *model.Seat) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeLock(show, seat) != nil
}

// IsSeatLockedBy reports whether the seat has a non-expired lock whose
// holder is the given user.  Expired entries are evicted as a side
// effect of the check.
func (p *Provider) IsSeatLockedBy(show *model.Show, seat *model.Seat, user *model.User) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	held := p.activeLock(show, seat)
	return held != nil && held.LockedBy.ID == user.ID
}

// UnlockSeats removes the user's locks on the given seats.  Seats not
// locked by the user are skipped silently, so releasing is always safe
// to call regardless of what the user actually holds.
func (p *Provider) UnlockSeats(user *model.User, show *model.Show, seats []*model.Seat) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, seat := range seats {
		key := seatKey{showID: show.ID, seatID: seat.ID}
		if held, ok := p.locks[key]; ok && held.LockedBy.ID == user.ID {
			delete(p.locks, key)
		}
	}
}

// ConfirmSeats atomically converts the user's holds on the given seats
// into permanent bookings.  It verifies that the user holds a current
// lock on every seat, then marks every seat booked and removes the
// locks, all inside the table's critical section.  Running the
// verify-then-book sequence under the same mutex that LockSeats uses is
// what closes the window where a hold could expire between the check
// and the booked-flag write and let a racing caller double-book.
//
// On failure nothing changes: seats stay unbooked and any locks the
// user does hold are left in place to expire naturally.
func (p *Provider) ConfirmSeats(user *model.User, show *model.Show, seats []*model.Seat) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, seat := range seats {
		held := p.activeLock(show, seat)
		if held == nil || held.LockedBy.ID != user.ID {
			return fmt.Errorf("%w: seat %s of show %d", ErrSeatNotHeld, seat.Label(), show.ID)
		}
	}

	for _, seat := range seats {
		seat.Book()
		delete(p.locks, seatKey{showID: show.ID, seatID: seat.ID})
	}
	return nil
}

// activeLock returns the non-expired lock for the seat, evicting an
// expired entry it finds.  Callers must hold p.mu.
func (p *Provider) activeLock(show *model.Show, seat *model.Seat) *SeatLock {
	key := seatKey{showID: show.ID, seatID: seat.ID}
	held, ok := p.locks[key]
	if !ok {
		return nil
	}
	if held.IsExpired(p.now()) {
		delete(p.locks, key)
		return nil
	}
	return held
}
