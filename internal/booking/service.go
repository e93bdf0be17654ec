package booking

import (
	"errors"
	"fmt"

	"github.com/showtix/seat-booking/internal/lock"
	"github.com/showtix/seat-booking/internal/model"
	"github.com/showtix/seat-booking/internal/notify"
)

// ErrBookingNotFound is returned by CancelBooking for an unknown
// booking id.
var ErrBookingNotFound = errors.New("booking not found")

// Service drives the two user-facing operations of the booking flow:
// taking a temporary hold on seats and converting a valid hold into a
// permanent booking.  It coordinates the lock provider and the ledger
// and fires one confirmation event per successful confirmation.
//
// Neither operation ever waits for a busy seat; failures are reported
// immediately and leave shared state untouched.
type Service struct {
	locks      *lock.Provider
	ledger     *Ledger
	dispatcher *notify.Dispatcher
}

// NewService wires the service to its collaborators.  All three must be
// non-nil; the dispatcher may simply have no observers registered.
func NewService(locks *lock.Provider, ledger *Ledger, dispatcher *notify.Dispatcher) *Service {
	if locks == nil || ledger == nil || dispatcher == nil {
		panic("nil dependency passed to booking.NewService")
	}
	return &Service{locks: locks, ledger: ledger, dispatcher: dispatcher}
}

// Ledger exposes the booking ledger for read paths such as listing a
// user's bookings.
func (s *Service) Ledger() *Ledger { return s.ledger }

// HoldSeats takes a temporary hold on the seats for the user.  The hold
// is all-or-nothing: when any seat is booked or held by someone else,
// no seat is acquired and the provider's error is returned.  Holding
// never touches the ledger or the seats' booked flags.
func (s *Service) HoldSeats(user *model.User, show *model.Show, seats []*model.Seat) error {
	if len(seats) == 0 {
		return fmt.Errorf("hold: no seats requested")
	}
	return s.locks.LockSeats(user, show, seats)
}

// ReleaseSeats gives up the user's holds on the given seats before
// confirmation.  Seats the user does not hold are skipped, so releasing
// after a partial failure or double-releasing is harmless.
func (s *Service) ReleaseSeats(user *model.User, show *model.Show, seats []*model.Seat) {
	s.locks.UnlockSeats(user, show, seats)
}

// ConfirmBooking converts the user's holds on the seats into a
// permanent booking.  The provider verifies that the user holds every
// seat and flips the booked flags atomically; only then is a booking
// record created and the confirmation dispatched.  When verification
// fails nothing is mutated and the user's surviving locks are left to
// expire on their own rather than being released eagerly; rapid
// retries have to go through a fresh hold.
func (s *Service) ConfirmBooking(user *model.User, show *model.Show, seats []*model.Seat) (*model.Booking, error) {
	if len(seats) == 0 {
		return nil, fmt.Errorf("confirm: no seats requested")
	}
	if err := s.locks.ConfirmSeats(user, show, seats); err != nil {
		return nil, err
	}
	b := s.ledger.Create(user, show, seats)
	s.dispatcher.Notify(b)
	return b, nil
}

// CancelBooking cancels the booking with the given id and frees its
// seats.  It returns (true, nil) when the booking transitioned to
// CANCELLED, (false, nil) when it was already cancelled (an idempotent
// no-op, not an error) and ErrBookingNotFound for an unknown id.
func (s *Service) CancelBooking(id uint64) (bool, error) {
	b, ok := s.ledger.Get(id)
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrBookingNotFound, id)
	}
	if !b.Cancel() {
		return false, nil
	}
	for _, seat := range b.Seats {
		seat.Release()
	}
	return true, nil
}
