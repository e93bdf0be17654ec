// Package notify delivers confirmed-booking events to interested
// observers.  The booking core calls Notify exactly once per successful
// confirmation and makes no assumptions about delivery success or
// ordering across observers; everything past the Observer interface is
// the observer's own concern.
package notify

import (
	"sync"

	"github.com/showtix/seat-booking/internal/model"
)

// Observer receives confirmed bookings.  Implementations must not
// block for long and must swallow their own delivery failures; the
// booking flow never waits on or fails because of an observer.
type Observer interface {
	OnBookingConfirmed(b *model.Booking)
}

// Dispatcher fans a confirmed booking out to every registered
// observer.  Registration is expected at startup but is safe at any
// time.
type Dispatcher struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewDispatcher returns a dispatcher with no observers.
func NewDispatcher() *Dispatcher { return &Dispatcher{} }

// Add registers an observer.
func (d *Dispatcher) Add(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers = append(d.observers, o)
}

// Remove unregisters a previously added observer.  Unknown observers
// are ignored.
func (d *Dispatcher) Remove(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, existing := range d.observers {
		if existing == o {
			d.observers = append(d.observers[:i], d.observers[i+1:]...)
			return
		}
	}
}

// Notify delivers the booking to every observer in registration order.
func (d *Dispatcher) Notify(b *model.Booking) {
	d.mu.RLock()
	observers := make([]Observer, len(d.observers))
	copy(observers, d.observers)
	d.mu.RUnlock()

	for _, o := range observers {
		o.OnBookingConfirmed(b)
	}
}
