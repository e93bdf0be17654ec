package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtix/seat-booking/internal/model"
)

// recorder tags every delivery with its own name so tests can check
// fan-out and ordering.
type recorder struct {
	name string
	log  *[]string
	mu   *sync.Mutex
}

func (r *recorder) OnBookingConfirmed(*model.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.log = append(*r.log, r.name)
}

func testBooking() *model.Booking {
	user := &model.User{ID: 1, Name: "Alice"}
	movie := &model.Movie{ID: 1, Title: "Jawan"}
	screen := &model.Screen{ID: 1, Name: "Audi 1"}
	seats := []*model.Seat{{ID: 1, Row: "A", Number: 1}}
	show := model.NewShow(1, movie, screen, time.Now().Add(time.Hour), seats)
	return model.NewBooking(1, user, show, seats, time.Now().UTC())
}

func TestDispatcherFanOut(t *testing.T) {
	var mu sync.Mutex
	var log []string
	d := NewDispatcher()
	d.Add(&recorder{name: "first", log: &log, mu: &mu})
	d.Add(&recorder{name: "second", log: &log, mu: &mu})

	d.Notify(testBooking())

	require.Len(t, log, 2)
	assert.Equal(t, []string{"first", "second"}, log, "observers run in registration order")
}

func TestDispatcherRemove(t *testing.T) {
	var mu sync.Mutex
	var log []string
	d := NewDispatcher()
	stays := &recorder{name: "stays", log: &log, mu: &mu}
	goes := &recorder{name: "goes", log: &log, mu: &mu}
	d.Add(stays)
	d.Add(goes)
	d.Remove(goes)

	d.Notify(testBooking())

	assert.Equal(t, []string{"stays"}, log)

	// removing an observer that was never added is harmless
	d.Remove(&recorder{name: "stranger", log: &log, mu: &mu})
	d.Notify(testBooking())
	assert.Equal(t, []string{"stays", "stays"}, log)
}

func TestDispatcherNoObservers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Notify(testBooking()) })
}
