package notify

import (
	"log"
	"strings"

	"github.com/showtix/seat-booking/internal/model"
)

// LogObserver writes one confirmation line per booking to the process
// log.  It stands in for the e-mail and SMS channels of a full
// deployment and is always registered so that confirmations are
// observable even without a broker.
type LogObserver struct{}

// OnBookingConfirmed logs the booking in a single human-friendly line.
func (LogObserver) OnBookingConfirmed(b *model.Booking) {
	labels := make([]string, 0, len(b.Seats))
	for _, s := range b.Seats {
		labels = append(labels, s.Label())
	}
	log.Printf("booking confirmed | booking_id=%d | user=%q | movie=%q | show_id=%d | seats=[%s]",
		b.ID, b.User.Name, b.Show.Movie.Title, b.Show.ID, strings.Join(labels, ","))
}
