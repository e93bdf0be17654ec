package notify

import (
	"context"
	"time"

	"github.com/showtix/seat-booking/internal/model"
	"github.com/showtix/seat-booking/internal/queue"
	publisher "github.com/showtix/seat-booking/internal/service"
)

// AMQPObserver forwards confirmed bookings to the booking.confirmed
// queue on RabbitMQ.  Publish failures are logged by the publisher and
// otherwise dropped: the booking has already been committed and the
// broker being down must never fail or delay a confirmation.
type AMQPObserver struct {
	// Timeout bounds each publish attempt.  Zero means 5 seconds.
	Timeout time.Duration
}

// OnBookingConfirmed builds the wire event and publishes it.
func (o AMQPObserver) OnBookingConfirmed(b *model.Booking) {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	labels := make([]string, 0, len(b.Seats))
	for _, s := range b.Seats {
		labels = append(labels, s.Label())
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      b.User.ID,
		UserName:    b.User.Name,
		UserEmail:   b.User.Email,
		ShowID:      b.Show.ID,
		MovieTitle:  b.Show.Movie.Title,
		ScreenName:  b.Show.Screen.Name,
		StartsAt:    b.Show.StartsAt.UTC().Format(time.RFC3339),
		SeatLabels:  labels,
		ConfirmedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.Show.Screen.Theatre != nil {
		ev.TheatreName = b.Show.Screen.Theatre.Name
	}
	_ = publisher.PublishBookingConfirmed(ctx, ev)
}
