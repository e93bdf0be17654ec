// Package queue defines message payloads exchanged over the message
// broker and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// confirmed.  It carries enough information for downstream consumers to
// log, notify or feed analytics without reaching back into the process
// that produced it.
type BookingConfirmedEvent struct {
	BookingID   uint64   `json:"booking_id"`
	UserID      uint64   `json:"user_id"`
	UserName    string   `json:"user_name"`
	UserEmail   string   `json:"user_email"`
	ShowID      uint64   `json:"show_id"`
	MovieTitle  string   `json:"movie_title"`
	TheatreName string   `json:"theatre_name"`
	ScreenName  string   `json:"screen_name"`
	StartsAt    string   `json:"starts_at"`
	SeatLabels  []string `json:"seats"`
	ConfirmedAt string   `json:"confirmed_at"`
}

// Name of the durable queue confirmations are published to and
// consumed from.
const BookingQueueName = "booking.confirmed"
