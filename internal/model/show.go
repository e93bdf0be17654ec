package model

import "time"

// Show represents a scheduled screening of a movie on a particular
// screen.  A show owns its seats: the same physical seat is a distinct
// Seat instance per show, which is what makes seat identity per-show
// and keeps locks for different shows from colliding.
//
// Fields:
//  ID       – primary key identifier.
//  Movie    – the movie being screened.
//  Screen   – the screen the show runs on.
//  StartsAt – when the show begins.
//  Seats    – every seat of the show, booked or not.
type Show struct {
	ID       uint64    // shows.id
	Movie    *Movie    // shows.movie_id
	Screen   *Screen   // shows.screen_id
	StartsAt time.Time // shows.starts_at
	Seats    []*Seat

	seatByID map[uint64]*Seat
}

// NewShow builds a show and indexes its seats by id.  Seat ids must be
// unique within the show.
func NewShow(id uint64, movie *Movie, screen *Screen, startsAt time.Time, seats []*Seat) *Show {
	idx := make(map[uint64]*Seat, len(seats))
	for _, s := range seats {
		idx[s.ID] = s
	}
	return &Show{
		ID:       id,
		Movie:    movie,
		Screen:   screen,
		StartsAt: startsAt,
		Seats:    seats,
		seatByID: idx,
	}
}

// Seat returns the seat with the given id, or false when the show has
// no such seat.
func (s *Show) Seat(id uint64) (*Seat, bool) {
	seat, ok := s.seatByID[id]
	return seat, ok
}

// AvailableSeats returns the seats that are not permanently booked.
// Seats under a temporary hold are still reported here; hold state is
// owned by the lock provider, not the catalog.
func (s *Show) AvailableSeats() []*Seat {
	out := make([]*Seat, 0, len(s.Seats))
	for _, seat := range s.Seats {
		if !seat.IsBooked() {
			out = append(out, seat)
		}
	}
	return out
}
