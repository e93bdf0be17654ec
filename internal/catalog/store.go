// Package catalog holds the read-only movie/theatre/show data the
// booking flow operates on.  The store is assembled once at startup,
// either from the built-in seed or from a SQL source, and is never
// structurally mutated afterwards; the booking core only ever flips
// the booked flag on individual seats.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/showtix/seat-booking/internal/model"
)

// ErrShowNotFound is returned when a show id does not exist in the
// catalog.
var ErrShowNotFound = errors.New("show not found")

// ErrSeatNotFound is returned when a requested seat id does not belong
// to the show.
var ErrSeatNotFound = errors.New("seat not found in show")

// Store indexes the loaded catalog.  Reads need no locking because the
// structure is frozen after load.
type Store struct {
	movies   []*model.Movie
	theatres []*model.Theatre
	shows    map[uint64]*model.Show
	order    []uint64 // show ids in listing order
}

// NewStore builds a store from fully-constructed shows.  Shows are
// listed in ascending id order.
func NewStore(movies []*model.Movie, theatres []*model.Theatre, shows []*model.Show) *Store {
	st := &Store{
		movies:   movies,
		theatres: theatres,
		shows:    make(map[uint64]*model.Show, len(shows)),
	}
	for _, sh := range shows {
		st.shows[sh.ID] = sh
		st.order = append(st.order, sh.ID)
	}
	sort.Slice(st.order, func(i, j int) bool { return st.order[i] < st.order[j] })
	return st
}

// Shows returns every show in listing order.
func (s *Store) Shows() []*model.Show {
	out := make([]*model.Show, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.shows[id])
	}
	return out
}

// Show returns the show with the given id.
func (s *Store) Show(id uint64) (*model.Show, error) {
	sh, ok := s.shows[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrShowNotFound, id)
	}
	return sh, nil
}

// ResolveSeats maps seat ids to the show's seat instances.  The whole
// resolution fails on the first unknown id so callers never operate on
// a partial seat set.
func (s *Store) ResolveSeats(show *model.Show, ids []uint64) ([]*model.Seat, error) {
	seats := make([]*model.Seat, 0, len(ids))
	for _, id := range ids {
		seat, ok := show.Seat(id)
		if !ok {
			return nil, fmt.Errorf("%w: seat %d, show %d", ErrSeatNotFound, id, show.ID)
		}
		seats = append(seats, seat)
	}
	return seats, nil
}
