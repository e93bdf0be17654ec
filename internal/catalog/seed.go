package catalog

import (
	"time"

	"github.com/showtix/seat-booking/internal/model"
)

// Seed returns a small built-in catalog used when no database is
// configured: one theatre with two screens, two movies and two shows
// with a 4x4 seat grid each.  Handy for local runs and demos.
func Seed() *Store {
	jawan := &model.Movie{ID: 1, Title: "Jawan", Language: "Hindi", Duration: 120, Genres: []string{"action", "thriller"}}
	pathaan := &model.Movie{ID: 2, Title: "Pathaan", Language: "Hindi", Duration: 140, Genres: []string{"action", "spy"}}

	theatre := &model.Theatre{ID: 1, Name: "Amba Talkies", City: "Shrirampur"}
	audi1 := &model.Screen{ID: 1, Name: "Audi 1", Theatre: theatre}
	audi2 := &model.Screen{ID: 2, Name: "Audi 2", Theatre: theatre}
	theatre.Screens = []*model.Screen{audi1, audi2}

	now := time.Now().UTC()
	shows := []*model.Show{
		model.NewShow(1, jawan, audi1, now.Add(1*time.Hour), seatGrid(4, 4)),
		model.NewShow(2, pathaan, audi2, now.Add(3*time.Hour), seatGrid(4, 4)),
	}

	return NewStore(
		[]*model.Movie{jawan, pathaan},
		[]*model.Theatre{theatre},
		shows,
	)
}

// seatGrid builds rows x cols seats with ids starting at 1.  The last
// row is PREMIUM, the rest REGULAR.
func seatGrid(rows, cols int) []*model.Seat {
	seats := make([]*model.Seat, 0, rows*cols)
	id := uint64(1)
	for r := 0; r < rows; r++ {
		typ := model.SeatRegular
		if r == rows-1 {
			typ = model.SeatPremium
		}
		row := string(rune('A' + r))
		for c := 1; c <= cols; c++ {
			seats = append(seats, &model.Seat{ID: id, Row: row, Number: uint32(c), Type: typ})
			id++
		}
	}
	return seats
}
