package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/showtix/seat-booking/internal/model"
)

// LoadMySQL reads the catalog out of the given database.  The schema
// mirrors the in-memory model: movies, theatres, screens, shows and
// seats, with seats belonging to shows.  Only SELECTs are issued; the
// database is never written to.
func LoadMySQL(ctx context.Context, db *sql.DB) (*Store, error) {
	movies, movieByID, err := loadMovies(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}
	theatres, screenByID, err := loadTheatres(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load theatres: %w", err)
	}
	shows, err := loadShows(ctx, db, movieByID, screenByID)
	if err != nil {
		return nil, fmt.Errorf("load shows: %w", err)
	}
	return NewStore(movies, theatres, shows), nil
}

func loadMovies(ctx context.Context, db *sql.DB) ([]*model.Movie, map[uint64]*model.Movie, error) {
	const q = `SELECT id, title, language, duration_minutes, genres FROM movies ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var movies []*model.Movie
	byID := make(map[uint64]*model.Movie)
	for rows.Next() {
		var m model.Movie
		var genres string
		if err := rows.Scan(&m.ID, &m.Title, &m.Language, &m.Duration, &genres); err != nil {
			return nil, nil, err
		}
		if genres != "" {
			m.Genres = strings.Split(genres, ",")
		}
		movies = append(movies, &m)
		byID[m.ID] = &m
	}
	return movies, byID, rows.Err()
}

func loadTheatres(ctx context.Context, db *sql.DB) ([]*model.Theatre, map[uint64]*model.Screen, error) {
	const qt = `SELECT id, name, city FROM theatres ORDER BY id`
	rows, err := db.QueryContext(ctx, qt)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var theatres []*model.Theatre
	theatreByID := make(map[uint64]*model.Theatre)
	for rows.Next() {
		var t model.Theatre
		if err := rows.Scan(&t.ID, &t.Name, &t.City); err != nil {
			return nil, nil, err
		}
		theatres = append(theatres, &t)
		theatreByID[t.ID] = &t
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	const qs = `SELECT id, theatre_id, name FROM screens ORDER BY id`
	srows, err := db.QueryContext(ctx, qs)
	if err != nil {
		return nil, nil, err
	}
	defer srows.Close()

	screenByID := make(map[uint64]*model.Screen)
	for srows.Next() {
		var sc model.Screen
		var theatreID uint64
		if err := srows.Scan(&sc.ID, &theatreID, &sc.Name); err != nil {
			return nil, nil, err
		}
		if t, ok := theatreByID[theatreID]; ok {
			sc.Theatre = t
			t.Screens = append(t.Screens, &sc)
		}
		screenByID[sc.ID] = &sc
	}
	return theatres, screenByID, srows.Err()
}

func loadShows(ctx context.Context, db *sql.DB, movieByID map[uint64]*model.Movie, screenByID map[uint64]*model.Screen) ([]*model.Show, error) {
	const q = `SELECT id, movie_id, screen_id, starts_at FROM shows ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type showRow struct {
		id       uint64
		movieID  uint64
		screenID uint64
		startsAt time.Time
	}
	var srs []showRow
	for rows.Next() {
		var sr showRow
		if err := rows.Scan(&sr.id, &sr.movieID, &sr.screenID, &sr.startsAt); err != nil {
			return nil, err
		}
		srs = append(srs, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var shows []*model.Show
	for _, sr := range srs {
		movie, ok := movieByID[sr.movieID]
		if !ok {
			return nil, fmt.Errorf("show %d references unknown movie %d", sr.id, sr.movieID)
		}
		screen, ok := screenByID[sr.screenID]
		if !ok {
			return nil, fmt.Errorf("show %d references unknown screen %d", sr.id, sr.screenID)
		}
		seats, err := loadSeats(ctx, db, sr.id)
		if err != nil {
			return nil, fmt.Errorf("load seats for show %d: %w", sr.id, err)
		}
		shows = append(shows, model.NewShow(sr.id, movie, screen, sr.startsAt, seats))
	}
	return shows, nil
}

func loadSeats(ctx context.Context, db *sql.DB, showID uint64) ([]*model.Seat, error) {
	const q = `SELECT id, row_label, seat_number, seat_type FROM seats WHERE show_id = ? ORDER BY id`
	rows, err := db.QueryContext(ctx, q, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []*model.Seat
	for rows.Next() {
		var s model.Seat
		var typ string
		if err := rows.Scan(&s.ID, &s.Row, &s.Number, &typ); err != nil {
			return nil, err
		}
		s.Type = model.SeatType(typ)
		seats = append(seats, &s)
	}
	return seats, rows.Err()
}
