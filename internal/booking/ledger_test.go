package booking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtix/seat-booking/internal/model"
)

func ledgerFixtures() (*model.User, *model.Show) {
	movie := &model.Movie{ID: 1, Title: "Pathaan"}
	screen := &model.Screen{ID: 1, Name: "Audi 2"}
	seats := []*model.Seat{
		{ID: 1, Row: "A", Number: 1, Type: model.SeatRegular},
		{ID: 2, Row: "A", Number: 2, Type: model.SeatRegular},
	}
	show := model.NewShow(1, movie, screen, time.Now().Add(time.Hour), seats)
	return &model.User{ID: 1, Name: "Alice"}, show
}

func TestLedgerCreate(t *testing.T) {
	user, show := ledgerFixtures()
	l := NewLedger()

	b1 := l.Create(user, show, show.Seats[:1])
	b2 := l.Create(user, show, show.Seats[1:])

	assert.Equal(t, uint64(1), b1.ID)
	assert.Equal(t, uint64(2), b2.ID)
	assert.Equal(t, model.BookingBooked, b1.Status())

	got, ok := l.Get(b1.ID)
	require.True(t, ok)
	assert.Same(t, b1, got)

	_, ok = l.Get(999)
	assert.False(t, ok)
}

func TestLedgerIDsUniqueUnderConcurrency(t *testing.T) {
	user, show := ledgerFixtures()
	l := NewLedger()

	const goroutines = 50
	ids := make(chan uint64, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- l.Create(user, show, show.Seats[:1]).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	var max uint64
	for id := range ids {
		assert.False(t, seen[id], "duplicate booking id %d", id)
		seen[id] = true
		if id > max {
			max = id
		}
	}
	assert.Len(t, seen, goroutines)
	assert.Equal(t, uint64(goroutines), max, "ids are dense and monotonic")
}

func TestLedgerListByUser(t *testing.T) {
	user, show := ledgerFixtures()
	other := &model.User{ID: 2, Name: "Bob"}
	l := NewLedger()

	b1 := l.Create(user, show, show.Seats[:1])
	l.Create(other, show, show.Seats[1:])
	b3 := l.Create(user, show, show.Seats[:1])

	got := l.ListByUser(user.ID)
	require.Len(t, got, 2)
	assert.Equal(t, b1.ID, got[0].ID)
	assert.Equal(t, b3.ID, got[1].ID)

	assert.Empty(t, l.ListByUser(42))
}
