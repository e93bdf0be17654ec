package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtix/seat-booking/internal/model"
)

func TestSeed(t *testing.T) {
	st := Seed()

	shows := st.Shows()
	require.Len(t, shows, 2)
	assert.Equal(t, uint64(1), shows[0].ID)
	assert.Equal(t, uint64(2), shows[1].ID)
	assert.Equal(t, "Jawan", shows[0].Movie.Title)
	assert.Equal(t, "Pathaan", shows[1].Movie.Title)

	for _, sh := range shows {
		assert.Len(t, sh.Seats, 16)
		assert.Len(t, sh.AvailableSeats(), 16)
	}

	// last row of the 4x4 grid is premium
	sh := shows[0]
	premium := 0
	for _, seat := range sh.Seats {
		if seat.Type == model.SeatPremium {
			premium++
			assert.Equal(t, "D", seat.Row)
		}
	}
	assert.Equal(t, 4, premium)
}

func TestStoreShow(t *testing.T) {
	st := Seed()

	sh, err := st.Show(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), sh.ID)

	_, err = st.Show(99)
	assert.ErrorIs(t, err, ErrShowNotFound)
}

func TestResolveSeats(t *testing.T) {
	st := Seed()
	sh, err := st.Show(1)
	require.NoError(t, err)

	t.Run("maps ids to the show's seat instances", func(t *testing.T) {
		seats, err := st.ResolveSeats(sh, []uint64{1, 5, 16})
		require.NoError(t, err)
		require.Len(t, seats, 3)
		assert.Equal(t, "A1", seats[0].Label())
		assert.Equal(t, "B1", seats[1].Label())
		assert.Equal(t, "D4", seats[2].Label())
	})

	t.Run("fails whole resolution on one unknown id", func(t *testing.T) {
		_, err := st.ResolveSeats(sh, []uint64{1, 2, 999})
		assert.ErrorIs(t, err, ErrSeatNotFound)
	})
}
