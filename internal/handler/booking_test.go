package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showtix/seat-booking/internal/booking"
	"github.com/showtix/seat-booking/internal/catalog"
	"github.com/showtix/seat-booking/internal/lock"
	"github.com/showtix/seat-booking/internal/notify"
	"github.com/showtix/seat-booking/internal/repository"
)

type bookingFixture struct {
	h     *BookingHandler
	e     *echo.Echo
	alice uint64
	bob   uint64
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	users := repository.NewUserRepo()
	alice, err := users.Create(context.Background(), "alice@example.com", "Alice", "pw", "CUSTOMER", 4)
	require.NoError(t, err)
	bob, err := users.Create(context.Background(), "bob@example.com", "Bob", "pw", "CUSTOMER", 4)
	require.NoError(t, err)

	locks := lock.NewProvider(10 * time.Second)
	svc := booking.NewService(locks, booking.NewLedger(), notify.NewDispatcher())

	return &bookingFixture{
		h:     NewBookingHandler(catalog.Seed(), users, svc, locks),
		e:     echo.New(),
		alice: alice,
		bob:   bob,
	}
}

// call runs a handler against a synthetic request and returns the
// recorded response.
func (f *bookingFixture) call(t *testing.T, fn echo.HandlerFunc, method, body string, uid uint64, pathParam string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.Set("user_id", uid)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}
	require.NoError(t, fn(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHoldSeatsEndpoint(t *testing.T) {
	t.Run("successful hold returns token and expiry", func(t *testing.T) {
		f := newBookingFixture(t)

		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1,2]}`, f.alice, "1")
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.NotEmpty(t, body["hold_token"])
		assert.NotEmpty(t, body["expires_at"])
		assert.Len(t, body["seat_ids"], 2)
	})

	t.Run("conflicting hold is a 409", func(t *testing.T) {
		f := newBookingFixture(t)

		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1]}`, f.alice, "1")
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1,2]}`, f.bob, "1")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "seat already locked", decodeBody(t, rec)["error"])

		// the all-or-nothing failure acquired nothing, seat 2 is free
		rec = f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[2]}`, f.bob, "1")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing seat_ids is a 400", func(t *testing.T) {
		f := newBookingFixture(t)
		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[]}`, f.alice, "1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown show is a 404", func(t *testing.T) {
		f := newBookingFixture(t)
		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1]}`, f.alice, "99")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown seat id is a 400", func(t *testing.T) {
		f := newBookingFixture(t)
		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[999]}`, f.alice, "1")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmBookingEndpoint(t *testing.T) {
	t.Run("confirm after hold creates a booking", func(t *testing.T) {
		f := newBookingFixture(t)

		rec := f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1,2]}`, f.alice, "1")
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = f.call(t, f.h.ConfirmBooking, http.MethodPost, `{"seat_ids":[1,2]}`, f.alice, "1")
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, float64(1), body["booking_id"])
		assert.Equal(t, "BOOKED", body["status"])
		assert.Equal(t, []any{"A1", "A2"}, body["seats"])
	})

	t.Run("confirm without a hold is a 409", func(t *testing.T) {
		f := newBookingFixture(t)
		rec := f.call(t, f.h.ConfirmBooking, http.MethodPost, `{"seat_ids":[1]}`, f.alice, "1")
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "seat not held", decodeBody(t, rec)["error"])
	})

	t.Run("confirming someone elses hold is a 409", func(t *testing.T) {
		f := newBookingFixture(t)
		f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1]}`, f.alice, "1")

		rec := f.call(t, f.h.ConfirmBooking, http.MethodPost, `{"seat_ids":[1]}`, f.bob, "1")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	f := newBookingFixture(t)

	f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1,2]}`, f.alice, "1")
	rec := f.call(t, f.h.ConfirmBooking, http.MethodPost, `{"seat_ids":[1,2]}`, f.alice, "1")
	require.Equal(t, http.StatusCreated, rec.Code)
	bookingID := uint64(decodeBody(t, rec)["booking_id"].(float64))
	param := strconv.FormatUint(bookingID, 10)

	t.Run("owner can fetch and list", func(t *testing.T) {
		rec := f.call(t, f.h.GetBooking, http.MethodGet, "", f.alice, param)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = f.call(t, f.h.ListBookings, http.MethodGet, "", f.alice, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody(t, rec)["items"], 1)
	})

	t.Run("other users are shut out", func(t *testing.T) {
		rec := f.call(t, f.h.GetBooking, http.MethodGet, "", f.bob, param)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = f.call(t, f.h.CancelBooking, http.MethodDelete, "", f.bob, param)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = f.call(t, f.h.ListBookings, http.MethodGet, "", f.bob, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody(t, rec)["items"])
	})

	t.Run("cancel then repeat cancel", func(t *testing.T) {
		rec := f.call(t, f.h.CancelBooking, http.MethodDelete, "", f.alice, param)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["cancelled"])
		assert.Equal(t, "CANCELLED", body["status"])

		rec = f.call(t, f.h.CancelBooking, http.MethodDelete, "", f.alice, param)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["cancelled"])
	})

	t.Run("unknown booking is a 404", func(t *testing.T) {
		rec := f.call(t, f.h.CancelBooking, http.MethodDelete, "", f.alice, "999")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReleaseSeatsEndpoint(t *testing.T) {
	f := newBookingFixture(t)

	f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1]}`, f.alice, "1")

	// releasing with an empty body gives up every hold on the show
	rec := f.call(t, f.h.ReleaseSeats, http.MethodDelete, `{}`, f.alice, "1")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.call(t, f.h.HoldSeats, http.MethodPost, `{"seat_ids":[1]}`, f.bob, "1")
	assert.Equal(t, http.StatusCreated, rec.Code)
}
