package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/showtix/seat-booking/internal/booking"
	"github.com/showtix/seat-booking/internal/catalog"
	"github.com/showtix/seat-booking/internal/lock"
	"github.com/showtix/seat-booking/internal/model"
	"github.com/showtix/seat-booking/internal/repository"
)

// BookingHandler serves the customer-facing hold/confirm/cancel
// endpoints.  All methods assume JWT authentication and role
// validation already ran in middleware.
type BookingHandler struct {
	Catalog  *catalog.Store
	Users    *repository.UserRepo
	Bookings *booking.Service
	Locks    *lock.Provider
}

func NewBookingHandler(store *catalog.Store, users *repository.UserRepo, svc *booking.Service, locks *lock.Provider) *BookingHandler {
	if store == nil || users == nil || svc == nil || locks == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: store, Users: users, Bookings: svc, Locks: locks}
}

type seatIDsReq struct {
	SeatIDs []uint64 `json:"seat_ids"`
}

// resolveRequest pulls the authenticated actor, the show and the
// requested seats out of an incoming hold/confirm call.  It writes the
// error response itself and returns ok=false when anything is off.
func (h *BookingHandler) resolveRequest(c echo.Context, needSeats bool) (actor *model.User, show *model.Show, seats []*model.Seat, ok bool) {
	uid, err := getUserID(c)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return nil, nil, nil, false
	}
	u, err := h.Users.GetByID(c.Request().Context(), uid)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		return nil, nil, nil, false
	}

	showID, okID := parseID(c, "id")
	if !okID {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
		return nil, nil, nil, false
	}
	show, err = h.Catalog.Show(showID)
	if err != nil {
		_ = c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		return nil, nil, nil, false
	}

	var body seatIDsReq
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		return nil, nil, nil, false
	}
	ids := dedupeIDs(body.SeatIDs)
	if len(ids) == 0 {
		if needSeats {
			_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_ids is required"})
			return nil, nil, nil, false
		}
		// releasing with no explicit seats means all seats of the show
		return u.Actor(), show, show.Seats, true
	}
	seats, err = h.Catalog.ResolveSeats(show, ids)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown seat id", "detail": err.Error()})
		return nil, nil, nil, false
	}
	return u.Actor(), show, seats, true
}

// HoldSeats handles POST /v1/shows/:id/hold.  It attempts to take a
// temporary hold on every requested seat as one all-or-nothing action
// and returns the hold expiry on success.  A seat already booked or
// held by another user fails the whole request with 409 and acquires
// nothing.
func (h *BookingHandler) HoldSeats(c echo.Context) error {
	actor, show, seats, ok := h.resolveRequest(c, true)
	if !ok {
		return nil
	}
	if err := h.Bookings.HoldSeats(actor, show, seats); err != nil {
		status := http.StatusConflict
		reason := "seats unavailable"
		switch {
		case errors.Is(err, lock.ErrSeatAlreadyLocked):
			reason = "seat already locked"
		case errors.Is(err, lock.ErrSeatAlreadyBooked):
			reason = "seat already booked"
		default:
			status = http.StatusBadRequest
		}
		return c.JSON(status, echo.Map{"error": reason, "detail": err.Error()})
	}

	ids := make([]uint64, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"hold_token": uuid.NewString(),
		"expires_at": time.Now().UTC().Add(h.Locks.TTL()).Format(time.RFC3339),
		"seat_ids":   ids,
	})
}

// ReleaseSeats handles DELETE /v1/shows/:id/hold.  It gives up the
// caller's holds on the listed seats, or on every seat of the show
// when the body names none.  Seats the caller does not hold are
// skipped, so the call never fails on state it does not own.
func (h *BookingHandler) ReleaseSeats(c echo.Context) error {
	actor, show, seats, ok := h.resolveRequest(c, false)
	if !ok {
		return nil
	}
	h.Bookings.ReleaseSeats(actor, show, seats)
	return c.JSON(http.StatusOK, echo.Map{"released": true})
}

// ConfirmBooking handles POST /v1/shows/:id/confirm.  The confirmation
// succeeds only when the caller still holds every requested seat; it
// then books the seats, creates the booking record and fires the
// confirmation event.  On failure nothing changes and any surviving
// holds simply run out on their own.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	actor, show, seats, ok := h.resolveRequest(c, true)
	if !ok {
		return nil
	}
	b, err := h.Bookings.ConfirmBooking(actor, show, seats)
	if err != nil {
		if errors.Is(err, lock.ErrSeatNotHeld) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat not held", "detail": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "confirm failed", "detail": err.Error()})
	}
	return c.JSON(http.StatusCreated, bookingDetail(b))
}

// ListBookings handles GET /v1/my-bookings.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items := make([]echo.Map, 0)
	for _, b := range h.Bookings.Ledger().ListByUser(uid) {
		items = append(items, bookingDetail(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBooking handles GET /v1/bookings/:id.  Bookings are private to
// their owner.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, ok := h.Bookings.Ledger().Get(id)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if b.User.ID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": bookingDetail(b)})
}

// CancelBooking handles DELETE /v1/bookings/:id.  Cancellation frees
// the booked seats for future holds.  Cancelling an already-cancelled
// booking is an idempotent no-op reported with cancelled=false, not an
// error.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	b, found := h.Bookings.Ledger().Get(id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	if b.User.ID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	cancelled, err := h.Bookings.CancelBooking(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"booking_id": id,
		"cancelled":  cancelled,
		"status":     string(b.Status()),
	})
}

// bookingDetail renders the standard booking JSON body.
func bookingDetail(b *model.Booking) echo.Map {
	labels := make([]string, 0, len(b.Seats))
	ids := make([]uint64, 0, len(b.Seats))
	for _, s := range b.Seats {
		labels = append(labels, s.Label())
		ids = append(ids, s.ID)
	}
	return echo.Map{
		"booking_id": b.ID,
		"show_id":    b.Show.ID,
		"movie":      b.Show.Movie.Title,
		"seat_ids":   ids,
		"seats":      labels,
		"status":     string(b.Status()),
		"created_at": b.CreatedAt.Format(time.RFC3339),
	}
}
