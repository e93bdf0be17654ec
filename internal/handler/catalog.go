package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/showtix/seat-booking/internal/catalog"
	"github.com/showtix/seat-booking/internal/lock"
	"github.com/showtix/seat-booking/internal/model"
)

// CatalogHandler serves the public browse endpoints.  Show and movie
// data is immutable, so those responses may be cached; the seat
// availability endpoint reflects live lock and booking state and must
// never be.
type CatalogHandler struct {
	Catalog *catalog.Store
	Locks   *lock.Provider
}

func NewCatalogHandler(store *catalog.Store, locks *lock.Provider) *CatalogHandler {
	if store == nil || locks == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: store, Locks: locks}
}

type showPart struct {
	ID       uint64 `json:"id"`
	Movie    string `json:"movie"`
	Language string `json:"language"`
	Theatre  string `json:"theatre"`
	Screen   string `json:"screen"`
	StartsAt string `json:"starts_at"`
	Seats    int    `json:"seats"`
}

func toShowPart(s *model.Show) showPart {
	p := showPart{
		ID:       s.ID,
		Movie:    s.Movie.Title,
		Language: s.Movie.Language,
		Screen:   s.Screen.Name,
		StartsAt: s.StartsAt.UTC().Format(time.RFC3339),
		Seats:    len(s.Seats),
	}
	if s.Screen.Theatre != nil {
		p.Theatre = s.Screen.Theatre.Name
	}
	return p
}

// ListShows handles GET /v1/shows.
func (h *CatalogHandler) ListShows(c echo.Context) error {
	shows := h.Catalog.Shows()
	items := make([]showPart, 0, len(shows))
	for _, s := range shows {
		items = append(items, toShowPart(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetShow handles GET /v1/shows/:id.
func (h *CatalogHandler) GetShow(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	show, err := h.Catalog.Show(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": toShowPart(show)})
}

// GetShowSeats handles GET /v1/shows/:id/seats.  Each seat is reported
// as FREE, HELD or BOOKED.  HELD is derived from the lock provider and
// honours lock expiry, so an expired hold shows up FREE without any
// background cleanup.
func (h *CatalogHandler) GetShowSeats(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	show, err := h.Catalog.Show(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}

	type seatPart struct {
		ID     uint64 `json:"id"`
		Label  string `json:"label"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	items := make([]seatPart, 0, len(show.Seats))
	for _, seat := range show.Seats {
		status := "FREE"
		switch {
		case seat.IsBooked():
			status = "BOOKED"
		case h.Locks.IsSeatLocked(show, seat):
			status = "HELD"
		}
		items = append(items, seatPart{
			ID:     seat.ID,
			Label:  seat.Label(),
			Type:   string(seat.Type),
			Status: status,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"show_id": show.ID, "items": items})
}
