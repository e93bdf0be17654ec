// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/showtix/seat-booking/internal/handler"
	"github.com/showtix/seat-booking/internal/middleware"
)

// RegisterRoutes registers routes that require no authentication or
// state; currently just the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the auth endpoints.  Register, login, refresh
// and logout live under /v1/auth and need no session; /v1/me requires
// a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated browse endpoints.  The
// cache middleware is attached only to routes serving immutable
// catalog data; the live seat availability endpoint stays uncached.
func RegisterPublic(e *echo.Echo, p *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/shows", p.ListShows, cache)
	e.GET("/v1/shows/:id", p.GetShow, cache)
	e.GET("/v1/shows/:id/seats", p.GetShowSeats)
}

// RegisterCustomer registers the hold/confirm/cancel flow.  Every
// route requires a valid access token with the CUSTOMER role.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("CUSTOMER"))

	g.POST("/shows/:id/hold", b.HoldSeats)
	g.DELETE("/shows/:id/hold", b.ReleaseSeats)
	g.POST("/shows/:id/confirm", b.ConfirmBooking)
	g.GET("/my-bookings", b.ListBookings)
	g.GET("/bookings/:id", b.GetBooking)
	g.DELETE("/bookings/:id", b.CancelBooking)
}
