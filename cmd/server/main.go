package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/showtix/seat-booking/internal/booking"
	"github.com/showtix/seat-booking/internal/catalog"
	"github.com/showtix/seat-booking/internal/config"
	"github.com/showtix/seat-booking/internal/database"
	"github.com/showtix/seat-booking/internal/handler"
	"github.com/showtix/seat-booking/internal/lock"
	"github.com/showtix/seat-booking/internal/middleware"
	"github.com/showtix/seat-booking/internal/notify"
	"github.com/showtix/seat-booking/internal/queue"
	"github.com/showtix/seat-booking/internal/repository"
	"github.com/showtix/seat-booking/internal/router"
	publisher "github.com/showtix/seat-booking/internal/service"
)

func main() {
	cfg := config.Load()

	store := loadCatalog(cfg)

	// One lock provider and one ledger per process; everything that
	// needs them gets an explicit reference.
	locks := lock.NewProvider(cfg.SeatLockTTL)
	ledger := booking.NewLedger()

	dispatcher := notify.NewDispatcher()
	dispatcher.Add(notify.LogObserver{})
	if cfg.AMQPEnabled {
		dispatcher.Add(notify.AMQPObserver{})
		go func() {
			if err := queue.StartBookingConsumer(publisher.BrokerURL()); err != nil {
				log.Printf("booking consumer stopped: %v", err)
			}
		}()
	}

	bookings := booking.NewService(locks, ledger, dispatcher)

	users := repository.NewUserRepo()
	tokens := repository.NewTokenRepo()

	e := echo.New()
	e.HideBanner = true

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewCatalogHandler(store, locks), cache)
	router.RegisterCustomer(e, handler.NewBookingHandler(store, users, bookings, locks), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, lock ttl=%s)", addr, cfg.Env, cfg.SeatLockTTL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// loadCatalog builds the show catalog from MySQL when configured and
// falls back to the built-in seed otherwise.
func loadCatalog(cfg config.Config) *catalog.Store {
	if cfg.CatalogDBHost == "" {
		log.Printf("no catalog database configured; using seed catalog")
		return catalog.Seed()
	}
	db, err := database.Open(cfg.CatalogDBUser, cfg.CatalogDBPass, cfg.CatalogDBHost, cfg.CatalogDBPort, cfg.CatalogDBName)
	if err != nil {
		log.Fatalf("open catalog database: %v", err)
	}
	defer db.Close()

	store, err := catalog.LoadMySQL(context.Background(), db)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("catalog loaded from mysql (%d shows)", len(store.Shows()))
	return store
}
