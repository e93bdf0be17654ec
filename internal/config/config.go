// Package config loads application configuration from environment
// variables, optionally seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable; required variables are
// enforced by must() and missing values abort startup.
type Config struct {
	Env            string        // application environment (dev/test/prod)
	Port           string        // HTTP port to listen on
	JWTSecret      string        // secret used to sign JWTs
	AccessTTLMin   int           // access token time-to-live in minutes
	RefreshTTLDays int           // refresh token time-to-live in days
	BcryptCost     int           // bcrypt cost for password hashing
	SeatLockTTL    time.Duration // how long a seat hold stays valid

	// Optional read-only catalog database.  When CatalogDBHost is
	// empty the built-in seed catalog is used instead.
	CatalogDBUser string
	CatalogDBPass string
	CatalogDBHost string
	CatalogDBPort string
	CatalogDBName string

	// Message broker for booking.confirmed events.  When disabled the
	// AMQP observer and the consumer are not started.
	AMQPEnabled bool
}

// Load reads configuration from the environment.  A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   envInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: envInt("REFRESH_TOKEN_TTL_DAYS", 7),
		BcryptCost:     envInt("BCRYPT_COST", 10),
		SeatLockTTL:    time.Duration(envInt("SEAT_LOCK_TTL_SECONDS", 300)) * time.Second,

		CatalogDBUser: os.Getenv("CATALOG_DB_USER"),
		CatalogDBPass: os.Getenv("CATALOG_DB_PASS"),
		CatalogDBHost: os.Getenv("CATALOG_DB_HOST"),
		CatalogDBPort: envStr("CATALOG_DB_PORT", "3306"),
		CatalogDBName: os.Getenv("CATALOG_DB_NAME"),

		AMQPEnabled: envBool("AMQP_ENABLED", false),
	}
}

// must retrieves a required environment variable; startup aborts when
// it is unset or empty.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envBool(k string, d bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
