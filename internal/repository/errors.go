// Package repository provides the in-memory account stores backing the
// auth endpoints.  Persistence across restarts is deliberately out of
// scope, so both stores are mutex-guarded maps with the same contract a
// database-backed implementation would have.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// taken.  Handlers translate this into an HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a lookup by email or id matches no
// user.
var ErrUserNotFound = errors.New("user not found")

// ErrTokenInvalid is returned when a refresh token hash is unknown,
// revoked or expired.
var ErrTokenInvalid = errors.New("refresh token invalid")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
