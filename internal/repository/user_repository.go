package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/showtix/seat-booking/internal/model"
	"github.com/showtix/seat-booking/internal/utils"
)

// User is an account row: credentials plus the display fields the
// booking core needs.
type User struct {
	ID           uint64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Actor converts the account into the model.User identity handed to
// the booking core.
func (u User) Actor() *model.User {
	return &model.User{ID: u.ID, Name: u.Name, Email: u.Email}
}

// UserRepo stores accounts in memory.  IDs are allocated monotonically
// under the same mutex that guards the maps, so concurrent
// registrations always get distinct ids.
type UserRepo struct {
	mu      sync.Mutex
	nextID  uint64
	byID    map[uint64]User
	byEmail map[string]uint64
}

// NewUserRepo returns an empty user store.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[uint64]User),
		byEmail: make(map[string]uint64),
	}
}

// Create registers a new user with a bcrypt-hashed password and returns
// the allocated id.  Email uniqueness is enforced case-insensitively.
func (r *UserRepo) Create(ctx context.Context, email, name, password, role string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return 0, ErrEmailExists
	}
	r.nextID++
	u := User{
		ID:           r.nextID,
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u.ID, nil
}

// GetByEmail looks a user up by (case-insensitive) email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return r.byID[id], nil
}

// GetByID looks a user up by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
