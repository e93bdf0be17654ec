package repository

import (
	"context"
	"sync"
	"time"
)

type refreshRecord struct {
	userID    uint64
	expiresAt time.Time
}

// TokenRepo stores refresh-token hashes in memory.  Only the SHA-256
// hash of a token is ever stored; the raw value goes back to the
// client and is never kept server-side.
type TokenRepo struct {
	mu     sync.Mutex
	byHash map[string]refreshRecord
}

// NewTokenRepo returns an empty token store.
func NewTokenRepo() *TokenRepo {
	return &TokenRepo{byHash: make(map[string]refreshRecord)}
}

// StoreRefresh records a refresh token hash for the user.
func (r *TokenRepo) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byHash[tokenHash] = refreshRecord{userID: userID, expiresAt: exp}
	return nil
}

// ValidateRefresh resolves a token hash to its user id.  Expired
// entries are evicted on access and reported as invalid.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.byHash[tokenHash]
	if !ok {
		return 0, ErrTokenInvalid
	}
	if time.Now().UTC().After(rec.expiresAt) {
		delete(r.byHash, tokenHash)
		return 0, ErrTokenInvalid
	}
	return rec.userID, nil
}

// RevokeByHash invalidates a single refresh token.  Revoking an
// unknown hash is not an error.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byHash, tokenHash)
	return nil
}

// RevokeAllForUser invalidates every refresh token of the user.
func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for hash, rec := range r.byHash {
		if rec.userID == userID {
			delete(r.byHash, hash)
		}
	}
	return nil
}
