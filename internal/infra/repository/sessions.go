package repository

import (
	"context"
	"time"

	"github.com/BruksfildServices01/quickcut/internal/models"
)

// --------------------------------------------------
// Credentials
// --------------------------------------------------

func (r *ShopRepository) GetCredentials(_ context.Context) (models.Credentials, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.credentials == nil {
		return models.Credentials{}, false, nil
	}
	return *r.credentials, true, nil
}

func (r *ShopRepository) SaveCredentials(ctx context.Context, c models.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.credentials = &c
	return r.put(ctx, KeyCredentials, c)
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

func (r *ShopRepository) CreateSession(ctx context.Context, s models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions = append(r.sessions, s)
	return r.put(ctx, KeySessions, nonNil(r.sessions))
}

func (r *ShopRepository) GetSession(_ context.Context, id string) (models.Session, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sessions {
		if s.ID == id {
			return s, true, nil
		}
	}
	return models.Session{}, false, nil
}

func (r *ShopRepository) TouchSession(ctx context.Context, id string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.sessions {
		if r.sessions[i].ID == id {
			r.sessions[i].LastActivity = at
			return true, r.put(ctx, KeySessions, r.sessions)
		}
	}
	return false, nil
}

func (r *ShopRepository) DeleteSession(ctx context.Context, id string) error {
	return r.deleteSessions(ctx, func(s models.Session) bool { return s.ID == id })
}

// DeleteOtherSessions revokes every session except keepID.
func (r *ShopRepository) DeleteOtherSessions(ctx context.Context, keepID string) error {
	return r.deleteSessions(ctx, func(s models.Session) bool { return s.ID != keepID })
}

func (r *ShopRepository) deleteSessions(ctx context.Context, drop func(models.Session) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.sessions[:0]
	for _, s := range r.sessions {
		if !drop(s) {
			kept = append(kept, s)
		}
	}
	r.sessions = kept
	return r.put(ctx, KeySessions, nonNil(r.sessions))
}
