// Package auth owns the admin credentials and the server-side sessions
// behind the bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickcut/internal/httperr"
	"github.com/BruksfildServices01/quickcut/internal/models"
	"github.com/BruksfildServices01/quickcut/internal/validators"
)

const (
	DefaultSessionTimeout = 30 * time.Minute
	tokenTTL              = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrSessionExpired     = errors.New("session expired")

	ErrWrongPassword     = httperr.ErrBusiness("wrong_password")
	ErrPasswordTooShort  = httperr.ErrBusiness("password_too_short")
	ErrPasswordMismatch  = httperr.ErrBusiness("password_mismatch")
	ErrPasswordUnchanged = httperr.ErrBusiness("password_unchanged")
)

type Store interface {
	GetCredentials(ctx context.Context) (models.Credentials, bool, error)
	SaveCredentials(ctx context.Context, c models.Credentials) error

	CreateSession(ctx context.Context, s models.Session) error
	GetSession(ctx context.Context, id string) (models.Session, bool, error)
	TouchSession(ctx context.Context, id string, at time.Time) (bool, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteOtherSessions(ctx context.Context, keepID string) error
}

type Options struct {
	Secret         string
	SessionTimeout time.Duration
	// Cost is the bcrypt cost; zero means bcrypt.DefaultCost.
	Cost int
	Now  func() time.Time
}

type Service struct {
	store   Store
	secret  []byte
	timeout time.Duration
	cost    int
	now     func() time.Time
}

func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:   store,
		secret:  []byte(opts.Secret),
		timeout: opts.SessionTimeout,
		cost:    opts.Cost,
		now:     opts.Now,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultSessionTimeout
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Claims is the JWT payload: sub is the username, sid the session id.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token   string         `json:"token"`
	Session models.Session `json:"session"`
}

// ===============================
// Credentials
// ===============================

// EnsureCredentials seeds username/password when nothing is stored yet.
func (s *Service) EnsureCredentials(ctx context.Context, username, password string) (bool, error) {
	_, ok, err := s.store.GetCredentials(ctx)
	if err != nil || ok {
		return false, err
	}
	if err := s.SetPassword(ctx, username, password); err != nil {
		return false, err
	}
	return true, nil
}

// SetPassword overwrites the credentials and revokes every session.
func (s *Service) SetPassword(ctx context.Context, username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.store.SaveCredentials(ctx, models.Credentials{
		Username:     username,
		PasswordHash: string(hash),
		UpdatedAt:    s.now(),
	})
	if err != nil {
		return err
	}
	return s.store.DeleteOtherSessions(ctx, "")
}

// ===============================
// Sessions
// ===============================

func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	creds, ok, err := s.store.GetCredentials(ctx)
	if err != nil {
		return nil, err
	}
	if !ok || creds.Username != username {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	sess := models.Session{
		ID:           uuid.NewString(),
		Username:     username,
		LoginAt:      now,
		LastActivity: now,
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	token, err := s.sign(sess, now)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Session: sess}, nil
}

// Authenticate resolves a bearer token to its live session and records the
// activity. Sessions idle for longer than the timeout are deleted.
func (s *Service) Authenticate(ctx context.Context, token string) (models.Session, error) {
	claims, err := s.parse(token)
	if err != nil {
		return models.Session{}, ErrInvalidToken
	}

	sess, ok, err := s.store.GetSession(ctx, claims.SessionID)
	if err != nil {
		return models.Session{}, err
	}
	if !ok || sess.Username != claims.Subject {
		return models.Session{}, ErrInvalidToken
	}

	now := s.now()
	if now.Sub(sess.LastActivity) > s.timeout {
		if err := s.store.DeleteSession(ctx, sess.ID); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, ErrSessionExpired
	}

	if _, err := s.store.TouchSession(ctx, sess.ID, now); err != nil {
		return models.Session{}, err
	}
	sess.LastActivity = now
	return sess, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.store.DeleteSession(ctx, sessionID)
}

type ChangePasswordInput struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
	Confirm string `json:"confirm_password"`
}

// ChangePassword keeps the caller's session and revokes the others.
func (s *Service) ChangePassword(ctx context.Context, sessionID string, in ChangePasswordInput) (validators.Strength, error) {
	creds, ok, err := s.store.GetCredentials(ctx)
	if err != nil {
		return "", err
	}
	if !ok || bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(in.Current)) != nil {
		return "", ErrWrongPassword
	}
	if len(in.New) < validators.MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	if in.New != in.Confirm {
		return "", ErrPasswordMismatch
	}
	if in.New == in.Current {
		return "", ErrPasswordUnchanged
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.New), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	creds.PasswordHash = string(hash)
	creds.UpdatedAt = s.now()
	if err := s.store.SaveCredentials(ctx, creds); err != nil {
		return "", err
	}
	if err := s.store.DeleteOtherSessions(ctx, sessionID); err != nil {
		return "", err
	}
	return validators.PasswordStrength(in.New), nil
}

// ===============================
// JWT
// ===============================

func (s *Service) sign(sess models.Session, now time.Time) (string, error) {
	claims := Claims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
