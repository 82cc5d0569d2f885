package service

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/1739467001-svg/kaiyan/internal/domain"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// SessionService gates the back-office behind a single configured
// credential pair. This is a demo placeholder, not real auth: no
// hashing, no lockout, no attempt counting.
type SessionService struct {
	username   string
	password   string
	ttl        time.Duration
	loginDelay time.Duration
	logger     logger.Logger

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewSessionService(username, password string, ttl, loginDelay time.Duration, logger logger.Logger) *SessionService {
	return &SessionService{
		username:   username,
		password:   password,
		ttl:        ttl,
		loginDelay: loginDelay,
		logger:     logger,
		sessions:   make(map[string]time.Time),
	}
}

// Authenticate checks the pair against the configured credentials and
// issues a session token. The artificial delay mirrors the original
// login spinner; it waits on the context so an abandoned request does
// not hold the goroutine.
func (s *SessionService) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.loginDelay > 0 {
		timer := time.NewTimer(s.loginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.logger.Warn("admin login failed", logger.String("username", username))
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.New().String()

	s.mu.Lock()
	s.sessions[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	s.logger.Info("admin session started")

	return token, nil
}

// Validate reports whether the token belongs to a live admin session.
func (s *SessionService) Validate(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, ok := s.sessions[token]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return domain.ErrSessionNotFound
	}
	return nil
}

// Exit invalidates the token, dropping back to the consumer role.
// Unknown tokens are a no-op.
func (s *SessionService) Exit(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}

func (s *SessionService) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	purged := 0
	for token, expiry := range s.sessions {
		if now.After(expiry) {
			delete(s.sessions, token)
			purged++
		}
	}

	return purged, nil
}
