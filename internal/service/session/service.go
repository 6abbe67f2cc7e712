// Package session resolves access tokens into principals.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

// tokenVerifier validates an access token.
type tokenVerifier interface {
	Verify(ctx context.Context, token string) (auth.Identity, error)
}

// sessionRevoker ends a session at the identity provider.
type sessionRevoker interface {
	Logout(ctx context.Context, token string)
}

// profileRepo looks up the profile that carries the caller's role.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// principalCache holds recently resolved principals. Entries never outlive
// expiresAt; a zero expiresAt leaves the cache TTL in charge.
type principalCache interface {
	Get(token string) (domain.Principal, bool)
	Add(token string, p domain.Principal, expiresAt time.Time)
	Invalidate(token string)
}

// Service resolves and revokes sessions.
type Service struct {
	log      *slog.Logger
	verifier tokenVerifier
	revoker  sessionRevoker
	profiles profileRepo
	cache    principalCache
	timeout  time.Duration
}

// NewService creates a session service. revoker may be nil when the
// identity provider is not called on logout.
func NewService(
	logger *slog.Logger,
	verifier tokenVerifier,
	revoker sessionRevoker,
	profiles profileRepo,
	cache principalCache,
	timeout time.Duration,
) *Service {
	return &Service{
		log:      logger.With("service", "session"),
		verifier: verifier,
		revoker:  revoker,
		profiles: profiles,
		cache:    cache,
		timeout:  timeout,
	}
}

// Resolve returns the principal behind token.
// A user without a profile resolves with an empty role.
func (s *Service) Resolve(ctx context.Context, token string) (domain.Principal, error) {
	if token == "" {
		return domain.Principal{}, domain.ErrUnauthorized
	}
	if p, ok := s.cache.Get(token); ok {
		return p, nil
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	id, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return domain.Principal{}, timeoutAware(ctx, "verify token", err)
	}

	var p domain.Principal
	if id.Service {
		p = domain.Principal{UserID: uuid.Nil, Role: domain.RoleService}
	} else {
		p = domain.Principal{UserID: id.UserID}
		profile, err := s.profiles.GetByID(ctx, id.UserID)
		switch {
		case err == nil:
			p.Role = profile.Role
		case errors.Is(err, domain.ErrNotFound):
			s.log.DebugContext(ctx, "principal without profile", slog.String("user_id", id.UserID.String()))
		default:
			return domain.Principal{}, timeoutAware(ctx, "load profile", err)
		}
	}

	s.cache.Add(token, p, id.ExpiresAt)
	return p, nil
}

// Logout drops the cached principal and revokes the session upstream.
func (s *Service) Logout(ctx context.Context, token string) {
	s.cache.Invalidate(token)
	if s.revoker == nil {
		return
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()
	s.revoker.Logout(ctx, token)
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func timeoutAware(ctx context.Context, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
