// Package supabase verifies access tokens against the Supabase auth API.
package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/pathpiper/pathpiper-backend/internal/auth"
	"github.com/pathpiper/pathpiper-backend/internal/domain"
)

const (
	userPath   = "/auth/v1/user"
	logoutPath = "/auth/v1/logout"
)

// Options configures the remote verifier.
type Options struct {
	BaseURL         string
	AnonKey         string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
}

// Verifier resolves access tokens by calling the Supabase user endpoint.
// Calls go through a circuit breaker; an open breaker fails fast with
// domain.ErrUnavailable.
type Verifier struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	log        *slog.Logger
}

// NewVerifier creates a remote verifier.
func NewVerifier(opts Options, logger *slog.Logger) *Verifier {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	failures := opts.BreakerFailures
	if failures == 0 {
		failures = 5
	}

	log := logger.With("adapter", "supabase_auth")

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "supabase_auth",
		Timeout: opts.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// Rejected tokens do not count toward tripping.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrUnauthorized)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})

	return &Verifier{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		anonKey:    opts.AnonKey,
		httpClient: client,
		breaker:    breaker,
		log:        log,
	}
}

// userResponse is the subset of the Supabase user object we read.
type userResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Verify resolves token to an identity.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if token == "" {
		return auth.Identity{}, fmt.Errorf("%w: empty token", domain.ErrUnauthorized)
	}

	res, err := v.breaker.Execute(func() (interface{}, error) {
		return v.fetchUser(ctx, token)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return auth.Identity{}, fmt.Errorf("%w: auth provider circuit open", domain.ErrUnavailable)
		}
		return auth.Identity{}, err
	}

	// The user endpoint accepted the token, so its own exp claim is trusted.
	expiresAt := auth.TokenExpiry(token)

	user := res.(*userResponse)
	if user.Role == auth.ClaimRoleService {
		return auth.Identity{Service: true, ExpiresAt: expiresAt}, nil
	}

	id, err := uuid.Parse(user.ID)
	if err != nil {
		return auth.Identity{}, fmt.Errorf("%w: invalid user id", domain.ErrUnauthorized)
	}
	return auth.Identity{UserID: id, ExpiresAt: expiresAt}, nil
}

// Logout revokes the session behind token. Failures are logged and ignored.
func (v *Verifier) Logout(ctx context.Context, token string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+logoutPath, nil)
	if err != nil {
		return
	}
	v.setHeaders(req, token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.WarnContext(ctx, "supabase logout failed", slog.String("error", err.Error()))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		v.log.WarnContext(ctx, "supabase logout failed", slog.Int("status", resp.StatusCode))
	}
}

func (v *Verifier) fetchUser(ctx context.Context, token string) (*userResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+userPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create user request: %w", err)
	}
	v.setHeaders(req, token)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "supabase user lookup failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: auth provider: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: token rejected by auth provider", domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		v.log.ErrorContext(ctx, "supabase user lookup failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: auth provider status %d", domain.ErrUnavailable, resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: invalid user response", domain.ErrUnavailable)
	}
	return &user, nil
}

func (v *Verifier) setHeaders(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
	if v.anonKey != "" {
		req.Header.Set("apikey", v.anonKey)
	}
}
