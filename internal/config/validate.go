package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be > 0 (got %v)", c.Server.RequestTimeout)
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("database.connect_timeout must be > 0 (got %v)", c.Database.ConnectTimeout)
	}
	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	switch a.Mode {
	case AuthModeJWT:
		if len(a.JWTSecret) < 32 {
			return fmt.Errorf("jwt_secret must be at least 32 characters (got %d)", len(a.JWTSecret))
		}
	case AuthModeRemote:
		u, err := url.Parse(a.SupabaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("supabase_url must be an absolute URL (got %q)", a.SupabaseURL)
		}
		if strings.TrimSpace(a.SupabaseAnonKey) == "" {
			return fmt.Errorf("supabase_anon_key is required in remote mode")
		}
	default:
		return fmt.Errorf("mode must be %q or %q (got %q)", AuthModeJWT, AuthModeRemote, a.Mode)
	}

	if a.VerifyTimeout <= 0 {
		return fmt.Errorf("verify_timeout must be > 0 (got %v)", a.VerifyTimeout)
	}
	if a.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be > 0 (got %d)", a.CacheSize)
	}
	if a.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %v)", a.CacheTTL)
	}
	return nil
}

func (m *ModerationConfig) validate() error {
	if m.QueuePageSize <= 0 || m.QueuePageSize > m.QueueMaxPageSize {
		return fmt.Errorf("queue_page_size must be in 1..%d (got %d)", m.QueueMaxPageSize, m.QueuePageSize)
	}
	if m.DefaultWindow <= 0 || m.SnapshotWindow <= 0 {
		return fmt.Errorf("default_window and snapshot_window must be > 0")
	}
	if m.TopFlags <= 0 {
		return fmt.Errorf("top_flags must be > 0 (got %d)", m.TopFlags)
	}
	if _, err := cron.ParseStandard(m.SnapshotSchedule); err != nil {
		return fmt.Errorf("snapshot_schedule %q: %w", m.SnapshotSchedule, err)
	}
	return nil
}
