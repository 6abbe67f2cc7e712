package config

import "time"

// Auth verification modes.
const (
	AuthModeJWT    = "jwt"
	AuthModeRemote = "remote"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Moderation ModerationConfig `yaml:"moderation"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RequestTimeout bounds every handler, and with it every DB call it makes.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" env-default:"5s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"30s"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds access token verification settings.
type AuthConfig struct {
	// Mode selects local JWT verification or a call to the Supabase user endpoint.
	Mode            string        `yaml:"mode"              env:"AUTH_MODE"              env-default:"jwt"`
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"`
	JWTAudience     string        `yaml:"jwt_audience"      env:"AUTH_JWT_AUDIENCE"      env-default:"authenticated"`
	SupabaseURL     string        `yaml:"supabase_url"      env:"SUPABASE_URL"`
	SupabaseAnonKey string        `yaml:"supabase_anon_key" env:"SUPABASE_ANON_KEY"`
	VerifyTimeout   time.Duration `yaml:"verify_timeout"    env:"AUTH_VERIFY_TIMEOUT"    env-default:"1500ms"`
	CacheSize       int           `yaml:"cache_size"        env:"AUTH_CACHE_SIZE"        env-default:"10000"`
	CacheTTL        time.Duration `yaml:"cache_ttl"         env:"AUTH_CACHE_TTL"         env-default:"5m"`
	BreakerFailures uint32        `yaml:"breaker_failures"  env:"AUTH_BREAKER_FAILURES"  env-default:"5"`
	BreakerCooldown time.Duration `yaml:"breaker_cooldown"  env:"AUTH_BREAKER_COOLDOWN"  env-default:"30s"`
}

// ModerationConfig holds review queue and metrics settings.
type ModerationConfig struct {
	QueuePageSize    int           `yaml:"queue_page_size"    env:"MODERATION_QUEUE_PAGE_SIZE"    env-default:"50"`
	QueueMaxPageSize int           `yaml:"queue_max_page_size" env:"MODERATION_QUEUE_MAX_PAGE_SIZE" env-default:"200"`
	DefaultWindow    time.Duration `yaml:"default_window"     env:"MODERATION_DEFAULT_WINDOW"     env-default:"168h"`
	TopFlags         int           `yaml:"top_flags"          env:"MODERATION_TOP_FLAGS"          env-default:"10"`
	SnapshotSchedule string        `yaml:"snapshot_schedule"  env:"MODERATION_SNAPSHOT_SCHEDULE"  env-default:"@every 5m"`
	SnapshotWindow   time.Duration `yaml:"snapshot_window"    env:"MODERATION_SNAPSHOT_WINDOW"    env-default:"24h"`
}

// RateLimitConfig holds per-IP request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_PER_MINUTE"      env-default:"300"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
