package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Media     MediaConfig     `yaml:"media"`
	Feed      FeedConfig      `yaml:"feed"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cleanup   CleanupConfig   `yaml:"cleanup"`
}

// CleanupConfig drives cmd/cleanup. A zero retention keeps search history
// forever.
type CleanupConfig struct {
	SearchHistoryRetention time.Duration `yaml:"search_history_retention" env:"CLEANUP_SEARCH_HISTORY_RETENTION" env-default:"2160h"`
	Timeout                time.Duration `yaml:"timeout"                  env:"CLEANUP_TIMEOUT"                  env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins returns AllowedOrigins split on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods returns AllowedMethods split on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers returns AllowedHeaders split on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds the settings for verifying access tokens issued by the
// identity service.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"vidstream"`
	Leeway    time.Duration `yaml:"leeway"     env:"AUTH_LEEWAY"     env-default:"30s"`
}

// MediaConfig holds object storage settings.
type MediaConfig struct {
	Endpoint       string `yaml:"endpoint"         env:"MEDIA_ENDPOINT"         env-default:"localhost:9000"`
	AccessKey      string `yaml:"access_key"       env:"MEDIA_ACCESS_KEY"`
	SecretKey      string `yaml:"secret_key"       env:"MEDIA_SECRET_KEY"`
	UseSSL         bool   `yaml:"use_ssl"          env:"MEDIA_USE_SSL"          env-default:"false"`
	Region         string `yaml:"region"           env:"MEDIA_REGION"           env-default:"us-east-1"`
	VideoBucket    string `yaml:"video_bucket"     env:"MEDIA_VIDEO_BUCKET"     env-default:"videos"`
	ImageBucket    string `yaml:"image_bucket"     env:"MEDIA_IMAGE_BUCKET"     env-default:"images"`
	PublicBaseURL  string `yaml:"public_base_url"  env:"MEDIA_PUBLIC_BASE_URL"  env-default:"http://localhost:9000"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env:"MEDIA_MAX_UPLOAD_BYTES" env-default:"536870912"`
	TempDir        string `yaml:"temp_dir"         env:"MEDIA_TEMP_DIR"`

	RetryBackoff            time.Duration `yaml:"retry_backoff"             env:"MEDIA_RETRY_BACKOFF"             env-default:"200ms"`
	BreakerMaxRequests      uint32        `yaml:"breaker_max_requests"      env:"MEDIA_BREAKER_MAX_REQUESTS"      env-default:"1"`
	BreakerInterval         time.Duration `yaml:"breaker_interval"          env:"MEDIA_BREAKER_INTERVAL"          env-default:"60s"`
	BreakerTimeout          time.Duration `yaml:"breaker_timeout"           env:"MEDIA_BREAKER_TIMEOUT"           env-default:"30s"`
	BreakerFailureThreshold uint32        `yaml:"breaker_failure_threshold" env:"MEDIA_BREAKER_FAILURE_THRESHOLD" env-default:"5"`
}

// FeedConfig holds listing page size bounds.
type FeedConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"FEED_DEFAULT_PAGE_SIZE" env-default:"10"`
	MaxPageSize     int `yaml:"max_page_size"     env:"FEED_MAX_PAGE_SIZE"     env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds request rate limits. PerIP applies to every request,
// PerUser to authenticated writes.
type RateLimitConfig struct {
	Enabled       bool          `yaml:"enabled"         env:"RATE_LIMIT_ENABLED"         env-default:"true"`
	PerIPRequests int           `yaml:"per_ip_requests" env:"RATE_LIMIT_PER_IP_REQUESTS" env-default:"300"`
	PerIPWindow   time.Duration `yaml:"per_ip_window"   env:"RATE_LIMIT_PER_IP_WINDOW"   env-default:"1m"`
	PerUserRate   float64       `yaml:"per_user_rate"   env:"RATE_LIMIT_PER_USER_RATE"   env-default:"5"`
	PerUserBurst  int           `yaml:"per_user_burst"  env:"RATE_LIMIT_PER_USER_BURST"  env-default:"20"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
