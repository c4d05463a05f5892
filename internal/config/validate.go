package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Media.validate(); err != nil {
		return fmt.Errorf("media: %w", err)
	}

	if err := c.Feed.validate(); err != nil {
		return fmt.Errorf("feed: %w", err)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.PerIPRequests <= 0 {
			return fmt.Errorf("rate_limit.per_ip_requests must be > 0 (got %d)", c.RateLimit.PerIPRequests)
		}
		if c.RateLimit.PerUserRate <= 0 || c.RateLimit.PerUserBurst <= 0 {
			return fmt.Errorf("rate_limit.per_user_rate and per_user_burst must be > 0")
		}
	}

	if c.Cleanup.SearchHistoryRetention < 0 {
		return fmt.Errorf("cleanup.search_history_retention must be >= 0 (got %s)", c.Cleanup.SearchHistoryRetention)
	}
	if c.Cleanup.Timeout <= 0 {
		return fmt.Errorf("cleanup.timeout must be > 0 (got %s)", c.Cleanup.Timeout)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (m *MediaConfig) validate() error {
	if m.VideoBucket == "" || m.ImageBucket == "" {
		return fmt.Errorf("video_bucket and image_bucket are required")
	}
	if m.VideoBucket == m.ImageBucket {
		return fmt.Errorf("video_bucket and image_bucket must differ")
	}
	u, err := url.Parse(m.PublicBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("public_base_url must be an absolute URL (got %q)", m.PublicBaseURL)
	}
	if m.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", m.MaxUploadBytes)
	}
	if m.BreakerFailureThreshold == 0 {
		return fmt.Errorf("breaker_failure_threshold must be > 0")
	}
	return nil
}

func (f *FeedConfig) validate() error {
	if f.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", f.DefaultPageSize)
	}
	if f.MaxPageSize < f.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)", f.MaxPageSize, f.DefaultPageSize)
	}
	return nil
}
