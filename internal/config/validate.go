package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}
	if err := c.Progress.validate(); err != nil {
		return fmt.Errorf("progress: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))
	switch d.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, d.Driver)
	}
	if d.DSN == "" {
		return fmt.Errorf("dsn is required")
	}
	if d.Driver == DriverPostgres && d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns (%d) must not exceed max_conns (%d)", d.MinConns, d.MaxConns)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if s.QueueDefaultLimit <= 0 {
		return fmt.Errorf("queue_default_limit must be > 0 (got %d)", s.QueueDefaultLimit)
	}
	if s.QueueMaxLimit < s.QueueDefaultLimit {
		return fmt.Errorf("queue_max_limit (%d) must be >= queue_default_limit (%d)", s.QueueMaxLimit, s.QueueDefaultLimit)
	}
	if s.UndoWindowMinutes < 0 {
		return fmt.Errorf("undo_window_minutes must be >= 0 (got %d)", s.UndoWindowMinutes)
	}
	if s.ReviewLogRetentionDays <= 0 {
		return fmt.Errorf("review_log_retention_days must be > 0 (got %d)", s.ReviewLogRetentionDays)
	}
	return nil
}

func (p *ProgressConfig) validate() error {
	rewards := map[string]int{
		"xp_read":  p.XPRead,
		"xp_quiz":  p.XPQuiz,
		"xp_vocab": p.XPVocab,
		"xp_game":  p.XPGame,
		"xp_chat":  p.XPChat,
	}
	for name, v := range rewards {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}
	if p.XPPerLevel <= 0 {
		return fmt.Errorf("xp_per_level must be > 0 (got %d)", p.XPPerLevel)
	}
	return nil
}
