package config

import (
	"strings"
	"time"
)

// Database drivers supported by the storage layer.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Study     StudyConfig     `yaml:"study"`
	Progress  ProgressConfig  `yaml:"progress"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
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
}

// DatabaseConfig holds storage connection settings. For the sqlite driver
// DSN is a file path; pool settings apply to postgres only.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"             env:"DATABASE_DRIVER"             env-default:"postgres"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"mylingua"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StudyConfig holds review queue and history settings.
type StudyConfig struct {
	QueueDefaultLimit      int `yaml:"queue_default_limit"       env:"STUDY_QUEUE_DEFAULT_LIMIT"       env-default:"50"`
	QueueMaxLimit          int `yaml:"queue_max_limit"           env:"STUDY_QUEUE_MAX_LIMIT"           env-default:"200"`
	UndoWindowMinutes      int `yaml:"undo_window_minutes"       env:"STUDY_UNDO_WINDOW_MINUTES"       env-default:"10"`
	ReviewLogRetentionDays int `yaml:"review_log_retention_days" env:"STUDY_REVIEW_LOG_RETENTION_DAYS" env-default:"365"`
}

// ProgressConfig holds XP rewards per activity type.
type ProgressConfig struct {
	XPRead     int `yaml:"xp_read"      env:"PROGRESS_XP_READ"      env-default:"10"`
	XPQuiz     int `yaml:"xp_quiz"      env:"PROGRESS_XP_QUIZ"      env-default:"20"`
	XPVocab    int `yaml:"xp_vocab"     env:"PROGRESS_XP_VOCAB"     env-default:"5"`
	XPGame     int `yaml:"xp_game"      env:"PROGRESS_XP_GAME"      env-default:"15"`
	XPChat     int `yaml:"xp_chat"      env:"PROGRESS_XP_CHAT"      env-default:"5"`
	XPPerLevel int `yaml:"xp_per_level" env:"PROGRESS_XP_PER_LEVEL" env-default:"100"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"   env-default:"120"`
	Burst             int `yaml:"burst"               env:"RATE_LIMIT_BURST" env-default:"30"`
}

// UndoWindow returns the undo window as a duration.
func (s StudyConfig) UndoWindow() time.Duration {
	return time.Duration(s.UndoWindowMinutes) * time.Minute
}

// ReviewLogRetention returns the review log retention as a duration.
func (s StudyConfig) ReviewLogRetention() time.Duration {
	return time.Duration(s.ReviewLogRetentionDays) * 24 * time.Hour
}

// SplitList splits a comma-separated setting, dropping empty items.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
