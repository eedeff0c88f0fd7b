package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// auth
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	SessionTTL                  Duration `toml:"session_ttl"`
	SessionsCleanupInterval     Duration `toml:"sessions_cleanup_interval"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

// Duration is a time.Duration read from a TOML string like "168h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied for unset values.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults(env)
	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.SessionTTL.Duration == 0 {
		c.SessionTTL.Duration = 7 * 24 * time.Hour
	}
	if c.SessionsCleanupInterval.Duration == 0 {
		c.SessionsCleanupInterval.Duration = 8 * time.Hour
	}
}

// Secrets are never kept in the config file.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	RedisPassword    string `env:"HEALTHY_REDIS_PASS"`
	PostgresPassword string `env:"HEALTHY_POSTGRES_PASS"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=healthy-backend"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

// LoadSecretsFrom is LoadSecrets with an explicit lookup source, used in tests.
func LoadSecretsFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}
