// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/sale-prospector/pkg/cooldown"
	domain "github.com/donaldgifford/sale-prospector/pkg/types"
)

// Config is the top-level application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Cooldown      CooldownConfig      `yaml:"cooldown"`
	Geocode       GeocodeConfig       `yaml:"geocode"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"          validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"      validate:"required"`
	Port     int    `yaml:"port"      validate:"min=1,max=65535"`
	Name     string `yaml:"name"      validate:"required"`
	User     string `yaml:"user"      validate:"required"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"   validate:"oneof=disable allow prefer require verify-ca verify-full"`
	PoolSize int    `yaml:"pool_size" validate:"min=1"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// CooldownConfig holds the window used for users without a saved setting.
type CooldownConfig struct {
	DefaultDays int `yaml:"default_days"`
}

// GeocodeConfig defines the coordinate backfill job.
type GeocodeConfig struct {
	Enabled   bool            `yaml:"enabled"`
	BaseURL   string          `yaml:"base_url"   validate:"omitempty,url"`
	UserAgent string          `yaml:"user_agent"`
	Email     string          `yaml:"email"      validate:"omitempty,email"`
	Country   string          `yaml:"country"`
	BatchSize int             `yaml:"batch_size" validate:"min=1,max=1000"`
	Interval  time.Duration   `yaml:"interval"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines geocoding request rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"  validate:"gt=0"`
	Burst      int     `yaml:"burst"       validate:"min=1"`
	DailyLimit int64   `yaml:"daily_limit" validate:"min=0"`
}

// NotificationsConfig defines notification targets.
type NotificationsConfig struct {
	Discord DiscordConfig `yaml:"discord"`
}

// DiscordConfig defines Discord webhook settings.
type DiscordConfig struct {
	Enabled    bool   `yaml:"enabled"`
	WebhookURL string `yaml:"webhook_url" validate:"omitempty,url"`
}

// TelemetryConfig defines the OpenTelemetry exporters.
type TelemetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Endpoint    string        `yaml:"endpoint"`
	ServiceName string        `yaml:"service_name"`
	Insecure    bool          `yaml:"insecure"`
	Interval    time.Duration `yaml:"interval"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"oneof=debug info warn error"` // debug, info, warn, error
	Format string `yaml:"format" validate:"oneof=text json"`             // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyCooldownDefaults(&cfg.Cooldown)
	applyGeocodeDefaults(&cfg.Geocode)
	applyTelemetryDefaults(&cfg.Telemetry)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyCooldownDefaults(c *CooldownConfig) {
	if c.DefaultDays == 0 {
		c.DefaultDays = domain.DefaultCooldownDays
	}
}

func applyGeocodeDefaults(g *GeocodeConfig) {
	if g.BaseURL == "" {
		g.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if g.UserAgent == "" {
		g.UserAgent = "sale-prospector/1.0"
	}
	if g.BatchSize == 0 {
		g.BatchSize = 100
	}
	if g.Interval == 0 {
		g.Interval = time.Hour
	}
	applyRateLimitDefaults(&g.RateLimit)
}

// Public Nominatim allows one request per second.
func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 1.0
	}
	if r.Burst == 0 {
		r.Burst = 1
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 2500
	}
}

func applyTelemetryDefaults(t *TelemetryConfig) {
	if t.ServiceName == "" {
		t.ServiceName = "sale-prospector"
	}
	if t.Interval == 0 {
		t.Interval = 30 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

var structValidator = newStructValidator()

// newStructValidator reports fields by their YAML keys.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validate(cfg *Config) error {
	var errs []error

	if err := structValidator.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Errorf("%s failed %q check (got %v)", fieldPath(fe), fe.Tag(), fe.Value()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	if !cooldown.Valid(cfg.Cooldown.DefaultDays) {
		errs = append(errs, fmt.Errorf(
			"cooldown.default_days must be one of %v (got %d)",
			cooldown.AllowedDays, cfg.Cooldown.DefaultDays,
		))
	}

	if cfg.Notifications.Discord.Enabled && cfg.Notifications.Discord.WebhookURL == "" {
		errs = append(errs, fmt.Errorf("notifications.discord.webhook_url is required when discord is enabled"))
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
	}

	if cfg.Geocode.Enabled && cfg.Geocode.Interval < time.Minute {
		errs = append(errs, fmt.Errorf("geocode.interval must be at least 1m (got %s)", cfg.Geocode.Interval))
	}

	return errors.Join(errs...)
}

// fieldPath turns "Config.geocode.rate_limit.per_second" into
// "geocode.rate_limit.per_second".
func fieldPath(fe validator.FieldError) string {
	_, path, _ := strings.Cut(fe.Namespace(), ".")
	return path
}
