package config

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider is the read-only view of the configuration handed to modules.
type Provider interface {
	GetAddr() string
	GetBaseURL() string
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() string
	GetGlitchPeriod() time.Duration
	GetGlitchDuration() time.Duration
	GetScrollThreshold() float64
	GetRevealEnabled() bool
	GetViewIdleTTL() time.Duration
	GetViewConnectGrace() time.Duration
	GetViewReconnectGrace() time.Duration
	GetMaxViews() int
	GetUIRateLimit() float64
	GetCheckoutStandardURL() string
	GetCheckoutPremiumURL() string
	GetAssetBaseURL() string
	GetTracing() Tracing
}

// Tracing configures publish tracing on the message bus.
type Tracing struct {
	Enabled     bool
	ServiceName string `validate:"required_if=Enabled true"`
	ZipkinURL   string `validate:"required_if=Enabled true"`
}

// Config holds all configuration for the application.
type Config struct {
	Addr          string `validate:"required"`
	BaseURL       string `validate:"omitempty,url"`
	SessionSecret string `validate:"required,min=16"`
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`

	GlitchPeriod    time.Duration `validate:"gt=0"`
	GlitchDuration  time.Duration `validate:"gt=0"`
	ScrollThreshold float64       `validate:"gt=0"`
	RevealEnabled   bool

	ViewIdleTTL        time.Duration `validate:"gt=0"`
	ViewConnectGrace   time.Duration `validate:"gt=0"`
	ViewReconnectGrace time.Duration `validate:"gt=0"`
	MaxViews           int           `validate:"gt=0"`
	UIRateLimit        float64       `validate:"gt=0"`

	CheckoutStandardURL string `validate:"omitempty,url|startswith=#"`
	CheckoutPremiumURL  string `validate:"omitempty,url|startswith=#"`
	AssetBaseURL        string

	Tracing Tracing
}

var _ Provider = (*Config)(nil)

func (c *Config) GetAddr() string                  { return c.Addr }
func (c *Config) GetBaseURL() string               { return c.BaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetLogFormat() string             { return c.LogFormat }
func (c *Config) GetLogLevel() string              { return c.LogLevel }
func (c *Config) GetGlitchPeriod() time.Duration   { return c.GlitchPeriod }
func (c *Config) GetGlitchDuration() time.Duration { return c.GlitchDuration }
func (c *Config) GetScrollThreshold() float64      { return c.ScrollThreshold }
func (c *Config) GetRevealEnabled() bool           { return c.RevealEnabled }
func (c *Config) GetViewIdleTTL() time.Duration    { return c.ViewIdleTTL }
func (c *Config) GetViewConnectGrace() time.Duration {
	return c.ViewConnectGrace
}
func (c *Config) GetViewReconnectGrace() time.Duration {
	return c.ViewReconnectGrace
}
func (c *Config) GetMaxViews() int                 { return c.MaxViews }
func (c *Config) GetUIRateLimit() float64          { return c.UIRateLimit }
func (c *Config) GetCheckoutStandardURL() string   { return c.CheckoutStandardURL }
func (c *Config) GetCheckoutPremiumURL() string    { return c.CheckoutPremiumURL }
func (c *Config) GetAssetBaseURL() string          { return c.AssetBaseURL }
func (c *Config) GetTracing() Tracing              { return c.Tracing }

// Defaults returns a configuration with every default applied and no secret.
func Defaults() *Config {
	return &Config{
		Addr:            ":8080",
		LogFormat:       "text",
		LogLevel:        "debug",
		GlitchPeriod:    8000 * time.Millisecond,
		GlitchDuration:  1200 * time.Millisecond,
		ScrollThreshold: 100,
		RevealEnabled:   true,
		ViewIdleTTL:        30 * time.Minute,
		ViewConnectGrace:   time.Minute,
		ViewReconnectGrace: 10 * time.Second,
		MaxViews:           10000,
		UIRateLimit:        30,
		Tracing: Tracing{
			ServiceName: "flashweb",
			ZipkinURL:   "http://localhost:9411/api/v2/spans",
		},
	}
}

// Load reads .env (when present) and the environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a validated configuration from a variable lookup.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg, err := ReadEnv(lookup)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadEnv applies the variables found by lookup over the defaults without
// validating the result. Tools that never serve traffic use it so they do not
// need a session secret.
func ReadEnv(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Defaults()
	r := envReader{lookup: lookup}

	r.str("APP_ADDR", &cfg.Addr)
	r.str("APP_BASE_URL", &cfg.BaseURL)
	r.str("SESSION_SECRET", &cfg.SessionSecret)
	r.str("LOG_FORMAT", &cfg.LogFormat)
	r.str("LOG_LEVEL", &cfg.LogLevel)
	r.duration("GLITCH_PERIOD", &cfg.GlitchPeriod)
	r.duration("GLITCH_DURATION", &cfg.GlitchDuration)
	r.float("SCROLL_THRESHOLD", &cfg.ScrollThreshold)
	r.boolean("REVEAL_ENABLED", &cfg.RevealEnabled)
	r.duration("VIEW_IDLE_TTL", &cfg.ViewIdleTTL)
	r.duration("VIEW_CONNECT_GRACE", &cfg.ViewConnectGrace)
	r.duration("VIEW_RECONNECT_GRACE", &cfg.ViewReconnectGrace)
	r.integer("MAX_VIEWS", &cfg.MaxViews)
	r.float("UI_RATE_LIMIT", &cfg.UIRateLimit)
	r.str("CHECKOUT_STANDARD_URL", &cfg.CheckoutStandardURL)
	r.str("CHECKOUT_PREMIUM_URL", &cfg.CheckoutPremiumURL)
	r.str("ASSET_BASE_URL", &cfg.AssetBaseURL)
	r.boolean("PUBSUB_TRACING_ENABLED", &cfg.Tracing.Enabled)
	r.str("PUBSUB_TRACING_SERVICE_NAME", &cfg.Tracing.ServiceName)
	r.str("PUBSUB_TRACING_ZIPKIN_URL", &cfg.Tracing.ZipkinURL)

	if r.err != nil {
		return nil, r.err
	}
	return cfg, nil
}

// Validate checks the struct tags of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// New loads configuration and exits the process when it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (r *envReader) raw(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (r *envReader) fail(key, value string, err error) {
	r.err = fmt.Errorf("invalid value %q for %s: %w", value, key, err)
}

func (r *envReader) str(key string, dst *string) {
	if v, ok := r.raw(key); ok {
		*dst = v
	}
}

func (r *envReader) duration(key string, dst *time.Duration) {
	if v, ok := r.raw(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = d
	}
}

func (r *envReader) float(key string, dst *float64) {
	if v, ok := r.raw(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (r *envReader) integer(key string, dst *int) {
	if v, ok := r.raw(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) boolean(key string, dst *bool) {
	if v, ok := r.raw(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = b
	}
}
