package app

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// GoogleConfig holds the OAuth2 client used for Google sign-in.
type GoogleConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"`
}

// Config is the top-level application configuration, loaded from YAML with
// environment overrides for deployment.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `yaml:"database_url"`
	// JWTSecret signs session tokens (HS256).
	JWTSecret string `yaml:"jwt_secret"`
	// TokenTTLHours is the session token lifetime.
	TokenTTLHours int `yaml:"token_ttl_hours"`

	Google GoogleConfig `yaml:"google"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:        ":8080",
		TokenTTLHours: 24,
	}
}

// Normalize fills missing values with defaults and applies environment
// overrides, so a partial file or a bare environment still works.
func (c *Config) Normalize() {
	if v := os.Getenv("PORT"); v != "" {
		c.Listen = ":" + v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_ID"); v != "" {
		c.Google.ClientID = v
	}
	if v := os.Getenv("GOOGLE_CLIENT_SECRET"); v != "" {
		c.Google.ClientSecret = v
	}
	if v := os.Getenv("GOOGLE_REDIRECT_URL"); v != "" {
		c.Google.RedirectURL = v
	}
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.TokenTTLHours <= 0 {
		c.TokenTTLHours = 24
	}
}

// TokenTTL returns the session token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

// LoadConfig loads configuration from the given YAML path. A missing file is
// not an error; defaults plus environment overrides apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}
	cfg.Normalize()
	if cfg.DatabaseURL == "" {
		return nil, errors.New("database_url (or DATABASE_URL) is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt_secret (or JWT_SECRET) is required")
	}
	return cfg, nil
}
