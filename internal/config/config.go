package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Provider is the read-only view of configuration that the rest of the
// application depends on.
type Provider interface {
	GetAppEnv() string
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetContentPath() string
	GetResumePath() string
	GetResumeFilename() string
	GetContactSender() string
	GetLiveReload() bool
	IsDevelopment() bool
}

// Config holds all configuration for the application.
type Config struct {
	AppEnv         string
	AppAddr        string
	AppBaseURL     string
	SessionSecret  string
	ContentPath    string
	ResumePath     string
	ResumeFilename string
	ContactSender  string
	LiveReload     bool
}

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// devSessionSecret is only accepted in development.
	devSessionSecret = "folio-development-session-secret"
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

// Load reads configuration from environment variables. A .env file, if any,
// must already have been loaded by the caller.
func Load() (*Config, error) {
	opt := func(key, fallback string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		AppEnv:         opt("APP_ENV", EnvDevelopment),
		AppAddr:        opt("APP_ADDR", ":8080"),
		AppBaseURL:     opt("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:  opt("SESSION_SECRET", ""),
		ContentPath:    opt("CONTENT_PATH", ""),
		ResumePath:     opt("RESUME_PATH", ""),
		ResumeFilename: opt("RESUME_FILENAME", ""),
		ContactSender:  opt("CONTACT_SENDER", "log"),
	}

	if v := opt("LIVE_RELOAD", ""); v != "" {
		live, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LIVE_RELOAD value %q: %w", v, err)
		}
		cfg.LiveReload = live
	}

	if cfg.SessionSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("%w: SESSION_SECRET", errMissingRequiredEnv)
		}
		cfg.SessionSecret = devSessionSecret
	}

	return cfg, nil
}

func (c *Config) GetAppEnv() string        { return c.AppEnv }
func (c *Config) GetAppAddr() string       { return c.AppAddr }
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetContentPath() string   { return c.ContentPath }
func (c *Config) GetResumePath() string    { return c.ResumePath }
func (c *Config) GetContactSender() string { return c.ContactSender }
func (c *Config) GetLiveReload() bool      { return c.LiveReload }

// GetResumeFilename is the name the résumé is downloaded as. Without
// RESUME_FILENAME it is the base name of RESUME_PATH.
func (c *Config) GetResumeFilename() string {
	if c.ResumeFilename == "" && c.ResumePath != "" {
		return filepath.Base(c.ResumePath)
	}
	return c.ResumeFilename
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}
