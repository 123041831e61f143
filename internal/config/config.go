package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	APIBaseURL        string `envconfig:"LMS_API_BASE_URL" default:"http://localhost:8080/api/v1"`
	RequestTimeoutSec int    `envconfig:"LMS_REQUEST_TIMEOUT_SEC" default:"30"`

	// StateDir holds the persisted session record. Empty means the
	// platform's per-user config dir.
	StateDir string `envconfig:"LMS_STATE_DIR" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RequestTimeout returns the per-request gateway timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// ResolveStateDir returns the directory for durable client state, creating it
// if needed.
func (c *Config) ResolveStateDir() (string, error) {
	dir := c.StateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolving user config dir: %w", err)
		}
		dir = filepath.Join(base, "lmsadmin")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("creating state dir: %w", err)
	}
	return dir, nil
}
