package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process-wide settings, read once at startup. The signing
// secret is mandatory: its absence is a startup failure, never a per-request
// error, and the value must never be logged.
type Config struct {
	JWTSecret   string        `env:"CRM_JWT_SECRET, required"`
	TokenTTL    time.Duration `env:"CRM_TOKEN_TTL,   default=24h"`
	DBPath      string        `env:"CRM_DB_PATH,     default=data/crm.db"`
	SessionFile string        `env:"CRM_SESSION_FILE"`
	LogLevel    string        `env:"LOG_LEVEL,       default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,      default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
// When CRM_SESSION_FILE is unset the session slot lives under the user's
// home directory.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if cfg.SessionFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir for session file: %w", err)
		}
		cfg.SessionFile = filepath.Join(home, ".epicevents", "session")
	}
	return &cfg, nil
}
