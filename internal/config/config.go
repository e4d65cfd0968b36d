package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the client configuration, loaded from the environment.
type Config struct {
	AppName string `env:"GAMEHUB_APP_NAME" envDefault:"GameHub Client"`

	// APIBaseURL is the versioned REST API root all requests are resolved
	// against.
	APIBaseURL string `env:"GAMEHUB_API_BASE_URL" envDefault:"http://localhost:8000/api/v1"`

	// ServerURL is the unversioned backend origin, used to resolve relative
	// media paths (covers, avatars, screenshots).
	ServerURL string `env:"GAMEHUB_SERVER_URL" envDefault:"http://localhost:8000"`

	RequestTimeout time.Duration `env:"GAMEHUB_TIMEOUT" envDefault:"15s"`

	// StateDir is where the durable key-value store keeps its file. Empty
	// means the OS user config directory.
	StateDir string `env:"GAMEHUB_STATE_DIR"`

	Env string `env:"GAMEHUB_ENV" envDefault:"DEV"`
}

// New parses the configuration from environment variables, falling back to
// defaults suitable for local development.
func New() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "[config.New] env.Parse")
	}
	return cfg, nil
}
