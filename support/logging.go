package support

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func NewLogger(cfg Config) (*zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "LOG_LEVEL %q", cfg.LogLevel)
	}

	logger := zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Str("site", cfg.SiteId).
		Logger()

	return &logger, nil
}
