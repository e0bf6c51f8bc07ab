// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gaurav-prasanna/headscan/core/config"
)

// Setup points the global logger at w using the configured level and format.
// Format "json" emits raw zerolog JSON; anything else uses the console writer.
func Setup(cfg config.Config, w io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	out := w
	if cfg.LogFormat != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return nil
}
