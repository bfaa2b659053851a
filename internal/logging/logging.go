// Package logging builds the zerolog logger used by the command and its
// servers from configuration.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/config"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// New returns a logger configured by cfg. Output goes to cfg.LogFile when set,
// otherwise to fallback. The returned closer releases the log file and is a
// no-op when no file was opened.
func New(cfg *config.Config, fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, errors.Wrapf(errors.ErrInvalidConfig, "log_level %q", cfg.LogLevel)
	}

	out := fallback
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		out, closer = f, f
	}

	return NewWithWriter(out, level, cfg.LogFormat), closer, nil
}

// NewWithWriter returns a logger writing to w at the given level. format is
// config.LogFormatJSON for one JSON object per line; anything else gives the
// human-readable console format.
func NewWithWriter(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format != config.LogFormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
