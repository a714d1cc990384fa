package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	logLevelFlag      = "loglevel"
	consoleTimeFormat = time.RFC3339
)

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// newLogger returns a console logger writing to out at the given level. Colors are used only when out is a terminal.
func newLogger(out io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid --%s", logLevelFlag)
	}

	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		out = colorable.NewColorable(f)
	}

	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: consoleTimeFormat,
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
