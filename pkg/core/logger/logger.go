//go:build !logless
// +build !logless

package logger

import (
	"os"

	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

var Log = logger.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

// SetLevel adjusts the global log level. Pure pursuit warns on every tick
// that it finds no lookahead intersection, which can be too chatty.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
