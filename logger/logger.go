package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup points the global logger at a console writer on stderr.
func Setup(verbose bool) {
	SetupTo(os.Stderr, verbose)
}

func SetupTo(out io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}
