package logging

import (
	"io"
	"os"

	"wsinit/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// SetupLogger points the global logger at stderr so stdout stays reserved
// for the workspace report.
func SetupLogger(cfg *config.Config) {
	setupLogger(cfg, os.Stderr)
}

func setupLogger(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	writer := out
	if cfg.PrettyLogging {
		writer = zerolog.ConsoleWriter{Out: out}
	}

	logger := zerolog.New(writer).With().Caller().Timestamp().Stack().Logger()
	log.Logger = logger

	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Debug().Str("base", cfg.BaseDirectory).Strs("folders", cfg.Folders).Msg("wsinit configuration")
}
