package logger

import (
	"context"
	"io"
	"os"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes human readable logs to stderr, leaving stdout to the menu.
func InitLogger() {
	InitLoggerWithOutput(os.Stderr)
}

func InitLoggerWithOutput(out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// FromContext returns the global logger enriched with the operator and request id found in ctx.
func FromContext(ctx context.Context) *zerolog.Logger {
	logCtx := log.Logger.With()

	if operator, ok := ctx.Value(constant.ContextKeyOperator).(string); ok && operator != constant.Empty {
		logCtx = logCtx.Str("operator", operator)
	}

	if requestID, ok := ctx.Value(constant.ContextKeyRequestID).(string); ok && requestID != constant.Empty {
		logCtx = logCtx.Str("request_id", requestID)
	}

	l := logCtx.Logger()

	return &l
}
