package app

import (
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Logger loads .env if present, applies LOG_LEVEL and returns a logger that
// writes to w. A nil w discards everything.
func Logger(w io.Writer) zerolog.Logger {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// ConsoleLogger is Logger with human readable output on stderr.
func ConsoleLogger() zerolog.Logger {
	return Logger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
