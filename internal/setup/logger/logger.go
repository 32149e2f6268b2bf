package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the structured logger injected into the chat-agent components.
// An unknown or empty level falls back to info instead of failing startup.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
