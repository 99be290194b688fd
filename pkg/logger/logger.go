package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	// Disabled turns logging off; it is the CLI default
	Disabled LogLevel = "disabled"
)

// Levels lists the accepted values of the --log-level flag
var Levels = []LogLevel{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, Disabled}

// Config represents logger configuration
type Config struct {
	// Level is the minimal level written
	Level LogLevel
	// Pretty enables human-readable console output
	Pretty bool
	// Output defaults to os.Stderr so logs never mix with command output
	Output io.Writer
}

// ParseLevel maps a flag value onto a LogLevel, case-insensitively.
func ParseLevel(s string) (LogLevel, bool) {
	l := LogLevel(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Levels {
		if l == v {
			return l, true
		}
	}
	return "", false
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case InfoLevel:
		return zerolog.InfoLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case Disabled:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger from config. Unknown levels fall back to info.
func New(config Config) zerolog.Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	var writer io.Writer = config.Output
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:        config.Output,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(writer).
		Level(config.Level.zerolog()).
		With().
		Timestamp().
		Logger()
}
