package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. ENVIRONMENT=local gets human-readable console
// output on stderr; every other environment logs JSON.
func New(environment, level, service string) (zerolog.Logger, error) {
	return NewWithWriter(os.Stderr, environment, level, service)
}

func NewWithWriter(out io.Writer, environment, level, service string) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("parse LOG_LEVEL=%q: %w", level, err)
	}

	writer := out
	if strings.EqualFold(strings.TrimSpace(environment), "local") {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	if strings.TrimSpace(service) == "" {
		service = "langid"
	}

	logger := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	return logger, nil
}
