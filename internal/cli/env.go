package cli

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// OverrideEnvVar names an env file that takes precedence over the --env flag.
const OverrideEnvVar = "LANGID_ENV_FILE"

// EnvLoader loads .env files with a predictable override order.
type EnvLoader struct {
	fs          *flag.FlagSet
	value       *string
	defaultPath string
}

// AddEnvFlag registers an --env flag and returns an EnvLoader.
func AddEnvFlag(fs *flag.FlagSet, defaultPath, description string) *EnvLoader {
	if fs == nil {
		fs = flag.CommandLine
	}
	if defaultPath == "" {
		defaultPath = ".env"
	}
	if description == "" {
		description = "Path to the .env file"
	}

	value := fs.String("env", defaultPath, description)
	return &EnvLoader{
		fs:          fs,
		value:       value,
		defaultPath: defaultPath,
	}
}

// Load resolves and loads environment variables using the configured flag value.
// A missing default file is not an error; a missing file that was asked for is.
// Variables already present in the process environment win over file values.
func (l *EnvLoader) Load() (string, error) {
	if l == nil {
		return "", fmt.Errorf("env loader is nil")
	}

	log.SetOutput(os.Stderr)

	if custom := strings.TrimSpace(os.Getenv(OverrideEnvVar)); custom != "" {
		if err := godotenv.Load(custom); err != nil {
			return "", fmt.Errorf("load %s=%s: %w", OverrideEnvVar, custom, err)
		}
		log.Printf("Loaded environment from %s: %s", OverrideEnvVar, custom)
		return custom, nil
	}

	requested := strings.TrimSpace(derefString(l.value))
	if requested == "" {
		requested = l.defaultPath
	}

	err := godotenv.Load(requested)
	if err == nil {
		log.Printf("Loaded environment from: %s", requested)
		return requested, nil
	}

	base := filepath.Base(requested)
	if base != "" && base != requested {
		if baseErr := godotenv.Load(base); baseErr == nil {
			log.Printf("Loaded environment from basename fallback: %s", base)
			return base, nil
		}
	}

	if errors.Is(err, fs.ErrNotExist) && !l.explicit() {
		return "", nil
	}
	return "", fmt.Errorf("failed to load env file from %s: %w", requested, err)
}

func (l *EnvLoader) explicit() bool {
	if l.fs == nil {
		return false
	}
	set := false
	l.fs.Visit(func(f *flag.Flag) {
		if f.Name == "env" {
			set = true
		}
	})
	return set
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
