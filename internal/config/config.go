package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"horse.fit/langid/internal/language"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	ListenAddr string `envconfig:"LISTEN_ADDR" default:"0.0.0.0:8080" validate:"required,hostname_port"`
	ServerAddr string `envconfig:"SERVER_ADDR" default:"0.0.0.0:8080" validate:"required,hostname_port"`
	HTTPAddr   string `envconfig:"HTTP_ADDR" default:"" validate:"omitempty,hostname_port"`

	SupportedLanguages string        `envconfig:"SUPPORTED_LANGUAGES" default:"English,French,German,Spanish,Turkish"`
	DetectTimeout      time.Duration `envconfig:"DETECT_TIMEOUT" default:"0s" validate:"gte=0"`

	DetectorMinRelativeDistance float64 `envconfig:"DETECTOR_MIN_RELATIVE_DISTANCE" default:"0" validate:"gte=0,lt=0.99"`
	DetectorMinLetters          int     `envconfig:"DETECTOR_MIN_LETTERS" default:"1" validate:"gte=0"`
	DetectorPreloadModels       bool    `envconfig:"DETECTOR_PRELOAD_MODELS" default:"true"`
	DetectorLowAccuracy         bool    `envconfig:"DETECTOR_LOW_ACCURACY" default:"false"`

	GRPCReflection  bool          `envconfig:"GRPC_REFLECTION" default:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	ClientTimeout   time.Duration `envconfig:"CLIENT_TIMEOUT" default:"0s" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describeValidationError(err)
	}
	if strings.TrimSpace(c.SupportedLanguages) == "" {
		return fmt.Errorf("SUPPORTED_LANGUAGES is required")
	}
	if _, err := language.ParseSet(c.SupportedLanguages); err != nil {
		return fmt.Errorf("SUPPORTED_LANGUAGES: %w", err)
	}
	return nil
}

// LanguageSet parses SUPPORTED_LANGUAGES.
func (c *Config) LanguageSet() (language.Set, error) {
	if c == nil {
		return language.ParseSet(language.DefaultSet)
	}
	return language.ParseSet(c.SupportedLanguages)
}

var envNames = map[string]string{
	"ListenAddr":                  "LISTEN_ADDR",
	"ServerAddr":                  "SERVER_ADDR",
	"HTTPAddr":                    "HTTP_ADDR",
	"DetectTimeout":               "DETECT_TIMEOUT",
	"DetectorMinRelativeDistance": "DETECTOR_MIN_RELATIVE_DISTANCE",
	"DetectorMinLetters":          "DETECTOR_MIN_LETTERS",
	"ShutdownTimeout":             "SHUTDOWN_TIMEOUT",
	"ClientTimeout":               "CLIENT_TIMEOUT",
}

func describeValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return err
	}

	fieldErr := validationErrs[0]
	name, ok := envNames[fieldErr.Field()]
	if !ok {
		name = fieldErr.Field()
	}

	switch fieldErr.Tag() {
	case "required":
		return fmt.Errorf("%s is required", name)
	case "hostname_port":
		return fmt.Errorf("%s must be host:port, got %q", name, fieldErr.Value())
	default:
		return fmt.Errorf("%s failed %s=%s (value %v)", name, fieldErr.Tag(), fieldErr.Param(), fieldErr.Value())
	}
}
