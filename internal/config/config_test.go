package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LISTEN_ADDR", "SERVER_ADDR", "HTTP_ADDR", "SUPPORTED_LANGUAGES", "DETECT_TIMEOUT", "SHUTDOWN_TIMEOUT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:8080" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.ServerAddr != "0.0.0.0:8080" {
		t.Fatalf("unexpected server addr: %q", cfg.ServerAddr)
	}
	if cfg.HTTPAddr != "" {
		t.Fatalf("expected HTTP gateway disabled by default, got %q", cfg.HTTPAddr)
	}
	if cfg.DetectTimeout != 0 {
		t.Fatalf("expected no detect timeout by default, got %s", cfg.DetectTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}

	set, err := cfg.LanguageSet()
	if err != nil {
		t.Fatalf("language set: %v", err)
	}
	want := []string{"English", "French", "German", "Spanish", "Turkish"}
	if got := set.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected default languages: %v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	unsetEnv(t, "SERVER_ADDR", "SHUTDOWN_TIMEOUT")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9090")
	t.Setenv("HTTP_ADDR", "localhost:9091")
	t.Setenv("SUPPORTED_LANGUAGES", "en,tr")
	t.Setenv("DETECT_TIMEOUT", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:9090" || cfg.HTTPAddr != "localhost:9091" {
		t.Fatalf("unexpected addresses: %q %q", cfg.ListenAddr, cfg.HTTPAddr)
	}
	if cfg.DetectTimeout != 250*time.Millisecond {
		t.Fatalf("unexpected detect timeout: %s", cfg.DetectTimeout)
	}
	set, err := cfg.LanguageSet()
	if err != nil {
		t.Fatalf("language set: %v", err)
	}
	if got := set.Names(); !reflect.DeepEqual(got, []string{"English", "Turkish"}) {
		t.Fatalf("unexpected languages: %v", got)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() Config {
		return Config{
			Environment:        "local",
			LogLevel:           "info",
			ListenAddr:         "0.0.0.0:8080",
			ServerAddr:         "0.0.0.0:8080",
			SupportedLanguages: "English,French",
			ShutdownTimeout:    time.Second,
			DetectorMinLetters: 1,
		}
	}

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "unparsable listen addr", mutate: func(c *Config) { c.ListenAddr = "not an address" }, wantErr: "LISTEN_ADDR"},
		{name: "port out of range", mutate: func(c *Config) { c.ServerAddr = "localhost:70000" }, wantErr: "SERVER_ADDR"},
		{name: "bad http addr", mutate: func(c *Config) { c.HTTPAddr = "8081" }, wantErr: "HTTP_ADDR"},
		{name: "negative timeout", mutate: func(c *Config) { c.DetectTimeout = -time.Second }, wantErr: "DETECT_TIMEOUT"},
		{name: "distance too large", mutate: func(c *Config) { c.DetectorMinRelativeDistance = 0.99 }, wantErr: "DETECTOR_MIN_RELATIVE_DISTANCE"},
		{name: "single language", mutate: func(c *Config) { c.SupportedLanguages = "English" }, wantErr: "SUPPORTED_LANGUAGES"},
		{name: "unknown language", mutate: func(c *Config) { c.SupportedLanguages = "English,Elvish" }, wantErr: "SUPPORTED_LANGUAGES"},
		{name: "blank languages", mutate: func(c *Config) { c.SupportedLanguages = "  " }, wantErr: "SUPPORTED_LANGUAGES"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tc.wantErr, err)
			}
		})
	}

	cfg := base()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected base config to be valid, got %v", err)
	}
}
