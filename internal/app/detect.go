package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"horse.fit/langid/internal/cli"
	"horse.fit/langid/internal/client"
	"horse.fit/langid/internal/config"
	"horse.fit/langid/internal/logging"
)

type clientFlags struct {
	envLoader *cli.EnvLoader
	server    *string
	timeout   *time.Duration
}

func addClientFlags(fs *flag.FlagSet) clientFlags {
	return clientFlags{
		envLoader: cli.AddEnvFlag(fs, ".env", "Path to the .env file"),
		server:    fs.String("server", "", "Language service address (overrides SERVER_ADDR)"),
		timeout:   fs.Duration("timeout", 0, "Per-call timeout (overrides CLIENT_TIMEOUT)"),
	}
}

// load reads the env file and config, applies flag overrides, and builds
// the client. The caller owns closing it.
func (f clientFlags) load() (*config.Config, *client.Client, error) {
	if f.envLoader != nil {
		if _, err := f.envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(*f.server); v != "" {
		cfg.ServerAddr = v
	}
	if *f.timeout > 0 {
		cfg.ClientTimeout = *f.timeout
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel, "langid-client")
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}

	c := client.New(cfg.ServerAddr, logger, client.WithTimeout(cfg.ClientTimeout))
	return cfg, c, nil
}

func runDetect(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := addClientFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	_, c, err := flags.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer c.Close()

	text := strings.Join(fs.Args(), " ")
	reply, err := c.Detect(context.Background(), text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		return 1
	}
	if reply == nil {
		return 0
	}

	fmt.Fprintln(out, reply.GetLanguage())
	return 0
}
