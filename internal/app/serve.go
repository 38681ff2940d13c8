package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"horse.fit/langid/internal/cli"
	"horse.fit/langid/internal/config"
	"horse.fit/langid/internal/httpapi"
	"horse.fit/langid/internal/langdetect"
	"horse.fit/langid/internal/language"
	"horse.fit/langid/internal/logging"
	"horse.fit/langid/internal/rpcserver"
	"horse.fit/langid/internal/service"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	listenAddr := fs.String("listen", "", "gRPC listen address (overrides LISTEN_ADDR)")
	httpAddr := fs.String("http", "", "HTTP gateway address (overrides HTTP_ADDR)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if envLoader != nil {
		if _, err := envLoader.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if strings.TrimSpace(*listenAddr) != "" || strings.TrimSpace(*httpAddr) != "" {
		if v := strings.TrimSpace(*listenAddr); v != "" {
			cfg.ListenAddr = v
		}
		if v := strings.TrimSpace(*httpAddr); v != "" {
			cfg.HTTPAddr = v
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
			return 2
		}
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel, "langid-server")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			logger.Info().Msg("shutdown signal received")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := serve(ctx, cfg, logger, nil, nil); err != nil {
		logger.Error().Err(err).Msg("server failed")
		fmt.Fprintf(os.Stderr, "Server failed: %v\n", err)
		return 1
	}
	return 0
}

// serve builds the detector and runs the gRPC server, plus the HTTP gateway
// when configured, until ctx is done. Listeners are opened before anything
// is served so a bad address fails startup as a whole. grpcLis and httpLis
// override the configured addresses when non-nil.
func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger, grpcLis, httpLis net.Listener) error {
	set, err := cfg.LanguageSet()
	if err != nil {
		return fmt.Errorf("parse supported languages: %w", err)
	}
	logger.Info().Strs("languages", set.Names()).Msg("supported languages")

	detector, err := newDetector(set, cfg)
	if err != nil {
		return fmt.Errorf("build language detector: %w", err)
	}
	logger.Info().Bool("preloaded", cfg.DetectorPreloadModels).Msg("language detector initialized")

	svc := service.New(detector, logger, service.Options{Timeout: cfg.DetectTimeout})

	if grpcLis == nil {
		grpcLis, err = net.Listen("tcp", cfg.ListenAddr)
		if err != nil {
			return fmt.Errorf("listen on %s: %w", cfg.ListenAddr, err)
		}
	}
	if httpLis == nil && strings.TrimSpace(cfg.HTTPAddr) != "" {
		httpLis, err = net.Listen("tcp", cfg.HTTPAddr)
		if err != nil {
			_ = grpcLis.Close()
			return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
		}
	}

	grpcServer := rpcserver.NewServer(svc, logger, rpcserver.Options{
		Addr:            grpcLis.Addr().String(),
		ShutdownTimeout: cfg.ShutdownTimeout,
		Reflection:      cfg.GRPCReflection,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return grpcServer.Serve(gctx, grpcLis)
	})

	if httpLis != nil {
		gateway := httpapi.NewServer(svc, detector, set, logger, httpapi.Options{
			Addr:            httpLis.Addr().String(),
			ShutdownTimeout: cfg.ShutdownTimeout,
		})
		g.Go(func() error {
			return gateway.Serve(gctx, httpLis)
		})
	}

	return g.Wait()
}

func newDetector(set language.Set, cfg *config.Config) (*langdetect.Lingua, error) {
	return langdetect.New(set, langdetect.Options{
		MinimumRelativeDistance: cfg.DetectorMinRelativeDistance,
		MinLetters:              cfg.DetectorMinLetters,
		PreloadModels:           cfg.DetectorPreloadModels,
		LowAccuracy:             cfg.DetectorLowAccuracy,
	})
}
