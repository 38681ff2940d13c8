package rpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"horse.fit/langid/internal/languagepb"
)

const (
	defaultAddr            = "0.0.0.0:8080"
	defaultShutdownTimeout = 10 * time.Second
)

type Options struct {
	Addr            string
	ShutdownTimeout time.Duration
	Reflection      bool
}

// Server serves the language service, the gRPC health service and, when
// enabled, server reflection.
type Server struct {
	logger zerolog.Logger
	opts   Options
	grpc   *grpc.Server
	health *health.Server
}

func NewServer(svc languagepb.LanguageServiceServer, logger zerolog.Logger, opts Options) *Server {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		addr = defaultAddr
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recoveryInterceptor(logger),
			requestIDInterceptor(),
			accessLogInterceptor(logger),
		),
	)

	languagepb.RegisterLanguageServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(languagepb.LanguageService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	if opts.Reflection {
		reflection.Register(grpcServer)
	}

	return &Server{
		logger: logger,
		opts: Options{
			Addr:            addr,
			ShutdownTimeout: shutdownTimeout,
			Reflection:      opts.Reflection,
		},
		grpc:   grpcServer,
		health: healthServer,
	}
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if s == nil || s.grpc == nil {
		return fmt.Errorf("server is not initialized")
	}

	lis, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is done, then drains in-flight
// calls for up to ShutdownTimeout before closing them.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	if s == nil || s.grpc == nil {
		return fmt.Errorf("server is not initialized")
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		s.health.Shutdown()

		drained := make(chan struct{})
		go func() {
			s.grpc.GracefulStop()
			close(drained)
		}()

		timer := time.NewTimer(s.opts.ShutdownTimeout)
		defer timer.Stop()
		select {
		case <-drained:
		case <-timer.C:
			s.logger.Warn().
				Dur("shutdown_timeout", s.opts.ShutdownTimeout).
				Msg("graceful shutdown timed out, closing open calls")
			s.grpc.Stop()
		}
	}()

	s.logger.Info().Str("addr", lis.Addr().String()).Msg("language detection server started")

	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve grpc: %w", err)
	}
	s.logger.Info().Msg("language detection server stopped")
	return nil
}
