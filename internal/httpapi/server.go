package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"horse.fit/langid/internal/clock"
	"horse.fit/langid/internal/langdetect"
	"horse.fit/langid/internal/language"
	"horse.fit/langid/internal/languagepb"
)

const maxBodyBytes = 1 << 20

// DetectionService is the RPC surface the gateway forwards to in-process.
type DetectionService interface {
	DetectLanguage(ctx context.Context, req *languagepb.LanguageRequest) (*languagepb.LanguageReply, error)
}

// ConfidenceSource ranks candidate languages for a text.
type ConfidenceSource interface {
	Confidences(text string) []langdetect.Confidence
}

type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type Server struct {
	service     DetectionService
	confidences ConfidenceSource
	languages   language.Set
	logger      zerolog.Logger
	opts        Options
}

func NewServer(svc DetectionService, confidences ConfidenceSource, languages language.Set, logger zerolog.Logger, opts Options) *Server {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		addr = "0.0.0.0:8090"
	}
	readTimeout := opts.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}
	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &Server{
		service:     svc,
		confidences: confidences,
		languages:   languages,
		logger:      logger,
		opts: Options{
			Addr:            addr,
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
	}
}

// Handler builds the Echo router. Start serves it; tests drive it directly.
func (s *Server) Handler() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := s.logger.Info()
			msg := "http request"
			if v.Error != nil {
				event = s.logger.Error().Err(v.Error)
				msg = "http request failed"
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg(msg)
			return nil
		},
	}))

	api := e.Group("/api/v1")
	api.GET("/health", s.handleHealth)
	api.GET("/languages", s.handleLanguages)
	api.POST("/detect", s.handleDetect)
	api.POST("/confidences", s.handleConfidences)

	return e
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	if s == nil || s.service == nil {
		return fmt.Errorf("server is not initialized")
	}

	lis, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves the gateway on lis until ctx is done.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	if s == nil || s.service == nil {
		return fmt.Errorf("server is not initialized")
	}

	e := s.Handler()
	e.Listener = lis
	httpServer := &http.Server{
		Addr:         lis.Addr().String(),
		Handler:      e,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
			s.logger.Error().Err(shutdownErr).Msg("http gateway shutdown failed")
		}
	}()

	s.logger.Info().Str("addr", lis.Addr().String()).Msg("http gateway started")

	if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start http gateway: %w", err)
	}
	s.logger.Info().Msg("http gateway stopped")
	return nil
}

func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if text, ok := he.Message.(string); ok && strings.TrimSpace(text) != "" {
			message = text
		} else if text := http.StatusText(code); text != "" {
			message = text
		}
	}

	if code >= 500 {
		_ = serverError(c, code, message)
		return
	}
	_ = fail(c, code, message, nil)
}

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"service": "langid",
		"time":    clock.UTC(),
	})
}

func (s *Server) handleLanguages(c echo.Context) error {
	return success(c, map[string]any{
		"items": s.languages.Names(),
		"codes": s.languages.Codes(),
	})
}

func (s *Server) handleDetect(c echo.Context) error {
	req, err := s.readDetectRequest(c)
	if err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}

	ctx := withPeer(c.Request().Context(), c.Request().RemoteAddr)
	reply, err := s.service.DetectLanguage(ctx, &languagepb.LanguageRequest{Text: req.Text})
	if err != nil {
		return s.rpcError(c, err)
	}
	return success(c, map[string]any{
		"language": reply.GetLanguage(),
	})
}

func (s *Server) handleConfidences(c echo.Context) error {
	if s.confidences == nil {
		return fail(c, http.StatusNotImplemented, "Confidence values are not available", nil)
	}

	req, err := s.readDetectRequest(c)
	if err != nil {
		return failValidation(c, map[string]string{"body": err.Error()})
	}
	if req.Text == "" {
		return failValidation(c, map[string]string{"text": "cannot be empty"})
	}

	return success(c, map[string]any{
		"items": s.confidences.Confidences(req.Text),
	})
}

func (s *Server) readDetectRequest(c echo.Context) (detectRequest, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes+1))
	if err != nil {
		return detectRequest{}, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return detectRequest{}, fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	return decodeDetectRequest(body)
}

// rpcError maps a gRPC status onto the matching HTTP status.
func (s *Server) rpcError(c echo.Context, err error) error {
	st := status.Convert(err)
	code := runtime.HTTPStatusFromCode(st.Code())

	if code >= 500 {
		s.logger.Error().Err(err).Str("grpc_code", st.Code().String()).Msg("detection failed")
		return serverError(c, code, st.Message())
	}
	return fail(c, code, st.Message(), map[string]any{
		"grpc_code": st.Code().String(),
	})
}

func withPeer(ctx context.Context, remoteAddr string) context.Context {
	addr, err := net.ResolveTCPAddr("tcp", remoteAddr)
	if err != nil {
		return ctx
	}
	return peer.NewContext(ctx, &peer.Peer{Addr: addr})
}
