package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"

	"horse.fit/langid/internal/languagepb"
)

const requestIDHeader = "x-request-id"

type Option func(*Client)

// WithDialOptions appends dial options. Insecure transport credentials are
// always applied first and may be overridden here.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// WithTimeout bounds each call. Zero leaves the caller's context untouched.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// Client calls a remote language detection service. The connection is
// created on the first call that needs it.
type Client struct {
	target   string
	logger   zerolog.Logger
	dialOpts []grpc.DialOption
	timeout  time.Duration

	mu     sync.Mutex
	conn   *grpc.ClientConn
	detect languagepb.LanguageServiceClient
	health healthpb.HealthClient
}

func New(target string, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		target: strings.TrimSpace(target),
		logger: logger,
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Detect asks the service for the language of text. Empty text is a no-op:
// nothing is sent, no connection is made, and both return values are nil.
// Failures are returned exactly as the transport or service reported them.
func (c *Client) Detect(ctx context.Context, text string) (*languagepb.LanguageReply, error) {
	if text == "" {
		c.logger.Warn().Msg("no text provided to detect language")
		return nil, nil
	}

	rpc, _, err := c.connect()
	if err != nil {
		c.logger.Error().Err(err).Str("target", c.target).Msg("connect to language service failed")
		return nil, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	req := &languagepb.LanguageRequest{Text: text}
	c.logger.Info().
		Str("target", c.target).
		Str("text", text).
		Msg("sending detection request")

	var header metadata.MD
	reply, err := rpc.DetectLanguage(ctx, req, grpc.Header(&header))
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("target", c.target).
			Msg("detection request failed")
		return nil, err
	}

	c.logger.Info().
		Str("language", reply.GetLanguage()).
		Str("request_id", firstValue(header, requestIDHeader)).
		Msg("received detection reply")
	return reply, nil
}

// Health reports the serving status of the remote language service.
func (c *Client) Health(ctx context.Context) (healthpb.HealthCheckResponse_ServingStatus, error) {
	_, health, err := c.connect()
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{
		Service: languagepb.LanguageService_ServiceDesc.ServiceName,
	})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Close releases the connection, if one was made.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.detect = nil
	c.health = nil
	return err
}

func (c *Client) connect() (languagepb.LanguageServiceClient, healthpb.HealthClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return c.detect, c.health, nil
	}
	if c.target == "" {
		return nil, nil, fmt.Errorf("language service address is required")
	}

	conn, err := grpc.NewClient(c.target, c.dialOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create client for %s: %w", c.target, err)
	}
	c.conn = conn
	c.detect = languagepb.NewLanguageServiceClient(conn)
	c.health = healthpb.NewHealthClient(conn)
	return c.detect, c.health, nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout > 0 {
		return context.WithTimeout(ctx, c.timeout)
	}
	return context.WithCancel(ctx)
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
