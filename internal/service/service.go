package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"horse.fit/langid/internal/languagepb"
)

// Unknown is the reply value when no candidate language matched with confidence.
const Unknown = "Unknown"

const emptyTextMessage = "text cannot be empty"

var errDetectorPanic = errors.New("detector panicked")

// Detector identifies the language of a text among a fixed candidate set.
// Implementations must be safe for concurrent use.
type Detector interface {
	Detect(text string) (string, bool)
}

type Options struct {
	// Timeout bounds each detection. Zero disables the per-call deadline.
	Timeout time.Duration
}

// Service implements languagepb.LanguageServiceServer on top of a Detector.
// It writes no shared state, so one instance serves all calls.
type Service struct {
	languagepb.UnimplementedLanguageServiceServer

	detector Detector
	logger   zerolog.Logger
	timeout  time.Duration
}

func New(detector Detector, logger zerolog.Logger, opts Options) *Service {
	timeout := opts.Timeout
	if timeout < 0 {
		timeout = 0
	}
	return &Service{
		detector: detector,
		logger:   logger,
		timeout:  timeout,
	}
}

func (s *Service) DetectLanguage(ctx context.Context, req *languagepb.LanguageRequest) (*languagepb.LanguageReply, error) {
	s.logger.Info().
		Str("origin", Origin(ctx)).
		Msg("received detection request")

	text := req.GetText()
	if text == "" {
		s.logger.Error().
			Str("origin", Origin(ctx)).
			Msg("received empty text for language detection")
		return nil, status.Error(codes.InvalidArgument, emptyTextMessage)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	name, found, err := s.detect(ctx, text)
	if errors.Is(err, errDetectorPanic) {
		s.logger.Error().
			Err(err).
			Str("origin", Origin(ctx)).
			Msg("language detection failed")
		return nil, status.Error(codes.Internal, "language detection failed")
	}
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("origin", Origin(ctx)).
			Msg("language detection abandoned")
		return nil, status.FromContextError(err).Err()
	}

	if !found {
		name = Unknown
	}
	return &languagepb.LanguageReply{Language: name}, nil
}

type detectResult struct {
	name  string
	found bool
	err   error
}

// detect runs the detector off the handler goroutine so a finished context
// releases the call. An abandoned detection runs to completion in the background.
func (s *Service) detect(ctx context.Context, text string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	done := make(chan detectResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- detectResult{err: fmt.Errorf("%w: %v", errDetectorPanic, r)}
			}
		}()
		name, found := s.detector.Detect(text)
		done <- detectResult{name: name, found: found}
	}()

	select {
	case result := <-done:
		return result.name, result.found, result.err
	case <-ctx.Done():
		return "", false, ctx.Err()
	}
}

// Origin describes the remote caller recorded in ctx, or "unknown".
func Origin(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p == nil || p.Addr == nil {
		return "unknown"
	}
	return p.Addr.String()
}
