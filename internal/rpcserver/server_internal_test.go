package rpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"horse.fit/langid/internal/languagepb"
)

func TestNewServerDefaults(t *testing.T) {
	t.Parallel()

	srv := NewServer(languagepb.UnimplementedLanguageServiceServer{}, zerolog.Nop(), Options{})
	if srv.Addr() != defaultAddr {
		t.Fatalf("unexpected default addr: %q", srv.Addr())
	}
	if srv.opts.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected default shutdown timeout: %s", srv.opts.ShutdownTimeout)
	}

	info := srv.grpc.GetServiceInfo()
	for _, name := range []string{"language.LanguageService", "grpc.health.v1.Health"} {
		if _, ok := info[name]; !ok {
			t.Fatalf("expected %s to be registered, got %v", name, info)
		}
	}
	if _, ok := info["grpc.reflection.v1.ServerReflection"]; ok {
		t.Fatalf("reflection must be disabled unless requested")
	}
}

func TestNewServerReflection(t *testing.T) {
	t.Parallel()

	srv := NewServer(languagepb.UnimplementedLanguageServiceServer{}, zerolog.Nop(), Options{Reflection: true})
	if _, ok := srv.grpc.GetServiceInfo()["grpc.reflection.v1.ServerReflection"]; !ok {
		t.Fatalf("expected reflection service to be registered")
	}
}

func TestStartRejectsBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewServer(languagepb.UnimplementedLanguageServiceServer{}, zerolog.Nop(), Options{Addr: "127.0.0.1:-1"})
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := srv.Start(ctx); err == nil {
		t.Fatalf("expected listen error")
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := NewServer(languagepb.UnimplementedLanguageServiceServer{}, zerolog.Nop(), Options{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, lis)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}
