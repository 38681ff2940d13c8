package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func runHealth(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	flags := addClientFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, c, err := flags.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	defer c.Close()

	serving, err := c.Health(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check against %s failed: %v\n", cfg.ServerAddr, err)
		return 1
	}

	fmt.Fprintln(out, serving.String())
	if serving != healthpb.HealthCheckResponse_SERVING {
		return 1
	}
	return 0
}
