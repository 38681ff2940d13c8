package app

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Run executes the CLI command and returns a process exit code.
func Run(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stderr)
		return 2
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "help", "--help", "-h":
		printUsage(os.Stderr)
		return 0
	case "serve":
		return runServe(args[1:])
	case "detect":
		return runDetect(args[1:], os.Stdout)
	case "health":
		return runHealth(args[1:], os.Stdout)
	case "languages":
		return runLanguages(args[1:], os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(os.Stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "langid CLI")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  langid <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Start the gRPC language detection server")
	fmt.Fprintln(w, "  detect     Detect the language of the given words")
	fmt.Fprintln(w, "  health     Check the serving status of a remote server")
	fmt.Fprintln(w, "  languages  Print the configured candidate languages")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Use \"langid <command> -h\" for command-specific flags.")
}
