package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"horse.fit/langid/internal/cli"
	"horse.fit/langid/internal/config"
)

func runLanguages(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("languages", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	codes := fs.Bool("codes", false, "Print ISO 639-1 codes next to names")

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
	set, err := cfg.LanguageSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid SUPPORTED_LANGUAGES: %v\n", err)
		return 1
	}

	names := set.Names()
	isoCodes := set.Codes()
	for i, name := range names {
		if *codes {
			fmt.Fprintf(out, "%s\t%s\n", isoCodes[i], name)
			continue
		}
		fmt.Fprintln(out, name)
	}
	return 0
}
