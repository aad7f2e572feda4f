// Command argdump parses its arguments into a sample configuration and
// prints the result. It is a quick way to see how prefixarg binds a
// command line.
//
// Usage:
//
//	argdump [-name] NAME [-count N] [-timeout D] [-since T] [-level L] [-verbose B]
//
// Set ARGDUMP_LOG_LEVEL=debug to trace the binding, and
// ARGDUMP_POSITIONALS=skip-bound to keep positional arguments away from
// fields already set by key.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/janert/prefixarg"
)

type config struct {
	Name    string        `arg-required:""`
	Count   int           `arg-default:"1"`
	Timeout time.Duration `arg-default:"30s"`
	Since   time.Time
	Level   slog.Level `arg-default:"info"`
	Verbose bool
}

// main is the entrypoint for argdump.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFromEnv(os.Getenv("ARGDUMP_LOG_LEVEL")),
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// run parses args and writes the populated configuration to outW.
func run(outW io.Writer, args []string) error {
	opts := prefixarg.Options{}
	if os.Getenv("ARGDUMP_POSITIONALS") == "skip-bound" {
		opts.Positionals = prefixarg.PositionalSkipBound
	}

	cfg := config{}
	if err := prefixarg.FromSliceWithOptions(args, &cfg, opts); err != nil {
		return err
	}

	return prefixarg.WriteValues(outW, &cfg)
}

func levelFromEnv(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
