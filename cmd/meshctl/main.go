// Command meshctl builds, converts and inspects mesh packs.
//
// Usage:
//
//	meshctl [-config file] <command> [flags]
//
// Commands:
//
//	demo     build the reference ten-node mesh, prune it and print the pack
//	gen      grow a shape (chain, ring, star, wheel, grid, complete, sparse)
//	convert  read a pack and write it in another format
//	path     print a shortest path between two nodes of a pack
//	stats    print counts, components and an invariant check for a pack
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// ErrUsage reports a command line that names no known command.
var ErrUsage = errors.New("meshctl: usage")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type command func(env *env, args []string) error

var commands = map[string]command{
	"demo":    runDemo,
	"gen":     runGen,
	"convert": runConvert,
	"path":    runPath,
	"stats":   runStats,
}

// run parses the global flags, sets up logging and metrics from the
// configuration and dispatches to one command.
func run(out io.Writer, args []string) error {
	fs := flag.NewFlagSet("meshctl", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "config file (.yaml, .yml, .toml or .hcl)")
	fs.Usage = func() {
		fmt.Fprintln(out, "Usage: meshctl [-config file] <demo|gen|convert|path|stats> [flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}

	e, err := newEnv(out, *configPath, name)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	start := time.Now()
	if err := cmd(e, fs.Args()[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		e.log.Error("command failed", zap.String("command", name), zap.Error(err))
		return err
	}
	e.log.Info("command finished", zap.String("command", name), zap.Duration("took", time.Since(start)))

	return e.flushMetrics()
}
