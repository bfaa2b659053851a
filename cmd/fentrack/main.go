// fentrack tracks chess positions given as FEN: an interactive loop, an HTTP
// session API and a parallel batch replayer share one position engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/config"
	"github.com/lgbarn/fentrack-go/internal/logging"
	"github.com/lgbarn/fentrack-go/internal/replay"
	"github.com/lgbarn/fentrack-go/internal/server"
	"github.com/lgbarn/fentrack-go/internal/session"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fentrack version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, setFlags(flag.CommandLine))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logging.New(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFile, err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("fentrack failed")
		stop()
		closer.Close()
		os.Exit(1)
	}
}

// run dispatches to the mode selected on the command line.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	switch {
	case *serve:
		return runServer(ctx, cfg, log)
	case *replayFile != "":
		return runReplay(ctx, cfg, log, *replayFile, os.Stdout)
	default:
		return runREPL(os.Stdin, os.Stdout, cfg, log)
	}
}

// runServer serves the session API until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store := session.NewStore(cfg.Server.MaxSessions)
	return server.Run(ctx, cfg.Server.Addr, log, store)
}

// runReplay replays the lines in path ("-" for stdin) and writes one result
// per line to w. Failed lines make the run fail after all output is written.
func runReplay(ctx context.Context, cfg *config.Config, log zerolog.Logger, path string, w io.Writer) error {
	in := io.Reader(os.Stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	lines, err := replay.ReadLines(in)
	if err != nil {
		return err
	}

	results, runErr := replay.New(cfg.Replay, log).Run(ctx, lines)
	if err := replay.WriteResults(w, results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	if failed := replay.Failures(results); failed > 0 {
		return fmt.Errorf("%d of %d lines failed", failed, len(lines))
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fentrack [options]\n\n")
	fmt.Fprintf(os.Stderr, "Track chess positions given in FEN notation.\n\n")
	fmt.Fprintf(os.Stderr, "Modes:\n")
	fmt.Fprintf(os.Stderr, "  (default)        interactive loop on stdin\n")
	fmt.Fprintf(os.Stderr, "  -serve           HTTP session API\n")
	fmt.Fprintf(os.Stderr, "  -replay file     batch replay of 'FEN | moves' lines\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment variables with the %s_ prefix override the config file.\n", config.EnvPrefix)
}
