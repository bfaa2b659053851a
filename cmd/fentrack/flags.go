// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fentrack-go/internal/config"
)

var (
	// General
	configFile = flag.String("config", "", "YAML configuration file")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")

	// Interactive loop
	startFEN   = flag.String("fen", "", "Start the interactive loop from this position")
	prompt     = flag.String("prompt", "> ", "Interactive prompt")
	jsonOutput = flag.Bool("json", false, "Print positions as JSON")
	strictMode = flag.Bool("strict", false, "Check moves against the move generator before applying them")

	// Logging
	logLevel  = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat = flag.String("log-format", config.LogFormatConsole, "Log format (console, json)")
	logFile   = flag.String("log-file", "", "Append logs to this file (default: stderr)")

	// HTTP mode
	serve       = flag.Bool("serve", false, "Serve the session API over HTTP")
	addr        = flag.String("addr", ":8080", "HTTP listen address")
	maxSessions = flag.Int("max-sessions", 1000, "Maximum live sessions (0 = unlimited)")

	// Batch replay
	replayFile  = flag.String("replay", "", "Replay 'FEN | moves' lines from this file ('-' for stdin)")
	workers     = flag.Int("workers", 0, "Replay workers (0 = number of CPUs)")
	stopOnError = flag.Bool("stop-on-error", false, "Stop replay at the first failing line")
	reportDups  = flag.Bool("dups", false, "Mark replay lines that reach an earlier line's position")
)

// applyFlags overlays the flags the user set onto cfg. Flags left at their
// defaults do not override values from the config file or environment.
func applyFlags(cfg *config.Config, isSet func(name string) bool) {
	applyLoopFlags(cfg, isSet)
	applyLogFlags(cfg, isSet)
	applyServerFlags(cfg, isSet)
	applyReplayFlags(cfg, isSet)
}

// applyLoopFlags configures the interactive loop.
func applyLoopFlags(cfg *config.Config, isSet func(string) bool) {
	if isSet("fen") {
		cfg.StartFEN = *startFEN
	}
	if isSet("prompt") {
		cfg.Prompt = *prompt
	}
	if isSet("json") {
		cfg.JSONOutput = *jsonOutput
	}
	if isSet("strict") {
		cfg.Replay.Strict = *strictMode
	}
}

// applyLogFlags configures logging.
func applyLogFlags(cfg *config.Config, isSet func(string) bool) {
	if isSet("log-level") {
		cfg.LogLevel = *logLevel
	}
	if isSet("log-format") {
		cfg.LogFormat = *logFormat
	}
	if isSet("log-file") {
		cfg.LogFile = *logFile
	}
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config, isSet func(string) bool) {
	if isSet("addr") {
		cfg.Server.Addr = *addr
	}
	if isSet("max-sessions") {
		cfg.Server.MaxSessions = *maxSessions
	}
}

// applyReplayFlags configures batch replay.
func applyReplayFlags(cfg *config.Config, isSet func(string) bool) {
	if isSet("workers") && *workers > 0 {
		cfg.Replay.Workers = *workers
	}
	if isSet("stop-on-error") {
		cfg.Replay.StopOnError = *stopOnError
	}
	if isSet("dups") {
		cfg.Replay.ReportDuplicates = *reportDups
	}
}

// setFlags returns a lookup of the flags given on the command line.
func setFlags(fs *flag.FlagSet) func(string) bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return func(name string) bool { return set[name] }
}
