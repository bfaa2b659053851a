package replay

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/config"
	"github.com/lgbarn/fentrack-go/internal/engine"
	"github.com/lgbarn/fentrack-go/internal/errors"
	"github.com/lgbarn/fentrack-go/internal/hashing"
	"github.com/lgbarn/fentrack-go/internal/worker"
)

// Result is the outcome of replaying one line.
type Result struct {
	LineNum int
	FEN     string // Final position; empty when Err is set
	Err     error

	// DuplicateOf is the number of an earlier line that ended in the same
	// position, or 0. Only set when duplicate reporting is enabled.
	DuplicateOf int
}

// String renders the result as it is printed.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("line %d: error: %v", r.LineNum, r.Err)
	}
	if r.DuplicateOf > 0 {
		return fmt.Sprintf("line %d: %s (same position as line %d)", r.LineNum, r.FEN, r.DuplicateOf)
	}
	return fmt.Sprintf("line %d: %s", r.LineNum, r.FEN)
}

// Replayer replays lines on a worker pool.
type Replayer struct {
	cfg config.ReplayConfig
	log zerolog.Logger
}

// New creates a Replayer.
func New(cfg config.ReplayConfig, log zerolog.Logger) *Replayer {
	return &Replayer{cfg: cfg, log: log}
}

// Run replays every line and returns the results in input order.
//
// With StopOnError set, no new lines are scheduled once a failure is seen,
// and the results end at the first failing line. If ctx is cancelled the
// pool is stopped, the results gathered so far are returned in order up to
// the first line that did not finish, and the context error is returned.
func (r *Replayer) Run(ctx context.Context, lines []Line) ([]Result, error) {
	pool := worker.New(r.process,
		worker.WithWorkers(r.cfg.Workers),
		worker.WithBufferSize(r.cfg.BufferSize),
	)
	pool.Start()

	var failed atomic.Bool
	go func() {
		defer pool.Close()
		for i, line := range lines {
			if r.cfg.StopOnError && failed.Load() {
				r.log.Debug().Int("line", line.Num).Msg("stop on error: not scheduling further lines")
				return
			}
			item := worker.WorkItem{Index: i, LineNum: line.Num, FEN: line.FEN, Moves: line.Moves}
			if err := pool.Submit(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	done := make([]*worker.ProcessResult, len(lines))
	for res := range pool.Results() {
		res := res
		done[res.Index] = &res
		if res.Error != nil {
			failed.Store(true)
			r.log.Debug().Int("line", res.LineNum).Err(res.Error).Msg("replay failed")
		}
	}

	results, dups := r.collect(done)
	stats := pool.Stats()
	ev := r.log.Info().
		Int("lines", len(lines)).
		Int("reported", len(results)).
		Int64("processed", stats.Processed).
		Int64("failed", stats.Failed).
		Int64("skipped", stats.Skipped).
		Int("workers", pool.Workers()).
		Bool("stopped", pool.Stopped())
	if dups != nil {
		ev = ev.Int("unique", dups.UniqueCount()).Int("duplicates", dups.DuplicateCount())
	}
	ev.Msg("replay finished")

	return results, ctx.Err()
}

// collect orders finished jobs by input position, stopping at the first gap
// and, with StopOnError, after the first failure. The duplicate detector is
// nil unless ReportDuplicates is set.
func (r *Replayer) collect(done []*worker.ProcessResult) ([]Result, *hashing.DuplicateDetector) {
	var dups *hashing.DuplicateDetector
	if r.cfg.ReportDuplicates {
		dups = hashing.NewDuplicateDetector(0)
	}

	results := make([]Result, 0, len(done))
	for _, res := range done {
		if res == nil {
			break
		}
		out := Result{LineNum: res.LineNum, FEN: res.FEN, Err: res.Error}
		if dups != nil && res.Error == nil {
			if first, dup := dups.CheckAndAdd(res.Position, res.LineNum); dup {
				out.DuplicateOf = first
			}
		}
		results = append(results, out)
		if res.Error != nil && r.cfg.StopOnError {
			break
		}
	}
	return results, dups
}

// process replays a single work item. It runs on pool workers; each item owns
// its position.
func (r *Replayer) process(item worker.WorkItem) worker.ProcessResult {
	res := worker.ProcessResult{Index: item.Index, LineNum: item.LineNum}

	pos, err := engine.NewPositionFromFEN(item.FEN)
	if err != nil {
		res.Error = err
		return res
	}

	for i, text := range item.Moves {
		if err := r.apply(pos, text); err != nil {
			var moveErr *errors.MoveError
			if errors.As(err, &moveErr) {
				moveErr.PlyNum = i + 1
			} else {
				err = &errors.MoveError{Err: err, MoveText: text, PlyNum: i + 1}
			}
			res.Error = err
			return res
		}
		res.Applied++
	}

	res.Position = pos
	res.FEN = engine.PositionToFEN(pos)
	return res
}

func (r *Replayer) apply(pos *chess.Position, text string) error {
	move, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	if r.cfg.Strict {
		return engine.ApplyCheckedMove(pos, move)
	}
	return engine.ApplyMove(pos, move)
}

// WriteResults prints one line per result.
func WriteResults(w io.Writer, results []Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return err
		}
	}
	return nil
}

// Failures counts the results that carry an error.
func Failures(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
