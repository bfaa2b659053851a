// Package worker runs replay jobs on a fixed set of goroutines. Each job owns
// its position, so workers share nothing but the job and result channels.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/fentrack-go/internal/chess"
	"github.com/lgbarn/fentrack-go/internal/errors"
)

// WorkItem is one replay job: a starting FEN and the moves to apply to it.
type WorkItem struct {
	Index   int // Position in the submitted sequence
	LineNum int // Source line number, for reporting
	FEN     string
	Moves   []string
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index    int
	LineNum  int
	Position *chess.Position // Final position (nil on error)
	FEN      string          // Final position as FEN (empty on error)
	Applied  int             // Number of moves applied before any error
	Error    error
}

// ProcessFunc replays a single work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Stats counts what the pool did with the items it received.
type Stats struct {
	Processed int64 // Items run through the ProcessFunc
	Failed    int64 // Processed items whose result carried an error
	Skipped   int64 // Items drained unprocessed after Stop
}

// Pool manages the replay workers.
type Pool struct {
	workers int
	buffer  int
	jobs    chan WorkItem
	results chan ProcessResult
	replay  ProcessFunc
	wg      sync.WaitGroup

	stopped   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1 are
// ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// New creates a pool that runs replay on every submitted item.
// By default there is one worker per CPU and the buffer holds two items per
// worker.
func New(replay ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		replay:  replay,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer == 0 {
		p.buffer = 2 * p.workers
	}
	p.jobs = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()

	for item := range p.jobs {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		res := p.run(item)
		p.processed.Add(1)
		if res.Error != nil {
			p.failed.Add(1)
		}
		p.results <- res
	}
}

// run calls the ProcessFunc, turning a panic into a failed result so one bad
// item cannot take the pool down.
func (p *Pool) run(item WorkItem) (res ProcessResult) {
	defer func() {
		if r := recover(); r != nil {
			res = ProcessResult{
				Index:   item.Index,
				LineNum: item.LineNum,
				Error:   fmt.Errorf("line %d: panic: %v", item.LineNum, r),
			}
		}
	}()
	return p.replay(item)
}

// Submit queues an item, blocking while the buffer is full. It returns the
// context error if ctx ends first, or ErrPoolStopped after Stop.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if p.stopped.Load() {
		return errors.ErrPoolStopped
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.jobs <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes workers drain queued items without processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close ends submission and waits for the workers. The results channel is
// closed once the last worker exits. Call Close exactly once, from the
// submitting goroutine.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Stats returns the counters so far. They are final once Results is drained.
func (p *Pool) Stats() Stats {
	return Stats{
		Processed: p.processed.Load(),
		Failed:    p.failed.Load(),
		Skipped:   p.skipped.Load(),
	}
}
