// Package worker validates batches of FEN positions on a pool of goroutines.
//
// Every check builds its own engine state from the FEN string, so workers
// share nothing but the result channel and the duplicate detector.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one position to check. Index is its place in the input.
type WorkItem struct {
	FEN   string
	Index int
}

// ProcessResult is the outcome of checking one position.
type ProcessResult struct {
	FEN         string
	Index       int
	Key         string         // Repetition key, empty when the FEN is invalid
	LegalMoves  int            // Number of legal moves for the side to move
	Check       bool           // Whether the side to move is in check
	Outcome     engine.Outcome // Draw already decided by the position, if any
	DuplicateOf int            // Index of an earlier identical position, or -1
	Error       error
}

// Valid reports whether the position was accepted.
func (r ProcessResult) Valid() bool {
	return r.Error == nil
}

// CheckFunc checks a single position. It must be safe for concurrent use.
type CheckFunc func(item WorkItem) ProcessResult

// Pool runs a CheckFunc on a fixed number of goroutines. Results arrive in
// completion order, not input order.
type Pool struct {
	workers   int
	queueSize int
	queue     chan WorkItem
	results   chan ProcessResult
	check     CheckFunc
	wg        sync.WaitGroup
	stopped   atomic.Bool
	queued    atomic.Int64
	checked   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets how many items may wait in the queue. Values below 1
// are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.queueSize = size
		}
	}
}

// NewPool creates a pool around check. Default: 1 worker, queue of 10.
func NewPool(check CheckFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:   1,
		queueSize: 10,
		check:     check,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan WorkItem, p.queueSize)
	p.results = make(chan ProcessResult, p.queueSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()

	for item := range p.queue {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.check(item)
		p.checked.Add(1)
	}
}

// Submit queues item, blocking while the queue is full. It returns false
// without queueing when the pool is stopped or ctx is done; a done ctx
// also stops the pool.
func (p *Pool) Submit(ctx context.Context, item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	if ctx.Err() != nil {
		p.Stop()
		return false
	}
	select {
	case <-ctx.Done():
		p.Stop()
		return false
	case p.queue <- item:
		p.queued.Add(1)
		return true
	}
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Stats returns how many items were queued and how many were checked.
func (p *Pool) Stats() (queued, checked int) {
	return int(p.queued.Load()), int(p.checked.Load())
}
