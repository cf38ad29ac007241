package worker

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// ValidateFEN checks a single position. Every call builds its own engine
// state, so it is safe to run from many goroutines.
func ValidateFEN(item WorkItem) ProcessResult {
	result := ProcessResult{FEN: item.FEN, Index: item.Index, DuplicateOf: -1}

	pos, err := engine.LoadFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	safe := pos.SafeSquares()
	check := pos.CheckState()
	result.Key = engine.RepetitionKey(engine.Encode(pos))
	result.LegalMoves = safe.Len()
	result.Check = check.IsCheck()
	result.Outcome = engine.Evaluate(pos, safe, check, false)
	return result
}

// Validator validates batches of positions with a worker pool and marks
// positions that repeat an earlier one.
type Validator struct {
	workers     int
	bufferSize  int
	maxCapacity int
	log         zerolog.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithPoolSize sets the number of workers and the queue size.
func WithPoolSize(workers, bufferSize int) ValidatorOption {
	return func(v *Validator) {
		v.workers = workers
		v.bufferSize = bufferSize
	}
}

// WithDuplicateCapacity caps how many distinct positions are remembered
// (0 = no limit).
func WithDuplicateCapacity(n int) ValidatorOption {
	return func(v *Validator) {
		v.maxCapacity = n
	}
}

// WithLog sets the logger used for batch progress.
func WithLog(log zerolog.Logger) ValidatorOption {
	return func(v *Validator) {
		v.log = log
	}
}

// NewValidator creates a validator. Defaults: 1 worker, buffer size of 10.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{workers: 1, bufferSize: 10, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateAll validates fens and returns one result per input, in input
// order. When ctx is cancelled the remaining positions are skipped and the
// context error is returned with the results gathered so far.
func (v *Validator) ValidateAll(ctx context.Context, fens []string) ([]ProcessResult, error) {
	seen := hashing.NewThreadSafeDuplicateDetector(v.maxCapacity)

	pool := NewPool(func(item WorkItem) ProcessResult {
		result := ValidateFEN(item)
		if result.Valid() {
			seen.CheckAndAdd(result.Key, result.Index)
		}
		return result
	}, WithWorkers(v.workers), WithBufferSize(v.bufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, fen := range fens {
			if !pool.Submit(ctx, WorkItem{FEN: fen, Index: i}) {
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(fens))
	for result := range pool.Results() {
		results = append(results, result)
	}
	slices.SortFunc(results, func(a, b ProcessResult) int { return a.Index - b.Index })

	// The detector keeps the lowest index per key, so this does not depend
	// on which worker finished first.
	invalid := 0
	for i := range results {
		if !results[i].Valid() {
			invalid++
			continue
		}
		results[i].DuplicateOf = seen.DuplicateOf(results[i].Key, results[i].Index)
	}

	queued, _ := pool.Stats()
	v.log.Info().
		Int("positions", len(fens)).
		Int("queued", queued).
		Int("validated", len(results)).
		Int("invalid", invalid).
		Int("unique", seen.UniqueCount()).
		Int("duplicates", seen.DuplicateCount()).
		Int("workers", pool.NumWorkers()).
		Msg("batch validated")

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}
