// Package worker provides a worker pool for parallel feature extraction.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-features/internal/chess"
	"github.com/lgbarn/chess-features/internal/engine"
	"github.com/lgbarn/chess-features/internal/errors"
	"github.com/lgbarn/chess-features/internal/features"
	"github.com/lgbarn/chess-features/internal/hashing"
	"github.com/lgbarn/chess-features/internal/input"
)

// WorkItem represents a position to be analyzed.
type WorkItem struct {
	Record input.Record
	Index  int // Input order, used to re-sequence results
}

// ProcessResult represents the result of analyzing a position.
type ProcessResult struct {
	Record    input.Record
	Index     int
	Signature hashing.PositionSignature
	Vectors   []*features.FeatureVector // One per analyzed colour
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// ExtractFunc returns a ProcessFunc that parses each record's position and
// extracts the feature vector of every colour in colours. The board is
// parsed per item, so workers never share one.
func ExtractFunc(colours []chess.Colour) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		rec := item.Record
		result := ProcessResult{Record: rec, Index: item.Index}
		if rec.Err != nil {
			result.Error = rec.Err
			return result
		}

		board, err := engine.NewBoardFromFEN(rec.FEN)
		if err != nil {
			result.Error = positionError(rec, "", err)
			return result
		}
		result.Signature = hashing.Signature(board)

		for _, colour := range colours {
			vec, err := features.Extract(board, colour)
			if err != nil {
				result.Error = positionError(rec, colour.String(), err)
				result.Vectors = nil
				return result
			}
			result.Vectors = append(result.Vectors, vec)
		}
		return result
	}
}

func positionError(rec input.Record, colour string, err error) error {
	return &errors.PositionError{
		Err:    err,
		File:   rec.Source,
		Record: rec.Number,
		Ply:    rec.Ply,
		Colour: colour,
		FEN:    rec.FEN,
	}
}

// Pool manages a pool of workers for parallel feature extraction.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool // Early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
