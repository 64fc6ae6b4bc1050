// processor.go - Position processing and output functions
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chess-features/internal/config"
	"github.com/lgbarn/chess-features/internal/errors"
	"github.com/lgbarn/chess-features/internal/hashing"
	"github.com/lgbarn/chess-features/internal/input"
	"github.com/lgbarn/chess-features/internal/output"
	"github.com/lgbarn/chess-features/internal/worker"
)

// errStopped ends a scan once the pool has been stopped.
var errStopped = stderrors.New("processing stopped")

// Stats counts what happened to the positions of a run.
type Stats struct {
	Positions  int // Positions read and analyzed
	Records    int // Feature records written
	Unique     int // Positions remembered by the duplicate detector
	Duplicates int // Positions dropped as already seen
	Skipped    int // Unreadable positions skipped
}

// Processor runs the extraction pipeline over input streams.
// NOT thread-safe: ProcessInput must not be called concurrently.
type Processor struct {
	cfg      *config.Config
	writer   output.PositionWriter
	detector *hashing.DuplicateDetector
	stats    Stats
}

// NewProcessor creates a processor writing to writer. A duplicate detector
// is created when cfg asks for duplicate suppression.
func NewProcessor(cfg *config.Config, writer output.PositionWriter) *Processor {
	p := &Processor{cfg: cfg, writer: writer}
	if cfg.Duplicate.Suppress {
		p.detector = hashing.NewDuplicateDetector(cfg.Duplicate.MaxPositions)
	}
	return p
}

// Stats returns the counts accumulated so far.
func (p *Processor) Stats() Stats {
	stats := p.stats
	if p.detector != nil {
		stats.Unique = p.detector.UniqueCount()
	}
	return stats
}

// ProcessInput reads every position of r, extracts features in the worker
// pool and writes the records in input order. It returns the first error
// that is not skipped.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, name string) error {
	pool := worker.NewPool(
		worker.ExtractFunc(p.cfg.Colours.Colours()),
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(p.cfg.BufferSize),
	)
	pool.Start()
	p.logf(2, "Processing %s with %d worker(s)\n", name, pool.NumWorkers())

	g, gctx := errgroup.WithContext(ctx)
	var abandoned error

	g.Go(func() error {
		defer pool.Close()
		index := 0
		err := input.Scan(r, name, p.cfg.Input.Format, func(rec input.Record) error {
			if pool.IsStopped() {
				return errStopped
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			pool.Submit(worker.WorkItem{Record: rec, Index: index})
			index++
			return nil
		})
		if stderrors.Is(err, errStopped) {
			return nil
		}
		var parseErr *errors.ParseError
		if err != nil && p.cfg.Input.SkipInvalid && stderrors.As(err, &parseErr) {
			abandoned = err
			return nil
		}
		return err
	})

	g.Go(func() error {
		return p.consume(pool)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	if abandoned != nil {
		p.stats.Skipped++
		p.logf(1, "Skipping rest of %s: %v\n", name, abandoned)
	}
	return nil
}

// consume re-sequences results by index and handles them in input order.
// It keeps draining the pool after an error so workers never block.
func (p *Processor) consume(pool *worker.Pool) error {
	pending := make(map[int]worker.ProcessResult)
	next := 0
	var firstErr error

	for result := range pool.Results() {
		if firstErr != nil {
			continue
		}
		pending[result.Index] = result
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := p.handleResult(ready); err != nil {
				firstErr = err
				pool.Stop()
				break
			}
		}
	}
	return firstErr
}

// handleResult writes the records of one analyzed position.
func (p *Processor) handleResult(result worker.ProcessResult) error {
	rec := result.Record
	if result.Error != nil {
		if !p.cfg.Input.SkipInvalid {
			return result.Error
		}
		p.stats.Skipped++
		p.logf(1, "Skipping: %v\n", result.Error)
		return nil
	}

	p.stats.Positions++
	if p.detector != nil && p.detector.CheckAndAdd(result.Signature) {
		p.stats.Duplicates++
		p.logf(2, "%s:%d ply %d: duplicate\n", rec.Source, rec.Number, rec.Ply)
		return nil
	}

	for _, vec := range result.Vectors {
		err := p.writer.WriteRecord(&output.Record{
			Source:   rec.Source,
			Number:   rec.Number,
			Ply:      rec.Ply,
			FEN:      rec.FEN,
			Eval:     rec.Eval,
			Features: vec,
		})
		if err != nil {
			return errors.Wrap(err, "writing record")
		}
		p.stats.Records++
	}
	p.logf(2, "%s:%d ply %d: %d record(s)\n", rec.Source, rec.Number, rec.Ply, len(result.Vectors))
	return nil
}

// logf writes to the log when the configured verbosity is at least level.
func (p *Processor) logf(level int, format string, args ...interface{}) {
	if p.cfg.Verbosity >= level {
		fmt.Fprintf(p.cfg.LogFile, format, args...)
	}
}
