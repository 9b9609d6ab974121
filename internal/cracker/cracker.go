// Package cracker implements the exhaustive-search cryptanalysis engine: it
// tries every candidate mapping of a cipher family against a ciphertext and
// keeps the one whose letter-frequency distribution sits closest to a target
// distribution.
package cracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/RowanDark/Scytale/internal/alphabet"
	"github.com/RowanDark/Scytale/internal/cipher"
	"github.com/RowanDark/Scytale/internal/freq"
)

var (
	// ErrNoCandidates is returned when the candidate list is empty.
	ErrNoCandidates = errors.New("no candidate mappings to search")
	// ErrUnsupported is returned by the reserved general-substitution
	// cracker, which has no implementation yet.
	ErrUnsupported = errors.New("general substitution cracking is not supported")
)

// Result describes the best-scoring candidate of a search.
type Result struct {
	// Index is the candidate's position in generation order.
	Index int
	// Mapping is the winning candidate.
	Mapping cipher.Mapping
	// Plaintext is the ciphertext transformed under the winning candidate.
	Plaintext string
	// Distance is the winning frequency distance; lower is closer to the
	// target.
	Distance float64
}

// Engine runs candidate searches. The zero value is not usable; construct
// one with New.
type Engine struct {
	workers int
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of goroutines scoring candidates. Values below
// one fall back to the number of CPUs.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithLogger attaches a logger for search diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates a search engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// Crack tries every candidate mapping against the ciphertext: each trial is
// the ciphertext re-encrypted under the candidate, scored by the squared
// distance between its frequency distribution over the alphabet and the
// target. The candidate with the minimum distance wins; ties go to the
// earliest candidate in generation order, and parallel scoring cannot change
// that, because results are reduced sequentially by candidate index.
func (e *Engine) Crack(ctx context.Context, ciphertext string, candidates []cipher.Mapping, target freq.Distribution, a alphabet.Alphabet) (Result, error) {
	if len(candidates) == 0 {
		return Result{}, ErrNoCandidates
	}
	if len(target) != a.Len() {
		return Result{}, fmt.Errorf("target distribution does not match alphabet: %w", freq.ErrLengthMismatch)
	}

	distances := make([]float64, len(candidates))

	workers := e.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				trial := candidates[i].Encrypt(ciphertext)
				observed := freq.Text(trial, a)
				// Lengths were validated up front, so the scorer
				// cannot fail here.
				d, _ := freq.SquaredDistance(observed, target)
				distances[i] = d
			}
		}()
	}

feed:
	for i := range candidates {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Stable argmin over generation order.
	best := 0
	for i := 1; i < len(distances); i++ {
		if distances[i] < distances[best] {
			best = i
		}
	}

	result := Result{
		Index:     best,
		Mapping:   candidates[best],
		Plaintext: candidates[best].Encrypt(ciphertext),
		Distance:  distances[best],
	}

	e.logger.Debug("search complete",
		"candidates", len(candidates),
		"workers", workers,
		"best_index", best,
		"distance", result.Distance,
	)

	return result, nil
}
