// pkg/task/runner.go
package task

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/dataprep-go/standardize/pkg/detect"
	"github.com/dataprep-go/standardize/pkg/model"
)

// State represents the current state of the runner
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// Outcome carries the result of a background analysis run
type Outcome struct {
	Result *model.AnalysisResult
	Err    error
}

// Runner executes column analysis off the caller's goroutine so the
// quadratic similarity pass never blocks a latency-sensitive path. Starting
// a new run supersedes any run still in flight: the superseded run is
// advised to stop via its context, and its result is discarded rather than
// surfaced. The runner also keeps the last completed result keyed by a
// caller-chosen analysis key (column + dataset version, typically) so hosts
// can skip recomputation.
type Runner struct {
	detector *detect.Detector
	logger   *zap.Logger

	mu         sync.RWMutex
	state      State
	generation int
	cancel     context.CancelFunc
	lastKey    string
	lastResult *model.AnalysisResult
}

// NewRunner creates a new analysis runner
func NewRunner(detector *detect.Detector, logger *zap.Logger) (*Runner, error) {
	if detector == nil {
		return nil, errors.New("detector cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Runner{
		detector: detector,
		logger:   logger,
		state:    StateIdle,
	}, nil
}

// Start launches detection in the background and returns a channel that will
// receive exactly one outcome. Any run still in flight is superseded.
func (r *Runner) Start(ctx context.Context, key, column string, values []string) <-chan Outcome {
	runCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.cancel = cancel
	r.generation++
	generation := r.generation
	r.state = StateRunning
	r.mu.Unlock()

	r.logger.Info("Starting background analysis",
		zap.String("key", key),
		zap.String("column", column),
		zap.Int("values", len(values)))

	out := make(chan Outcome, 1)
	go func() {
		defer cancel()

		result, err := r.detector.Analyze(runCtx, column, values)
		if err == nil && runCtx.Err() != nil {
			// The run finished but was superseded or cancelled in the
			// meantime: its result is stale and must not be surfaced
			result = nil
			err = runCtx.Err()
		}

		r.mu.Lock()
		if generation == r.generation {
			switch {
			case err == nil:
				r.state = StateCompleted
				r.lastKey = key
				r.lastResult = result
			case errors.Is(err, context.Canceled):
				r.state = StateCancelled
			default:
				r.state = StateFailed
			}
		}
		r.mu.Unlock()

		if err != nil {
			r.logger.Info("Background analysis did not complete",
				zap.String("key", key),
				zap.Error(err))
		}

		out <- Outcome{Result: result, Err: err}
	}()

	return out
}

// Cached returns the last completed result if it was produced for the given
// analysis key
func (r *Runner) Cached(key string) (*model.AnalysisResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.lastResult == nil || r.lastKey != key {
		return nil, false
	}
	return r.lastResult, true
}

// Cancel advises the in-flight run, if any, to stop. Cancellation is
// best-effort: it guarantees the stale result is not surfaced or cached, not
// that execution aborts immediately.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// GetState returns the current state of the runner
func (r *Runner) GetState() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}
