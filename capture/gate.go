package capture

import (
	"context"
	"image"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/harsh-simform/snapflow-desktop-sub001/log"
)

// Result is an asynchronous capture outcome. Generation identifies
// the annotation session the capture was requested for: a result
// whose generation no longer matches the gate's is stale (the
// session was torn down while the native call ran) and must be
// discarded, never applied to a newer scene.
type Result struct {
	Image      *image.RGBA
	Err        error
	Generation uint64
}

// Gate serializes the native capture boundary: at most one request is
// outstanding at a time, matching the single in-flight contract of
// the capture collaborator.
type Gate struct {
	backend Capturer
	sem     *semaphore.Weighted
	gen     atomic.Uint64
}

func NewGate(backend Capturer) *Gate {
	return &Gate{
		backend: backend,
		sem:     semaphore.NewWeighted(1),
	}
}

// Generation returns the current session generation.
func (g *Gate) Generation() uint64 { return g.gen.Load() }

// Invalidate marks any in-flight request as belonging to a dead
// session. Called when the annotation session is torn down before an
// asynchronous result returns.
func (g *Gate) Invalidate() { g.gen.Add(1) }

// Request runs one capture through fn on a background goroutine and
// delivers exactly one Result on the returned channel. A second
// request while one is in flight fails immediately with ErrBusy and
// issues no native call.
func (g *Gate) Request(ctx context.Context, fn func(Capturer) (*image.RGBA, error)) (<-chan Result, error) {
	if !g.sem.TryAcquire(1) {
		return nil, ErrBusy
	}

	generation := g.gen.Load()
	ch := make(chan Result, 1)

	go func() {
		defer g.sem.Release(1)

		img, err := fn(g.backend)
		if ctx.Err() != nil {
			err = ctx.Err()
			img = nil
		}
		if err != nil {
			log.Trace.Printf("capture request failed: %v", err)
		}
		ch <- Result{Image: img, Err: err, Generation: generation}
	}()

	return ch, nil
}

// Do runs a synchronous boundary operation, typically an export,
// under the same weight-1 gate captures use. A second capture or
// export while one is in flight returns ErrBusy without running fn.
func (g *Gate) Do(fn func() error) error {
	if !g.sem.TryAcquire(1) {
		return ErrBusy
	}
	defer g.sem.Release(1)
	return fn()
}

// Stale reports whether a result belongs to a torn-down session.
func (g *Gate) Stale(r Result) bool {
	return r.Generation != g.gen.Load()
}
