package evolution

import (
	"context"

	"github.com/katalvlaran/evocover/statespace"
)

// Handle controls a background run started with Start.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	res    *Result
	err    error
}

// Start validates the inputs eagerly, then executes Run on a dedicated
// goroutine so the caller (typically a presentation layer) stays
// responsive. Invalid input is reported here and no goroutine is spawned.
//
// The returned Handle is safe for concurrent use.
func Start(cfg Config, sp *statespace.Graph, obs Observer) (*Handle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sp == nil || sp.NodeCount() == 0 {
		return nil, ErrGraphUnavailable
	}

	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		defer cancel()
		h.res, h.err = Run(ctx, cfg, sp, obs)
	}()

	return h, nil
}

// Cancel requests cooperative cancellation. The in-flight generation
// always completes; the run then terminates as INTERRUPTED. Idempotent.
func (h *Handle) Cancel() { h.cancel() }

// Done returns a channel closed when the run has terminated.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the run terminates and returns its result. A
// cancelled run returns a Result with Interrupted set and a nil error.
func (h *Handle) Wait() (*Result, error) {
	<-h.done
	return h.res, h.err
}
