package worker

import (
	"context"
	"time"
)

// Worker background job run by the worker command
type Worker interface {
	Run(ctx context.Context) error
}

const (
	defaultDelay    = time.Minute
	defaultErrDelay = 5 * time.Second
)

// TickWorker calls onWork every Delay until ctx is done, retrying after
// ErrDelay when a round fails
type TickWorker struct {
	Delay    time.Duration
	ErrDelay time.Duration
}

// StartTick blocks until ctx is done
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	timer := time.NewTimer(time.Millisecond)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			d := w.delay()
			if err := onWork(ctx); err != nil {
				d = w.errDelay()
			}

			timer.Reset(d)
		}
	}
}

func (w *TickWorker) delay() time.Duration {
	if w.Delay > 0 {
		return w.Delay
	}

	return defaultDelay
}

func (w *TickWorker) errDelay() time.Duration {
	if w.ErrDelay > 0 {
		return w.ErrDelay
	}

	return defaultErrDelay
}
