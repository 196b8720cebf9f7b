package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int32
	w := &TickWorker{Delay: time.Hour, ErrDelay: time.Millisecond}

	err := w.StartTick(ctx, func(ctx context.Context) error {
		if atomic.AddInt32(&calls, 1) == 3 {
			cancel()
			return nil
		}

		return errors.New("round failed")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDefaultDelays(t *testing.T) {
	var w TickWorker
	assert.Equal(t, defaultDelay, w.delay())
	assert.Equal(t, defaultErrDelay, w.errDelay())
}
