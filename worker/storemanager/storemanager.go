package storemanager

import (
	"context"
	"time"

	"moneymarket/core"
	"moneymarket/worker"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
)

// Worker store manager worker, prunes the event log
type Worker struct {
	worker.TickWorker
	retention time.Duration
	events    core.IEventStore
	clock     clock.Clock
}

// New new store manager worker
func New(cfg core.Retention, events core.IEventStore, clk clock.Clock) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{Delay: 10 * time.Minute},
		retention:  cfg.Events,
		events:     events,
		clock:      clk,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "storemanager")

	// zero retention keeps events forever
	if w.retention <= 0 {
		return nil
	}

	checkPoint := w.clock.Now().Add(-w.retention)
	n, err := w.events.DeleteByTime(ctx, checkPoint)
	if err != nil {
		log.WithError(err).Errorln("events.DeleteByTime")
		return err
	}

	if n > 0 {
		log.Debugf("%d events before %s deleted", n, checkPoint.Format(time.RFC3339))
	}

	return nil
}
