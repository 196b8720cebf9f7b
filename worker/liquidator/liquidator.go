package liquidator

import (
	"context"
	"errors"

	"moneymarket/core"
	"moneymarket/service/auth"
	"moneymarket/worker"

	"github.com/fox-one/pkg/logger"
)

// Worker liquidates borrowers whose utilization reached their liquidation threshold
type Worker struct {
	worker.TickWorker
	principal string
	lending   core.ILendingService
}

// New new liquidator worker acting as cfg.Principal
func New(cfg core.Liquidator, lending core.ILendingService) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{Delay: cfg.Interval},
		principal:  cfg.Principal,
		lending:    lending,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "liquidator")

	borrowers, err := w.lending.GetBorrowers(ctx)
	if err != nil {
		log.WithError(err).Errorln("GetBorrowers")
		return err
	}

	ctx = auth.WithPrincipal(ctx, w.principal)
	for _, user := range borrowers {
		if user == w.principal {
			continue
		}

		ok, err := w.liquidatable(ctx, user)
		if err != nil {
			log.WithError(err).Errorln("check", user)
			continue
		}

		if !ok {
			continue
		}

		if err := w.lending.Liquidate(ctx, user, w.principal); err != nil {
			log.WithError(err).Infoln("Liquidate", user)
			continue
		}

		log.Infoln("liquidated", user)
	}

	return nil
}

func (w *Worker) liquidatable(ctx context.Context, user string) (bool, error) {
	threshold, err := w.lending.GetUserLiquidationThreshold(ctx, user)
	if errors.Is(err, core.ErrNoCollateral) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	utilization, err := w.lending.GetUserUtilizationRate(ctx, user)
	if err != nil {
		return false, err
	}

	return utilization.GreaterThanOrEqual(threshold), nil
}
