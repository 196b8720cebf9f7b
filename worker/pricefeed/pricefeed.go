package pricefeed

import (
	"context"
	"fmt"
	"strings"

	"moneymarket/core"
	"moneymarket/pkg/id"
	"moneymarket/pkg/resthttp"
	"moneymarket/service/auth"
	"moneymarket/worker"

	"github.com/facebookgo/clock"
	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/property"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	checkpointKey = "price_feed_checkpoint"
	concurrency   = 4
)

// Checkpoints subset of property.Store the worker needs
type Checkpoints interface {
	Get(ctx context.Context, key string) (property.Value, error)
	Save(ctx context.Context, key string, value interface{}) error
}

type (
	// Worker pulls usd prices of the mapped assets and pushes them to the markets
	Worker struct {
		worker.TickWorker
		cfg        core.PriceFeed
		admin      string
		lending    core.ILendingService
		properties Checkpoints
		clock      clock.Clock
	}

	ticker struct {
		Price decimal.Decimal `json:"price"`
	}
)

// New new price feed worker, it acts as admin
func New(
	cfg core.PriceFeed,
	admin string,
	lending core.ILendingService,
	properties Checkpoints,
	clk clock.Clock,
) *Worker {
	return &Worker{
		TickWorker: worker.TickWorker{Delay: cfg.Interval},
		cfg:        cfg,
		admin:      admin,
		lending:    lending,
		properties: properties,
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
	log := logger.FromContext(ctx).WithField("worker", "pricefeed")

	if len(w.cfg.Assets) == 0 {
		return nil
	}

	v, err := w.properties.Get(ctx, checkpointKey)
	if err != nil {
		log.WithError(err).Errorln("property.Get", checkpointKey)
		return err
	}

	now := w.clock.Now()
	if last := v.Time(); w.cfg.Interval > 0 && now.Sub(last) < w.cfg.Interval {
		return nil
	}

	prices := make([]decimal.Decimal, len(w.cfg.Assets))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for idx, item := range w.cfg.Assets {
		idx, item := idx, item
		g.Go(func() error {
			price, err := w.pullPrice(ctx, item.Symbol)
			if err != nil {
				log.WithError(err).Errorln("pull price", item.Symbol)
				return nil
			}

			prices[idx] = price
			return nil
		})
	}
	_ = g.Wait()

	ctx = auth.WithPrincipal(ctx, w.admin)

	var failed int
	for idx, item := range w.cfg.Assets {
		price := prices[idx]
		if !price.IsPositive() {
			failed++
			continue
		}

		if err := w.lending.UpdatePrice(ctx, item.AssetID, price); err != nil {
			log.WithError(err).Errorln("UpdatePrice", item.AssetID)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d prices not updated", failed, len(w.cfg.Assets))
	}

	if err := w.properties.Save(ctx, checkpointKey, now); err != nil {
		log.WithError(err).Errorln("property.Save", checkpointKey)
		return err
	}

	return nil
}

// pullPrice usd price of symbol scaled to USDDecimals
func (w *Worker) pullPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	uri := strings.TrimSuffix(w.cfg.Endpoint, "/") + "/" + symbol

	var t ticker
	request := resthttp.WithRequestID(ctx, id.GenTraceID())
	if _, err := resthttp.Execute(request, "GET", uri, nil, &t); err != nil {
		return decimal.Zero, err
	}

	return t.Price.Shift(core.USDDecimals).Truncate(0), nil
}
