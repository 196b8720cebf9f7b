package cmd

import (
	"moneymarket/worker"
	"moneymarket/worker/liquidator"
	"moneymarket/worker/pricefeed"
	"moneymarket/worker/storemanager"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "money market job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := signal.WithContext(cmd.Context())
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		lending, events := provideLendingService(database)
		clk := provideClock()

		workers := []worker.Worker{
			liquidator.New(cfg.Liquidator, lending),
			storemanager.New(cfg.Retention, events, clk),
		}

		// the price feed keeps its checkpoint in the property table
		if database != nil && len(cfg.PriceFeed.Assets) > 0 {
			workers = append(workers, pricefeed.New(cfg.PriceFeed, cfg.App.Admin, lending, providePropertyStore(database), clk))
		} else {
			log.Infoln("price feed disabled")
		}

		g, ctx := errgroup.WithContext(ctx)
		for _, w := range workers {
			w := w
			g.Go(func() error {
				return w.Run(ctx)
			})
		}

		if err := g.Wait(); err != nil {
			log.WithError(err).Infoln("worker stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
