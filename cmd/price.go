package cmd

import (
	"moneymarket/core"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price <asset> <usd>",
	Short: "set the usd price of a market",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		usd, err := decimal.NewFromString(args[1])
		if err != nil {
			cmd.PrintErrln("invalid price:", args[1])
			return
		}

		price := usd.Shift(core.USDDecimals).Truncate(0)

		lending, _ := provideLendingService(provideDatabase())
		if err := lending.UpdatePrice(asAdmin(cmd.Context()), args[0], price); err != nil {
			cmd.PrintErrln("update price:", err)
			return
		}

		cmd.Println(args[0], price)
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
