package cmd

import (
	"strings"

	"moneymarket/core"
	"moneymarket/handler/views"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var marketCmd = &cobra.Command{
	Use:     "market",
	Aliases: []string{"m"},
	Short:   "manage markets",
}

var addMarketCmd = &cobra.Command{
	Use:     "add <asset> <token> <decimals>",
	Aliases: []string{"a"},
	Short:   "register a market",
	Args:    cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		decimals, err := cast.ToInt32E(args[2])
		if err != nil {
			cmd.PrintErrln("invalid decimals:", args[2])
			return
		}

		market := &core.Market{
			AssetID:      args[0],
			TokenAddress: args[1],
			Decimals:     decimals,
		}
		market.Name, _ = cmd.Flags().GetString("name")
		market.Symbol, _ = cmd.Flags().GetString("symbol")

		reserve, err := reserveFromFlags(cmd)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		model, err := modelFromFlags(cmd)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		lending, _ := provideLendingService(provideDatabase())
		if err := lending.AddMarket(asAdmin(cmd.Context()), market, reserve, model); err != nil {
			cmd.PrintErrln("add market:", err)
			return
		}

		cmd.Println("market added:", market.AssetID)
	},
}

var editMarketCmd = &cobra.Command{
	Use:   "edit <asset> <name> <symbol>",
	Short: "edit the display name and symbol of a market",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		lending, _ := provideLendingService(provideDatabase())
		if err := lending.EditTokenInfo(asAdmin(cmd.Context()), args[0], args[1], args[2]); err != nil {
			cmd.PrintErrln("edit market:", err)
		}
	},
}

var reserveCmd = &cobra.Command{
	Use:   "reserve <asset>",
	Short: "update loan to value ratio and liquidation threshold",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		reserve, err := reserveFromFlags(cmd)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}
		reserve.AssetID = args[0]

		lending, _ := provideLendingService(provideDatabase())
		if err := lending.SetReserveConfiguration(asAdmin(cmd.Context()), reserve); err != nil {
			cmd.PrintErrln("set reserve:", err)
		}
	},
}

var modelCmd = &cobra.Command{
	Use:   "model <asset>",
	Short: "update the interest rate model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		model, err := modelFromFlags(cmd)
		if err != nil {
			cmd.PrintErrln(err)
			return
		}
		model.AssetID = args[0]

		lending, _ := provideLendingService(provideDatabase())
		if err := lending.SetInterestRateModel(asAdmin(cmd.Context()), model); err != nil {
			cmd.PrintErrln("set model:", err)
		}
	},
}

var showMarketCmd = &cobra.Command{
	Use:   "show <asset>",
	Short: "show a market",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lending, _ := provideLendingService(provideDatabase())
		view, err := views.BuildMarket(cmd.Context(), lending, args[0])
		if err != nil {
			cmd.PrintErrln("show market:", err)
			return
		}

		printView(cmd, view)
	},
}

var listMarketCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "list markets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		lending, _ := provideLendingService(provideDatabase())

		assets, err := lending.SupportedAssets(ctx)
		if err != nil {
			cmd.PrintErrln("list markets:", err)
			return
		}

		for _, assetID := range assets {
			m, err := lending.GetMarket(ctx, assetID)
			if err != nil {
				cmd.PrintErrln(assetID, err)
				continue
			}

			cmd.Printf("%s\t%s\t%s\t%d\n", m.AssetID, m.Symbol, m.TokenAddress, m.Decimals)
		}
	},
}

// printView one line per exported field, named by its json tag
func printView(cmd *cobra.Command, v interface{}) {
	for _, f := range structs.Fields(v) {
		if !f.IsExported() {
			continue
		}

		name := strings.Split(f.Tag(structs.DefaultTagName), ",")[0]
		if name == "" || name == "-" {
			name = f.Name()
		}

		cmd.Printf("%-24s %v\n", name, f.Value())
	}
}

func decimalFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	s, _ := cmd.Flags().GetString(name)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}

	return v, nil
}

// ratios are percents, rates yearly percents, both scaled on the way in
func reserveFromFlags(cmd *cobra.Command) (*core.ReserveConfig, error) {
	ltv, err := decimalFlag(cmd, "ltv")
	if err != nil {
		return nil, err
	}

	threshold, err := decimalFlag(cmd, "threshold")
	if err != nil {
		return nil, err
	}

	return &core.ReserveConfig{
		LoanToValueRatio:     ltv.Shift(core.PercentDecimals).Truncate(0),
		LiquidationThreshold: threshold.Shift(core.PercentDecimals).Truncate(0),
	}, nil
}

func modelFromFlags(cmd *cobra.Command) (*core.InterestRateModel, error) {
	var rates [4]decimal.Decimal
	for idx, name := range []string{"min-rate", "safe-max-rate", "growth-factor", "optimal"} {
		v, err := decimalFlag(cmd, name)
		if err != nil {
			return nil, err
		}

		rates[idx] = v
	}

	return &core.InterestRateModel{
		MinRate:                 rates[0].Shift(core.InterestRateDecimals).Truncate(0),
		SafeBorrowMaxRate:       rates[1].Shift(core.InterestRateDecimals).Truncate(0),
		RateGrowthFactor:        rates[2].Shift(core.InterestRateDecimals).Truncate(0),
		OptimalUtilizationRatio: rates[3].Shift(core.PercentDecimals).Truncate(0),
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{addMarketCmd, reserveCmd} {
		c.Flags().String("ltv", "75", "loan to value ratio, percent")
		c.Flags().String("threshold", "80", "liquidation threshold, percent")
	}

	for _, c := range []*cobra.Command{addMarketCmd, modelCmd} {
		c.Flags().String("min-rate", "0", "yearly rate at zero utilization, percent")
		c.Flags().String("safe-max-rate", "20", "yearly rate at the optimal utilization, percent")
		c.Flags().String("growth-factor", "100", "rate growth above the optimal utilization, percent")
		c.Flags().String("optimal", "80", "optimal utilization, percent")
	}

	addMarketCmd.Flags().String("name", "", "token name")
	addMarketCmd.Flags().String("symbol", "", "token symbol")

	marketCmd.AddCommand(addMarketCmd, editMarketCmd, reserveCmd, modelCmd, showMarketCmd, listMarketCmd)
	rootCmd.AddCommand(marketCmd)
}
