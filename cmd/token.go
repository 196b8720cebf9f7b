package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "token ledger operations",
}

var mintCmd = &cobra.Command{
	Use:   "mint <token> <holder> <amount>",
	Short: "issue raw token units to holder",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			cmd.PrintErrln("invalid amount:", args[2])
			return
		}

		ledger := provideTokenLedger(provideDatabase())
		if err := ledger.Mint(cmd.Context(), args[0], args[1], amount); err != nil {
			cmd.PrintErrln("mint:", err)
			return
		}

		balance, err := ledger.BalanceOf(cmd.Context(), args[0], args[1])
		if err != nil {
			cmd.PrintErrln("balance:", err)
			return
		}

		cmd.Println(args[1], balance)
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance <token> <holder>",
	Short: "show the raw balance of holder",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ledger := provideTokenLedger(provideDatabase())
		balance, err := ledger.BalanceOf(cmd.Context(), args[0], args[1])
		if err != nil {
			cmd.PrintErrln("balance:", err)
			return
		}

		cmd.Println(args[1], balance)
	},
}

func init() {
	tokenCmd.AddCommand(mintCmd, balanceCmd)
	rootCmd.AddCommand(tokenCmd)
}
