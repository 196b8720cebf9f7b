package cmd

import (
	"moneymarket/handler/views"

	"github.com/spf13/cobra"
)

var accountCmd = &cobra.Command{
	Use:     "account <principal>",
	Aliases: []string{"acc"},
	Short:   "show the positions of a user",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lending, _ := provideLendingService(provideDatabase())
		view, err := views.BuildAccount(cmd.Context(), lending, args[0])
		if err != nil {
			cmd.PrintErrln("account:", err)
			return
		}

		balances := view.Balances
		view.Balances = nil
		printView(cmd, view)

		for _, b := range balances {
			cmd.Println()
			printView(cmd, b)
		}
	},
}

func init() {
	rootCmd.AddCommand(accountCmd)
}
