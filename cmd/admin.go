package cmd

import (
	"context"

	"moneymarket/service/auth"

	"github.com/spf13/cobra"
)

// asAdmin ctx acting as the configured admin
func asAdmin(ctx context.Context) context.Context {
	return auth.WithPrincipal(ctx, cfg.App.Admin)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize the money market with the configured admin",
	Run: func(cmd *cobra.Command, args []string) {
		lending, _ := provideLendingService(provideDatabase())
		if err := lending.Initialize(asAdmin(cmd.Context()), cfg.App.Admin); err != nil {
			cmd.PrintErrln("initialize:", err)
			return
		}

		cmd.Println("admin:", cfg.App.Admin)
	},
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "admin operations",
}

var setAdminCmd = &cobra.Command{
	Use:   "set <principal>",
	Short: "hand the admin role to principal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lending, _ := provideLendingService(provideDatabase())
		if err := lending.SetAdmin(asAdmin(cmd.Context()), args[0]); err != nil {
			cmd.PrintErrln("set admin:", err)
			return
		}

		cmd.Println("admin:", args[0])
	},
}

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "pause deposits, borrows and liquidations",
	Run: func(cmd *cobra.Command, args []string) {
		setPaused(cmd, true)
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "resume deposits, borrows and liquidations",
	Run: func(cmd *cobra.Command, args []string) {
		setPaused(cmd, false)
	},
}

func setPaused(cmd *cobra.Command, paused bool) {
	lending, _ := provideLendingService(provideDatabase())
	if err := lending.SetPaused(asAdmin(cmd.Context()), paused); err != nil {
		cmd.PrintErrln("set paused:", err)
		return
	}

	cmd.Println("paused:", paused)
}

func init() {
	rootCmd.AddCommand(initCmd)
	adminCmd.AddCommand(setAdminCmd, pauseCmd, unpauseCmd)
	rootCmd.AddCommand(adminCmd)
}
