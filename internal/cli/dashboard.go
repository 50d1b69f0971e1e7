package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Resumo do saldo, compromissos do mês e menor saldo projetado",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	return withServices(func(ctx context.Context, svc *services) error {
		d, err := svc.Dashboard.GetDashboard(ctx, userID)
		if err != nil {
			return err
		}
		writeDashboard(cmd.OutOrStdout(), d)
		return nil
	})
}
