package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var flagSweep bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Lista os próximos pagamentos de empréstimos e parcelas",
	RunE:  runAlerts,
}

func init() {
	alertsCmd.Flags().BoolVar(&flagSweep, "sweep", false, "envia os lembretes por e-mail para todos os usuários")
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, _ []string) error {
	if flagSweep {
		return withServices(func(ctx context.Context, svc *services) error {
			sent, err := svc.Alerts.Sweep(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %d lembrete(s) enviado(s)\n", sent)
			return nil
		})
	}

	userID, err := requireUser()
	if err != nil {
		return err
	}

	return withServices(func(ctx context.Context, svc *services) error {
		alerts, err := svc.Alerts.ListAlerts(ctx, userID)
		if err != nil {
			return err
		}
		writeAlerts(cmd.OutOrStdout(), alerts)
		return nil
	})
}
