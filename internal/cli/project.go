package cli

import (
	"context"
	"fmt"

	"github.com/Nojands/FinanzApp/internal/domain/projection"

	"github.com/spf13/cobra"
)

var (
	flagMonths  int
	flagPeriods int
	flagPayday1 int
	flagPayday2 int
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Projeta o saldo futuro",
}

var projectMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Projeção mês a mês",
	RunE:  runProjectMonthly,
}

var projectBiweeklyCmd = &cobra.Command{
	Use:   "biweekly",
	Short: "Projeção por quinzena",
	RunE:  runProjectBiweekly,
}

func init() {
	projectMonthlyCmd.Flags().IntVarP(&flagMonths, "months", "m", 0, "quantidade de meses (omitido usa o padrão)")

	projectBiweeklyCmd.Flags().IntVarP(&flagPeriods, "periods", "p", 0, "quantidade de quinzenas (0 calcula automaticamente)")
	projectBiweeklyCmd.Flags().IntVar(&flagPayday1, "payday1", 0, "primeiro dia de pagamento")
	projectBiweeklyCmd.Flags().IntVar(&flagPayday2, "payday2", 0, "segundo dia de pagamento")

	projectCmd.AddCommand(projectMonthlyCmd, projectBiweeklyCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectMonthly(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	var months *int
	if cmd.Flags().Changed("months") {
		months = &flagMonths
	}

	return withServices(func(ctx context.Context, svc *services) error {
		p, err := svc.Projection.ProjectMonthly(ctx, userID, months)
		if err != nil {
			return err
		}
		writeProjection(cmd.OutOrStdout(), "PROJEÇÃO MENSAL", p)
		return nil
	})
}

func runProjectBiweekly(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	req := projection.BiweeklyRequest{Periods: flagPeriods}
	switch {
	case cmd.Flags().Changed("payday1") && cmd.Flags().Changed("payday2"):
		req.Payday1 = &flagPayday1
		req.Payday2 = &flagPayday2
	case cmd.Flags().Changed("payday1") || cmd.Flags().Changed("payday2"):
		return fmt.Errorf("informe --payday1 e --payday2 juntos")
	}

	return withServices(func(ctx context.Context, svc *services) error {
		p, err := svc.Projection.ProjectBiweekly(ctx, userID, req)
		if err != nil {
			return err
		}
		writeProjection(cmd.OutOrStdout(), "PROJEÇÃO QUINZENAL", p)
		return nil
	})
}
