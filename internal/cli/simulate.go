package cli

import (
	"context"
	"fmt"

	"github.com/Nojands/FinanzApp/internal/domain/simulation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagProduct string
	flagPrice   string
	flagTerm    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simula uma compra parcelada contra a projeção mensal",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagProduct, "product", "", "descrição do produto")
	simulateCmd.Flags().StringVar(&flagPrice, "price", "", "preço total")
	simulateCmd.Flags().IntVar(&flagTerm, "term", 1, "número de parcelas")
	_ = simulateCmd.MarkFlagRequired("product")
	_ = simulateCmd.MarkFlagRequired("price")

	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	price, err := decimal.NewFromString(flagPrice)
	if err != nil {
		return fmt.Errorf("--price inválido: %w", err)
	}

	return withServices(func(ctx context.Context, svc *services) error {
		outcome, err := svc.Simulation.Simulate(ctx, &simulation.Request{
			UserId:  userID,
			Product: flagProduct,
			Price:   price,
			Term:    flagTerm,
		})
		if err != nil {
			return err
		}
		writeSimulation(cmd.OutOrStdout(), outcome)
		return nil
	})
}
