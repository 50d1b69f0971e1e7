package cli

import (
	"context"
	"fmt"

	"github.com/Nojands/FinanzApp/internal/infrastructure"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica as migrações pendentes do banco de dados",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := infrastructure.Open(cfg)
	if err != nil {
		return err
	}
	defer infrastructure.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	applied, err := infrastructure.Migrate(ctx, db)
	if err != nil {
		return err
	}
	if applied == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "  Banco de dados já está atualizado")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %d migração(ões) aplicada(s)\n", applied)
	return nil
}
