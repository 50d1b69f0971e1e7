package cli

import (
	"fmt"

	"github.com/Nojands/FinanzApp/internal/middleware"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite um token de acesso para o usuário informado",
	RunE:  runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	userID, err := requireUser()
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	jwtSvc, err := middleware.NewJwtService(cfg.JWT)
	if err != nil {
		return err
	}

	token, err := jwtSvc.GenerateToken(userID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
