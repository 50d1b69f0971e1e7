package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"
	appfx "github.com/Nojands/FinanzApp/internal/fx"
	"github.com/Nojands/FinanzApp/internal/logger"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/joho/godotenv"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	flagConfig  string
	flagUser    string
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "finanzctl",
	Short:         "Projeção de fluxo de caixa pessoal",
	Long:          "Projeta saldos mensais e quinzenais, simula compras parceladas e lista os próximos pagamentos.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  erro: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "arquivo TOML de configuração (padrão: $FINANZ_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "ULID do usuário")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "tempo máximo da operação")
}

// services is what the engine commands need from the dependency graph.
type services struct {
	Projection *projection.Service
	Simulation *simulation.Service
	Alerts     *alert.Service
	Dashboard  *dashboard.Service
}

func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	path := flagConfig
	if path == "" {
		path = os.Getenv("FINANZ_CONFIG")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg)
	return cfg, nil
}

func requireUser() (ulid.ULID, error) {
	if flagUser == "" {
		return ulid.ULID{}, fmt.Errorf("informe o usuário com --user")
	}
	id, err := pkg.ParseULID(flagUser)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("--user inválido: %w", err)
	}
	return id, nil
}

// withServices builds the persistence and domain graph, runs fn and tears the
// graph down again.
func withServices(fn func(ctx context.Context, svc *services) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var svc services
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		appfx.CoreModule,
		fx.Populate(&svc.Projection, &svc.Simulation, &svc.Alerts, &svc.Dashboard),
	)
	if err := app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn().Err(err).Msg("Falha ao encerrar dependências")
		}
	}()

	return fn(ctx, &svc)
}
