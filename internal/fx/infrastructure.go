package fx

import (
	"context"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/infrastructure"
	"github.com/Nojands/FinanzApp/internal/logger"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newDefaultPaydays,
		newSettingsRepository,
		newLedgerRepository,
		newRecurringRepository,
		newLoanRepository,
		newCreditCardRepository,
		newInstallmentRepository,
		newSimulationRepository,
		newSnapshotRepository,
		newDashboardRepository,
		newReportRepository,
	),
)

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*gorm.DB, error) {
	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Fechando conexões com o banco de dados")
			return infrastructure.Close(db)
		},
	})
	return db, nil
}

// newDefaultPaydays is validated by config.Validate, so the error path only
// guards against a hand-built config.
func newDefaultPaydays(cfg *config.Config) (calendar.Paydays, error) {
	return calendar.NewPaydays(cfg.Projection.DefaultPayday1, cfg.Projection.DefaultPayday2)
}

func newSettingsRepository(db *gorm.DB) *infrastructure.SettingsRepository {
	return &infrastructure.SettingsRepository{DB: db}
}

func newLedgerRepository(db *gorm.DB) *infrastructure.LedgerRepository {
	return &infrastructure.LedgerRepository{DB: db}
}

func newRecurringRepository(db *gorm.DB) *infrastructure.RecurringRepository {
	return &infrastructure.RecurringRepository{DB: db}
}

func newLoanRepository(db *gorm.DB) *infrastructure.LoanRepository {
	return &infrastructure.LoanRepository{DB: db}
}

func newCreditCardRepository(db *gorm.DB) *infrastructure.CreditCardRepository {
	return &infrastructure.CreditCardRepository{DB: db}
}

func newInstallmentRepository(db *gorm.DB) *infrastructure.InstallmentRepository {
	return &infrastructure.InstallmentRepository{DB: db}
}

func newSimulationRepository(db *gorm.DB) *infrastructure.SimulationRepository {
	return &infrastructure.SimulationRepository{DB: db}
}

func newSnapshotRepository(db *gorm.DB, paydays calendar.Paydays) *infrastructure.SnapshotRepository {
	return &infrastructure.SnapshotRepository{DB: db, DefaultPaydays: paydays}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return &infrastructure.DashboardRepository{DB: db}
}

func newReportRepository(db *gorm.DB) *infrastructure.ReportRepository {
	return &infrastructure.ReportRepository{DB: db}
}
