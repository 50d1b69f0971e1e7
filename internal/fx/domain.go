package fx

import (
	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	"github.com/Nojands/FinanzApp/internal/domain/report"
	"github.com/Nojands/FinanzApp/internal/domain/settings"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"
	"github.com/Nojands/FinanzApp/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newProjectionService,
		newSimulationService,
		newSettingsService,
		newLedgerService,
		newRecurringService,
		newLoanService,
		newCreditCardService,
		newInstallmentService,
		newAlertNotifier,
		newAlertService,
		newDashboardService,
		newReportService,
	),
)

func newProjectionService(cfg *config.Config, snapshots *infrastructure.SnapshotRepository) *projection.Service {
	return &projection.Service{
		Snapshots: snapshots,
		Limits: projection.Limits{
			DefaultMonths:      cfg.Projection.DefaultMonths,
			MaxMonths:          cfg.Projection.MaxMonths,
			MinBiweeklyPeriods: cfg.Projection.MinBiweeklyPeriods,
			MaxBiweeklyPeriods: cfg.Projection.MaxBiweeklyPeriods,
		},
	}
}

func newSimulationService(
	cfg *config.Config,
	snapshots *infrastructure.SnapshotRepository,
	records *infrastructure.SimulationRepository,
) *simulation.Service {
	return &simulation.Service{
		Snapshots: snapshots,
		Records:   records,
		MinMonths: cfg.Projection.MinSimulationTerm,
		MaxTerm:   cfg.Projection.MaxSimulationTerm,
	}
}

func newSettingsService(repo *infrastructure.SettingsRepository, paydays calendar.Paydays) *settings.Service {
	return &settings.Service{Repository: repo, DefaultPaydays: paydays}
}

func newLedgerService(repo *infrastructure.LedgerRepository) *ledger.Service {
	return &ledger.Service{Repository: repo}
}

func newRecurringService(repo *infrastructure.RecurringRepository) *recurring.Service {
	return &recurring.Service{Repository: repo}
}

func newLoanService(repo *infrastructure.LoanRepository) *loan.Service {
	return &loan.Service{Repository: repo}
}

func newCreditCardService(repo *infrastructure.CreditCardRepository) *creditcard.Service {
	return &creditcard.Service{Repository: repo}
}

func newInstallmentService(repo *infrastructure.InstallmentRepository) *installment.Service {
	return &installment.Service{Repository: repo}
}

func newAlertNotifier(cfg *config.Config) alert.Notifier {
	return alert.NewEmailNotifier(cfg)
}

func newAlertService(
	snapshots *infrastructure.SnapshotRepository,
	settingsRepo *infrastructure.SettingsRepository,
	notifier alert.Notifier,
) *alert.Service {
	return &alert.Service{
		Snapshots: snapshots,
		Settings:  settingsRepo,
		Notifier:  notifier,
	}
}

func newDashboardService(
	repo *infrastructure.DashboardRepository,
	snapshots *infrastructure.SnapshotRepository,
	projections *projection.Service,
) *dashboard.Service {
	return &dashboard.Service{
		Repository:  repo,
		Snapshots:   snapshots,
		Projections: projections,
	}
}

func newReportService(repo *infrastructure.ReportRepository, snapshots *infrastructure.SnapshotRepository) *report.Service {
	return &report.Service{Repository: repo, Snapshots: snapshots}
}
