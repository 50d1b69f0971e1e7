package fx

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/domain/alert"
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
	"github.com/Nojands/FinanzApp/internal/routes"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

type handlerParams struct {
	fx.In

	DB          *gorm.DB
	Projection  *projection.Service
	Simulation  *simulation.Service
	Recurring   *recurring.Service
	Loan        *loan.Service
	CreditCard  *creditcard.Service
	Installment *installment.Service
	Settings    *settings.Service
	Ledger      *ledger.Service
	Alert       *alert.Service
	Dashboard   *dashboard.Service
	Report      *report.Service
}

func newHandler(p handlerParams) *routes.Handler {
	return &routes.Handler{
		ProjectionService:  p.Projection,
		SimulationService:  p.Simulation,
		RecurringService:   p.Recurring,
		LoanService:        p.Loan,
		CreditCardService:  p.CreditCard,
		InstallmentService: p.Installment,
		SettingsService:    p.Settings,
		LedgerService:      p.Ledger,
		AlertService:       p.Alert,
		DashboardService:   p.Dashboard,
		ReportService:      p.Report,
		Ping: func(ctx context.Context) error {
			return infrastructure.Ping(ctx, p.DB)
		},
	}
}
