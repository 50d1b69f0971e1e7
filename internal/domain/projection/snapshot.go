package projection

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Snapshot is everything one projection run reads, loaded up front from a
// single consistent read. Projections never modify it.
type Snapshot struct {
	UserID         ulid.ULID
	InitialBalance decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Paydays        calendar.Paydays

	Incomes   []*recurring.RecurringIncome
	Loans     []*loan.Loan
	Cards     []*creditcard.CreditCard
	Purchases []*installment.Purchase
}

// CurrentBalance is the actual balance today: the initial balance plus all
// recorded income minus all recorded expenses.
func (s *Snapshot) CurrentBalance() decimal.Decimal {
	return s.InitialBalance.Add(s.TotalIncome).Sub(s.TotalExpenses)
}

type SnapshotReader interface {
	LoadSnapshot(ctx context.Context, userID ulid.ULID) (*Snapshot, error)
}
