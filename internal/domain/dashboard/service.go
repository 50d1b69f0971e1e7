package dashboard

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/obligation"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const (
	// ProjectionPeriods is a year of biweekly periods.
	ProjectionPeriods  = 24
	RecentEntriesLimit = 10
)

// Projector is the part of the projection service the dashboard needs.
type Projector interface {
	ProjectBiweekly(ctx context.Context, userID ulid.ULID, req projection.BiweeklyRequest) (*projection.Projection, error)
}

type Service struct {
	Repository  Repository
	Snapshots   projection.SnapshotReader
	Projections Projector
	Now         func() time.Time
}

type Dashboard struct {
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`

	// Month labels the calendar month the commitments and income refer to.
	Month              string               `json:"month"`
	MonthlyCommitments decimal.Decimal      `json:"monthlyCommitments"`
	Commitments        obligation.Breakdown `json:"commitments"`
	RecurringIncome    decimal.Decimal      `json:"recurringIncome"`

	// MinProjectedBalance is the lowest balance of the next year of biweekly
	// periods, or the current balance when nothing is projected.
	MinProjectedBalance decimal.Decimal    `json:"minProjectedBalance"`
	LowestPeriod        *projection.Period `json:"lowestPeriod,omitempty"`

	RecentEntries []*ledger.Entry `json:"recentEntries"`
}

func (s *Service) GetDashboard(ctx context.Context, userID ulid.ULID) (*Dashboard, error) {
	snapshot, err := s.Snapshots.LoadSnapshot(ctx, userID)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	month := calendar.Monthly(s.now(), 1)[0]
	commitments := obligation.NewResolver(snapshot.Loans, snapshot.Cards, snapshot.Purchases).Monthly(month)

	projected, err := s.Projections.ProjectBiweekly(ctx, userID, projection.BiweeklyRequest{Periods: ProjectionPeriods})
	if err != nil {
		return nil, err
	}

	entries, err := s.Repository.RecentEntries(ctx, userID, RecentEntriesLimit)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	d := &Dashboard{
		CurrentBalance:      snapshot.CurrentBalance(),
		InitialBalance:      snapshot.InitialBalance,
		TotalIncome:         snapshot.TotalIncome,
		TotalExpenses:       snapshot.TotalExpenses,
		Month:               month.Label,
		MonthlyCommitments:  commitments.Total(),
		Commitments:         commitments,
		RecurringIncome:     recurring.MonthlyIncome(snapshot.Incomes, month),
		MinProjectedBalance: snapshot.CurrentBalance(),
		RecentEntries:       entries,
	}
	if lowest := LowestPeriod(projected); lowest != nil {
		d.MinProjectedBalance = lowest.Balance
		d.LowestPeriod = lowest
	}
	return d, nil
}

// LowestPeriod returns the period with the smallest closing balance, the
// in-progress one included. Ties keep the earliest period.
func LowestPeriod(p *projection.Projection) *projection.Period {
	if p == nil {
		return nil
	}

	candidates := p.Periods
	if p.InProgress != nil {
		candidates = append([]projection.Period{*p.InProgress}, p.Periods...)
	}

	var lowest *projection.Period
	for i := range candidates {
		if lowest == nil || candidates[i].Balance.LessThan(lowest.Balance) {
			lowest = &candidates[i]
		}
	}
	return lowest
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
