package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var now = time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeSnapshotReader struct {
	snapshot *projection.Snapshot
	err      error
}

func (f *fakeSnapshotReader) LoadSnapshot(_ context.Context, userID ulid.ULID) (*projection.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := *f.snapshot
	s.UserID = userID
	return &s, nil
}

type fakeRepository struct {
	entries []*ledger.Entry
	err     error
	limit   int
}

func (f *fakeRepository) RecentEntries(_ context.Context, _ ulid.ULID, limit int) ([]*ledger.Entry, error) {
	f.limit = limit
	return f.entries, f.err
}

// overspending earns 3000 on day 5 and pays 4000 on day 10, so the balance
// keeps falling from 10000.
func overspending() *projection.Snapshot {
	return &projection.Snapshot{
		InitialBalance: decimal.NewFromInt(9000),
		TotalIncome:    decimal.NewFromInt(1500),
		TotalExpenses:  decimal.NewFromInt(500),
		Paydays:        calendar.DefaultPaydays(),
		Incomes: []*recurring.RecurringIncome{{
			Name:       "salário",
			Amount:     decimal.NewFromInt(3000),
			PaymentDay: 5,
			StartDate:  date(2024, time.January, 1),
			EndDate:    calendar.OpenEnded,
			Frequency:  recurring.FrequencyMonthly,
			IsActive:   true,
		}},
		Loans: []*loan.Loan{{
			Name:       "financiamento",
			Amount:     decimal.NewFromInt(4000),
			PaymentDay: 10,
			StartDate:  date(2024, time.January, 1),
			EndDate:    calendar.OpenEnded,
			IsActive:   true,
		}},
	}
}

func newProjectionService(reader projection.SnapshotReader) *projection.Service {
	return &projection.Service{
		Snapshots: reader,
		Limits: projection.Limits{
			DefaultMonths:      6,
			MaxMonths:          120,
			MinBiweeklyPeriods: 12,
			MaxBiweeklyPeriods: 240,
		},
		Now: func() time.Time { return now },
	}
}

func TestGetDashboard(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	reader := &fakeSnapshotReader{snapshot: overspending()}
	projections := newProjectionService(reader)
	repo := &fakeRepository{entries: []*ledger.Entry{{
		Id:     pkg.GenerateULIDObject(),
		UserId: userID,
		Kind:   ledger.KindExpense,
		Amount: decimal.NewFromInt(500),
		Date:   date(2025, time.January, 18),
	}}}

	svc := &dashboard.Service{
		Repository:  repo,
		Snapshots:   reader,
		Projections: projections,
		Now:         func() time.Time { return now },
	}

	got, err := svc.GetDashboard(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !got.CurrentBalance.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected current balance 10000, got %s", got.CurrentBalance)
	}
	if got.Month != "Janeiro 2025" {
		t.Fatalf("expected commitments for Janeiro 2025, got %q", got.Month)
	}
	if !got.MonthlyCommitments.Equal(decimal.NewFromInt(4000)) || !got.Commitments.Loans.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("expected 4000 of loan commitments, got %s (%+v)", got.MonthlyCommitments, got.Commitments)
	}
	if !got.RecurringIncome.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("expected recurring income 3000, got %s", got.RecurringIncome)
	}
	if len(got.RecentEntries) != 1 || repo.limit != dashboard.RecentEntriesLimit {
		t.Fatalf("expected the latest entries with limit %d, got %d entries and limit %d",
			dashboard.RecentEntriesLimit, len(got.RecentEntries), repo.limit)
	}

	projected, err := projections.ProjectBiweekly(context.Background(), userID, projection.BiweeklyRequest{Periods: dashboard.ProjectionPeriods})
	if err != nil {
		t.Fatalf("unexpected projection error: %v", err)
	}
	want := projected.InProgress.Balance
	for _, p := range projected.Periods {
		want = decimal.Min(want, p.Balance)
	}
	if !got.MinProjectedBalance.Equal(want) {
		t.Fatalf("expected minimum projected balance %s, got %s", want, got.MinProjectedBalance)
	}
	if got.LowestPeriod == nil || !got.LowestPeriod.Balance.Equal(want) {
		t.Fatalf("expected the lowest period to be reported, got %+v", got.LowestPeriod)
	}
	if !got.MinProjectedBalance.LessThan(got.CurrentBalance) {
		t.Fatalf("a falling balance should project below %s, got %s", got.CurrentBalance, got.MinProjectedBalance)
	}
}

func TestGetDashboardErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reader   *fakeSnapshotReader
		repo     *fakeRepository
		wantCode string
	}{
		{
			name:     "snapshot failure",
			reader:   &fakeSnapshotReader{err: errors.New("connection reset")},
			repo:     &fakeRepository{},
			wantCode: "DATABASE_ERROR",
		},
		{
			name:     "entries failure",
			reader:   &fakeSnapshotReader{snapshot: overspending()},
			repo:     &fakeRepository{err: errors.New("connection reset")},
			wantCode: "DATABASE_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &dashboard.Service{
				Repository:  tt.repo,
				Snapshots:   tt.reader,
				Projections: newProjectionService(tt.reader),
				Now:         func() time.Time { return now },
			}

			_, err := svc.GetDashboard(context.Background(), pkg.GenerateULIDObject())
			if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestLowestPeriod(t *testing.T) {
	t.Parallel()

	period := func(label string, balance int64) projection.Period {
		return projection.Period{Label: label, Balance: decimal.NewFromInt(balance)}
	}
	inProgress := period("em andamento", 50)

	tests := []struct {
		name       string
		projection *projection.Projection
		wantLabel  string
	}{
		{"nothing projected", &projection.Projection{}, ""},
		{"future low", &projection.Projection{Periods: []projection.Period{period("a", 300), period("b", -20), period("c", 10)}}, "b"},
		{"in progress is lowest", &projection.Projection{InProgress: &inProgress, Periods: []projection.Period{period("a", 80)}}, "em andamento"},
		{"tie keeps earliest", &projection.Projection{Periods: []projection.Period{period("a", 5), period("b", 5)}}, "a"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := dashboard.LowestPeriod(tt.projection)
			if tt.wantLabel == "" {
				if got != nil {
					t.Fatalf("expected no period, got %+v", got)
				}
				return
			}
			if got == nil || got.Label != tt.wantLabel {
				t.Fatalf("expected period %q, got %+v", tt.wantLabel, got)
			}
		})
	}
}
