package report

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const (
	DefaultTrendMonths = 12
	MaxTrendMonths     = 60
	// averageWindow is the number of calendar months, the current one
	// included, behind AverageMonthlyExpenses.
	averageWindow = 6
)

type Service struct {
	Repository Repository
	Snapshots  projection.SnapshotReader
	Now        func() time.Time
}

func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID) (*Summary, error) {
	snapshot, err := s.Snapshots.LoadSnapshot(ctx, userID)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	window := calendar.Monthly(calendar.AddMonths(s.now(), -(averageWindow - 1)), averageWindow)
	months, err := s.Repository.MonthlyTotals(ctx, userID, window[0].Start, window[len(window)-1].End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	today := calendar.Truncate(s.now())
	summary := &Summary{
		TotalIncome:            snapshot.TotalIncome,
		TotalExpenses:          snapshot.TotalExpenses,
		Net:                    snapshot.TotalIncome.Sub(snapshot.TotalExpenses),
		CurrentBalance:         snapshot.CurrentBalance(),
		AverageMonthlyExpenses: AverageExpenses(months),
	}
	for _, l := range snapshot.Loans {
		if l.IsActive && !l.EndDate.Before(today) {
			summary.ActiveLoans++
		}
	}
	for _, p := range snapshot.Purchases {
		if p.IsActive && p.PeriodsRemaining > 0 {
			summary.ActivePurchases++
		}
	}
	return summary, nil
}

// GetMonthlyTrend reports income, expenses and their balance for each of the
// last months, ending with the current one. A nil months uses
// DefaultTrendMonths.
func (s *Service) GetMonthlyTrend(ctx context.Context, userID ulid.ULID, months *int) ([]TrendItem, error) {
	n := DefaultTrendMonths
	if months != nil {
		n = *months
	}
	if n < 1 || n > MaxTrendMonths {
		return nil, appErrors.NewValidationError("months", "fora do intervalo permitido").
			WithDetails(map[string]interface{}{"field": "months", "max": MaxTrendMonths})
	}

	periods := calendar.Monthly(calendar.AddMonths(s.now(), -(n - 1)), n)
	totals, err := s.Repository.MonthlyTotals(ctx, userID, periods[0].Start, periods[n-1].End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return BuildTrend(periods, totals), nil
}

// BuildTrend lays the totals over the months, filling months without entries
// with zeros.
func BuildTrend(periods []calendar.Period, totals []MonthTotals) []TrendItem {
	byKey := make(map[string]MonthTotals, len(totals))
	for _, t := range totals {
		byKey[t.Key] = t
	}

	items := make([]TrendItem, 0, len(periods))
	for _, p := range periods {
		t := byKey[p.Key]
		items = append(items, TrendItem{
			Key:      p.Key,
			Label:    p.Label,
			Income:   t.Income,
			Expenses: t.Expenses,
			Balance:  t.Income.Sub(t.Expenses),
		})
	}
	return items
}

// AverageExpenses averages the expenses of the months that had any.
func AverageExpenses(months []MonthTotals) decimal.Decimal {
	spent := make([]decimal.Decimal, 0, len(months))
	for _, m := range months {
		if m.Expenses.IsPositive() {
			spent = append(spent, m.Expenses)
		}
	}
	if len(spent) == 0 {
		return decimal.Zero
	}
	return pkg.SumDecimals(spent...).Div(decimal.NewFromInt(int64(len(spent))))
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
