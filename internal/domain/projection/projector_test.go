package projection_test

import (
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	"github.com/Nojands/FinanzApp/internal/domain/risk"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/shopspring/decimal"
)

var now = time.Date(2025, time.January, 20, 9, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// salaryAndLoan earns 3000 on day 5 and pays 2000 on day 10 every month,
// starting from 10000.
func salaryAndLoan() *projection.Snapshot {
	return &projection.Snapshot{
		UserID:         pkg.GenerateULIDObject(),
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
			Name:       "carro",
			Amount:     decimal.NewFromInt(2000),
			PaymentDay: 10,
			StartDate:  date(2024, time.January, 1),
			EndDate:    calendar.OpenEnded,
			IsActive:   true,
		}},
	}
}

func balances(p *projection.Projection) []string {
	out := make([]string, len(p.Periods))
	for i, period := range p.Periods {
		out[i] = period.Balance.String()
	}
	return out
}

func TestProjectMonthly(t *testing.T) {
	t.Parallel()

	p, err := projection.ProjectMonthly(salaryAndLoan(), now, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !p.StartingBalance.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected starting balance 10000, got %s", p.StartingBalance)
	}

	want := []string{"11000", "12000", "13000"}
	got := balances(p)
	if len(got) != len(want) {
		t.Fatalf("expected %d periods, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("period %d: expected %s, got %s", i, want[i], got[i])
		}
		if p.Periods[i].Risk != risk.LevelGreen {
			t.Fatalf("period %d: expected GREEN, got %s", i, p.Periods[i].Risk)
		}
	}
	if p.Periods[0].Key != "2025-01" {
		t.Fatalf("monthly projection should start in the current month, got %s", p.Periods[0].Key)
	}
	if p.InProgress != nil {
		t.Fatalf("monthly projection has no in-progress period")
	}
}

func TestProjectionIsAdditive(t *testing.T) {
	t.Parallel()

	s := salaryAndLoan()
	s.Purchases = []*installment.Purchase{{
		Product:          "notebook",
		MonthlyPayment:   decimal.RequireFromString("333.33"),
		Term:             3,
		PeriodsRemaining: 3,
		FirstPaymentDate: date(2025, time.February, 15),
		PaymentDay:       15,
		IsActive:         true,
	}}

	monthly, err := projection.ProjectMonthly(s, now, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	biweekly, err := projection.ProjectBiweekly(s, now, 24, calendar.DefaultPaydays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range []*projection.Projection{monthly, biweekly} {
		prev := p.OpeningBalance
		for i, period := range p.Periods {
			expected := prev.Add(period.Income).Sub(period.Obligations)
			if !period.Balance.Equal(expected) {
				t.Fatalf("%s period %d: expected %s, got %s", p.Granularity, i, expected, period.Balance)
			}
			if !period.Obligations.Equal(period.Breakdown.Total().Add(period.Extra)) {
				t.Fatalf("%s period %d: obligations do not match breakdown", p.Granularity, i)
			}
			prev = period.Balance
		}
	}
}

func TestProjectionIsIdempotent(t *testing.T) {
	t.Parallel()

	s := salaryAndLoan()
	first, err := projection.ProjectBiweekly(s, now, 8, calendar.DefaultPaydays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := projection.ProjectBiweekly(s, now, 8, calendar.DefaultPaydays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := balances(first), balances(second)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("period %d differs between runs: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestProjectBiweeklyEmitsOnlyFuturePeriods(t *testing.T) {
	t.Parallel()

	p, err := projection.ProjectBiweekly(salaryAndLoan(), now, 4, calendar.DefaultPaydays())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(p.Periods) != 4 {
		t.Fatalf("expected 4 periods, got %d", len(p.Periods))
	}
	if p.InProgress == nil || !p.InProgress.StartDate.Equal(date(2025, time.January, 15)) {
		t.Fatalf("expected in-progress period starting 2025-01-15, got %+v", p.InProgress)
	}
	if !p.OpeningBalance.Equal(p.InProgress.Balance) {
		t.Fatalf("opening balance %s should equal in-progress balance %s", p.OpeningBalance, p.InProgress.Balance)
	}
	for _, period := range p.Periods {
		if !period.StartDate.After(calendar.Truncate(now)) {
			t.Fatalf("period %s started before today", period.Label)
		}
	}

	// salary on day 5 is off-cycle and lands one period later
	want := []string{"8000", "11000", "9000", "12000"}
	got := balances(p)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("period %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestProjectMonthlyGradesRisk(t *testing.T) {
	t.Parallel()

	s := salaryAndLoan()
	s.Incomes = nil

	p, err := projection.ProjectMonthly(s, now, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 8000, 6000, 4000, 2000, 0 against a 10000 reference
	want := []risk.Level{risk.LevelGreen, risk.LevelGreen, risk.LevelGreen, risk.LevelYellow, risk.LevelRed}
	for i, level := range want {
		if p.Periods[i].Risk != level {
			t.Fatalf("period %d (%s): expected %s, got %s", i, p.Periods[i].Balance, level, p.Periods[i].Risk)
		}
	}
}

func TestProjectRejectsEmptyHorizon(t *testing.T) {
	t.Parallel()

	_, err := projection.ProjectMonthly(salaryAndLoan(), now, 0)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = projection.ProjectBiweekly(salaryAndLoan(), now, 0, calendar.DefaultPaydays())
	if _, ok := appErrors.AsAppError(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestBiweeklyHorizon(t *testing.T) {
	t.Parallel()

	finite := func(end time.Time) *projection.Snapshot {
		return &projection.Snapshot{Loans: []*loan.Loan{{
			Amount:     decimal.NewFromInt(100),
			PaymentDay: 10,
			StartDate:  date(2024, time.January, 1),
			EndDate:    end,
			IsActive:   true,
		}}}
	}

	tests := []struct {
		name     string
		snapshot *projection.Snapshot
		want     int
	}{
		{"nothing known", &projection.Snapshot{}, 12},
		{"open ended loan", finite(calendar.OpenEnded), 12},
		{"short loan uses minimum", finite(date(2025, time.June, 30)), 12},
		{"loan ending next year", finite(date(2026, time.January, 31)), 26},
		{"capped", finite(date(2040, time.January, 31)), 240},
		{"installment purchase", &projection.Snapshot{Purchases: []*installment.Purchase{{
			FirstPaymentDate: date(2025, time.March, 15),
			PeriodsRemaining: 10,
			IsActive:         true,
		}}}, 2*calendar.MonthsBetween(now, date(2026, time.January, 15)) + 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := projection.BiweeklyHorizon(tt.snapshot, now, 12, 240); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
