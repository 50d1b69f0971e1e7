package alert_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func runningLoan(name string, day, alertDays int) *loan.Loan {
	return &loan.Loan{
		Id:         pkg.GenerateULIDObject(),
		Name:       name,
		Amount:     decimal.NewFromInt(800),
		PaymentDay: day,
		StartDate:  date(2024, time.January, 1),
		EndDate:    calendar.OpenEnded,
		AlertDays:  alertDays,
		IsActive:   true,
	}
}

func TestUrgencyFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days int
		want alert.Urgency
	}{
		{0, alert.UrgencyUrgent},
		{2, alert.UrgencyUrgent},
		{3, alert.UrgencySoon},
		{5, alert.UrgencySoon},
		{6, alert.UrgencyScheduled},
		{30, alert.UrgencyScheduled},
	}
	for _, tt := range tests {
		if got := alert.UrgencyFor(tt.days); got != tt.want {
			t.Fatalf("%d days: expected %s, got %s", tt.days, tt.want, got)
		}
	}
}

func TestUpcoming(t *testing.T) {
	t.Parallel()

	notStarted := runningLoan("ainda não começou", 12, 10)
	notStarted.StartDate = date(2025, time.February, 1)

	paused := runningLoan("pausado", 9, 10)
	paused.IsActive = false

	s := &projection.Snapshot{
		Loans: []*loan.Loan{
			runningLoan("cartório", 10, 10),
			runningLoan("já passou", 5, 10),
			notStarted,
			paused,
		},
		Purchases: []*installment.Purchase{
			{
				Id:               pkg.GenerateULIDObject(),
				Product:          "sofá",
				MonthlyPayment:   decimal.NewFromInt(300),
				PeriodsRemaining: 4,
				PaymentDay:       15,
				AlertDays:        10,
				IsActive:         true,
			},
			{
				Id:               pkg.GenerateULIDObject(),
				Product:          "quitado",
				MonthlyPayment:   decimal.NewFromInt(300),
				PeriodsRemaining: 0,
				PaymentDay:       12,
				AlertDays:        10,
				IsActive:         true,
			},
		},
	}

	got := alert.Upcoming(s, time.Date(2025, time.January, 8, 18, 45, 0, 0, time.UTC))
	if len(got) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %+v", len(got), got)
	}

	first, second := got[0], got[1]
	if first.Name != "cartório" || first.DaysRemaining != 2 || first.Urgency != alert.UrgencyUrgent || first.Kind != alert.KindLoan {
		t.Fatalf("unexpected first alert %+v", first)
	}
	if !first.DueDate.Equal(date(2025, time.January, 10)) {
		t.Fatalf("expected due date 2025-01-10, got %s", first.DueDate)
	}
	if second.Name != "sofá" || second.DaysRemaining != 7 || second.Urgency != alert.UrgencyScheduled || second.Kind != alert.KindInstallment {
		t.Fatalf("unexpected second alert %+v", second)
	}
}

func TestUpcomingRollsIntoNextMonth(t *testing.T) {
	t.Parallel()

	s := &projection.Snapshot{Loans: []*loan.Loan{runningLoan("aluguel", 3, 10)}}

	got := alert.Upcoming(s, date(2025, time.January, 28))
	if len(got) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(got))
	}
	if !got[0].DueDate.Equal(date(2025, time.February, 3)) || got[0].DaysRemaining != 6 {
		t.Fatalf("unexpected alert %+v", got[0])
	}
}

func TestUpcomingUsesDefaultWindow(t *testing.T) {
	t.Parallel()

	s := &projection.Snapshot{Loans: []*loan.Loan{runningLoan("sem janela", 18, 0)}}

	if got := alert.Upcoming(s, date(2025, time.January, 8)); len(got) != 1 {
		t.Fatalf("a 10 day distance should fit the default window, got %d alerts", len(got))
	}
	if got := alert.Upcoming(s, date(2025, time.January, 7)); len(got) != 0 {
		t.Fatalf("an 11 day distance should not fit the default window, got %d alerts", len(got))
	}
}

func TestBody(t *testing.T) {
	t.Parallel()

	body := alert.Body([]alert.Alert{
		{Name: "aluguel", Amount: decimal.RequireFromString("1500.5"), DueDate: date(2025, time.February, 3), DaysRemaining: 0, Notes: "pix"},
		{Name: "sofá", Amount: decimal.NewFromInt(300), DueDate: date(2025, time.February, 4), DaysRemaining: 1},
		{Name: "curso", Amount: decimal.NewFromInt(99), DueDate: date(2025, time.February, 9), DaysRemaining: 6},
	})

	for _, want := range []string{
		"- aluguel: R$ 1500.50 em 03/02/2025 (vence hoje)",
		"  pix",
		"(vence amanhã)",
		"(faltam 6 dias)",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}
