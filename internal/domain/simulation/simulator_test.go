package simulation_test

import (
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/risk"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/shopspring/decimal"
)

var now = time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC)

func snapshot(balance, loanAmount int64) *projection.Snapshot {
	s := &projection.Snapshot{
		InitialBalance: decimal.NewFromInt(balance),
		Paydays:        calendar.DefaultPaydays(),
	}
	if loanAmount > 0 {
		s.Loans = []*loan.Loan{{
			Name:       "empréstimo",
			Amount:     decimal.NewFromInt(loanAmount),
			PaymentDay: 10,
			StartDate:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    calendar.OpenEnded,
			IsActive:   true,
		}}
	}
	return s
}

func TestSimulateCautionWhenBalanceTurnsRedLater(t *testing.T) {
	t.Parallel()

	r, err := simulation.Simulate(snapshot(10000, 2000), now, "TV", decimal.NewFromInt(6000), 6, simulation.DefaultMinMonths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(r.Months) != 12 {
		t.Fatalf("expected the 12 month minimum horizon, got %d", len(r.Months))
	}
	if !r.MonthlyPayment.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected monthly payment 1000, got %s", r.MonthlyPayment)
	}

	wantWith := []string{"7000", "4000", "1000", "-2000"}
	wantWithout := []string{"8000", "6000", "4000", "2000"}
	for i := range wantWith {
		m := r.Months[i]
		if m.BalanceWith.String() != wantWith[i] || m.BalanceWithout.String() != wantWithout[i] {
			t.Fatalf("month %d: got with=%s without=%s", m.Number, m.BalanceWith, m.BalanceWithout)
		}
	}

	if r.Months[2].StateWith != risk.LevelYellow || r.Months[3].StateWith != risk.LevelRed {
		t.Fatalf("unexpected states %s %s", r.Months[2].StateWith, r.Months[3].StateWith)
	}
	if r.Verdict != simulation.VerdictCaution {
		t.Fatalf("expected CAUTION, got %s", r.Verdict)
	}
	if r.ProblemMonth == nil || *r.ProblemMonth != 4 {
		t.Fatalf("expected problem month 4, got %v", r.ProblemMonth)
	}
	if r.CriticalMonth == nil || *r.CriticalMonth != "2025-04" {
		t.Fatalf("expected critical month 2025-04, got %v", r.CriticalMonth)
	}

	// installments stop after the term; the gap stays at the full price
	if !r.Months[6].Installment.IsZero() || !r.Months[11].Difference.Equal(decimal.NewFromInt(6000)) {
		t.Fatalf("unexpected tail: installment=%s difference=%s", r.Months[6].Installment, r.Months[11].Difference)
	}
	if !r.FinalBalance.Equal(decimal.NewFromInt(-20000)) {
		t.Fatalf("expected final balance -20000, got %s", r.FinalBalance)
	}
	if !r.MinimumBalance.Equal(r.FinalBalance) || r.MinimumBalanceMonth != "2025-12" {
		t.Fatalf("expected minimum at 2025-12, got %s at %s", r.MinimumBalance, r.MinimumBalanceMonth)
	}
}

func TestSimulateVerdicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		snapshot    *projection.Snapshot
		price       int64
		term        int
		wantVerdict simulation.Verdict
		wantProblem int
	}{
		{"comfortable", snapshot(100000, 0), 1200, 12, simulation.VerdictYes, 0},
		{"red in first month", snapshot(10000, 2000), 30000, 3, simulation.VerdictNo, 1},
		{"red in third month", snapshot(10000, 2000), 7500, 3, simulation.VerdictNo, 3},
		{"long term stretches horizon", snapshot(200000, 0), 24000, 24, simulation.VerdictYes, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := simulation.Simulate(tt.snapshot, now, "item", decimal.NewFromInt(tt.price), tt.term, simulation.DefaultMinMonths)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Verdict != tt.wantVerdict {
				t.Fatalf("expected %s, got %s", tt.wantVerdict, r.Verdict)
			}
			if tt.wantProblem == 0 {
				if r.ProblemMonth != nil {
					t.Fatalf("expected no problem month, got %d", *r.ProblemMonth)
				}
			} else if r.ProblemMonth == nil || *r.ProblemMonth != tt.wantProblem {
				t.Fatalf("expected problem month %d, got %v", tt.wantProblem, r.ProblemMonth)
			}
			if horizon := len(r.Months); horizon < tt.term || horizon < simulation.DefaultMinMonths {
				t.Fatalf("horizon %d shorter than term or minimum", horizon)
			}
		})
	}
}

func TestSimulateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price decimal.Decimal
		term  int
	}{
		{"zero price", decimal.Zero, 6},
		{"negative price", decimal.NewFromInt(-10), 6},
		{"zero term", decimal.NewFromInt(100), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := simulation.Simulate(snapshot(1000, 0), now, "x", tt.price, tt.term, simulation.DefaultMinMonths)
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
