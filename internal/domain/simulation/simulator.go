package simulation

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/risk"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/shopspring/decimal"
)

type Verdict string

const (
	VerdictYes     Verdict = "YES"
	VerdictCaution Verdict = "CAUTION"
	VerdictNo      Verdict = "NO"
)

const (
	// DefaultMinMonths is the shortest horizon simulated regardless of term.
	DefaultMinMonths = 12
	// criticalWindow is how many leading months turn a red balance into a NO.
	criticalWindow = 3
)

type MonthComparison struct {
	Number         int             `json:"number"`
	Label          string          `json:"label"`
	Key            string          `json:"key"`
	Income         decimal.Decimal `json:"income"`
	Obligations    decimal.Decimal `json:"obligations"`
	Installment    decimal.Decimal `json:"installment"`
	BalanceWithout decimal.Decimal `json:"balanceWithout"`
	BalanceWith    decimal.Decimal `json:"balanceWith"`
	Difference     decimal.Decimal `json:"difference"`
	StateWithout   risk.Level      `json:"stateWithout"`
	StateWith      risk.Level      `json:"stateWith"`
}

type Result struct {
	Product             string            `json:"product"`
	Price               decimal.Decimal   `json:"price"`
	Term                int               `json:"term"`
	MonthlyPayment      decimal.Decimal   `json:"monthlyPayment"`
	StartingBalance     decimal.Decimal   `json:"startingBalance"`
	Months              []MonthComparison `json:"months"`
	Verdict             Verdict           `json:"verdict"`
	ProblemMonth        *int              `json:"problemMonth,omitempty"`
	CriticalMonth       *string           `json:"criticalMonth,omitempty"`
	MinimumBalance      decimal.Decimal   `json:"minimumBalance"`
	MinimumBalanceMonth string            `json:"minimumBalanceMonth"`
	FinalBalance        decimal.Decimal   `json:"finalBalance"`
}

// Simulate compares the monthly projection with and without a new
// installment purchase of price split over term months.
func Simulate(s *projection.Snapshot, now time.Time, product string, price decimal.Decimal, term, minMonths int) (*Result, error) {
	if !price.IsPositive() {
		return nil, appErrors.NewValidationError("price", "deve ser maior que zero")
	}
	if term <= 0 {
		return nil, appErrors.NewValidationError("term", "deve ser maior que zero")
	}

	payment := price.Div(decimal.NewFromInt(int64(term)))
	horizon := term
	if horizon < minMonths {
		horizon = minMonths
	}

	policy := risk.ForSimulation()
	without, err := projection.Projector{
		Granularity: calendar.GranularityMonthly,
		Policy:      policy,
	}.Run(s, now, horizon)
	if err != nil {
		return nil, err
	}

	with, err := projection.Projector{
		Granularity: calendar.GranularityMonthly,
		Policy:      policy,
		Extra: func(index int, _ calendar.Period) decimal.Decimal {
			if index < term {
				return payment
			}
			return decimal.Zero
		},
	}.Run(s, now, horizon)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Product:         product,
		Price:           price,
		Term:            term,
		MonthlyPayment:  payment,
		StartingBalance: without.StartingBalance,
		Months:          make([]MonthComparison, 0, horizon),
		Verdict:         VerdictYes,
	}

	for i := range without.Periods {
		base, alt := without.Periods[i], with.Periods[i]
		result.Months = append(result.Months, MonthComparison{
			Number:         i + 1,
			Label:          base.Label,
			Key:            base.Key,
			Income:         base.Income,
			Obligations:    base.Obligations,
			Installment:    alt.Extra,
			BalanceWithout: base.Balance,
			BalanceWith:    alt.Balance,
			Difference:     base.Balance.Sub(alt.Balance),
			StateWithout:   base.Risk,
			StateWith:      alt.Risk,
		})
	}

	for i, m := range result.Months {
		if i == 0 || m.BalanceWith.LessThan(result.MinimumBalance) {
			result.MinimumBalance = m.BalanceWith
			result.MinimumBalanceMonth = m.Key
		}
	}

	for _, m := range result.Months {
		if m.StateWith != risk.LevelRed {
			continue
		}
		number, key := m.Number, m.Key
		result.ProblemMonth = &number
		result.CriticalMonth = &key
		if m.Number <= criticalWindow {
			result.Verdict = VerdictNo
		} else {
			result.Verdict = VerdictCaution
		}
		break
	}

	result.FinalBalance = result.Months[len(result.Months)-1].BalanceWith
	return result, nil
}
