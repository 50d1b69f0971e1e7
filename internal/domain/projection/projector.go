package projection

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/obligation"
	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	"github.com/Nojands/FinanzApp/internal/domain/risk"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/shopspring/decimal"
)

// Adjustment adds a hypothetical due to the period at the given index.
type Adjustment func(index int, p calendar.Period) decimal.Decimal

type Period struct {
	Label       string               `json:"label"`
	Key         string               `json:"key"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
	Income      decimal.Decimal      `json:"income"`
	Obligations decimal.Decimal      `json:"obligations"`
	Breakdown   obligation.Breakdown `json:"breakdown"`
	Extra       decimal.Decimal      `json:"extra"`
	Balance     decimal.Decimal      `json:"balance"`
	Risk        risk.Level           `json:"risk"`
}

type Projection struct {
	Granularity calendar.Granularity `json:"granularity"`
	// StartingBalance is the actual balance the run started from and the
	// reference of relative risk grading.
	StartingBalance decimal.Decimal `json:"startingBalance"`
	// OpeningBalance precedes the first emitted period. It differs from
	// StartingBalance when an in-progress period was folded but not emitted.
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	InProgress     *Period         `json:"inProgress,omitempty"`
	Periods        []Period        `json:"periods"`
}

// Projector folds income and dues over a period calendar into a running
// balance. Monthly and biweekly runs differ only in their calendar and in how
// income and card dues map onto periods.
type Projector struct {
	Granularity calendar.Granularity
	Paydays     calendar.Paydays
	// Policy grades balances; nil selects risk.ForProjection(starting balance).
	Policy risk.Policy
	Extra  Adjustment
}

func (pr Projector) Run(s *Snapshot, now time.Time, count int) (*Projection, error) {
	if count <= 0 {
		return nil, appErrors.NewValidationError("periods", "deve ser maior que zero")
	}

	start := s.CurrentBalance()
	policy := pr.Policy
	if policy == nil {
		policy = risk.ForProjection(start)
	}

	resolver := obligation.NewResolver(s.Loans, s.Cards, s.Purchases)

	var periods []calendar.Period
	var incomes []decimal.Decimal
	var dues func(calendar.Period) obligation.Breakdown

	switch pr.Granularity {
	case calendar.GranularityMonthly:
		periods = calendar.Monthly(now, count)
		incomes = make([]decimal.Decimal, len(periods))
		for i, p := range periods {
			incomes[i] = recurring.MonthlyIncome(s.Incomes, p)
		}
		dues = resolver.Monthly
	case calendar.GranularityBiweekly:
		// one extra period: the one in progress is folded but not emitted
		periods = calendar.Biweekly(now, count+1, pr.Paydays)
		incomes = recurring.BiweeklySchedule(s.Incomes, periods, pr.Paydays)
		dues = resolver.Biweekly
	default:
		return nil, appErrors.NewValidationError("granularity", "granularidade desconhecida")
	}

	today := calendar.Truncate(now)
	out := &Projection{
		Granularity:     pr.Granularity,
		StartingBalance: start,
		OpeningBalance:  start,
		Periods:         make([]Period, 0, count),
	}

	balance := start
	for i, p := range periods {
		breakdown := dues(p)
		extra := decimal.Zero
		if pr.Extra != nil {
			extra = pr.Extra(i, p)
		}
		obligations := breakdown.Total().Add(extra)
		balance = balance.Add(incomes[i]).Sub(obligations)

		row := Period{
			Label:       p.Label,
			Key:         p.Key,
			StartDate:   p.Start,
			EndDate:     p.End,
			Income:      incomes[i],
			Obligations: obligations,
			Breakdown:   breakdown,
			Extra:       extra,
			Balance:     balance,
			Risk:        policy.Classify(balance),
		}

		if pr.Granularity == calendar.GranularityBiweekly && !p.Start.After(today) {
			inProgress := row
			out.InProgress = &inProgress
			out.OpeningBalance = balance
			continue
		}
		out.Periods = append(out.Periods, row)
	}

	return out, nil
}

// ProjectMonthly projects the given number of calendar months, starting with
// the current one.
func ProjectMonthly(s *Snapshot, now time.Time, months int) (*Projection, error) {
	if months <= 0 {
		return nil, appErrors.NewValidationError("months", "deve ser maior que zero")
	}
	return Projector{Granularity: calendar.GranularityMonthly}.Run(s, now, months)
}

// ProjectBiweekly projects the given number of future biweekly periods. The
// period containing now is not counted: it is folded into the opening balance
// and reported as InProgress, so Periods holds exactly periods entries.
func ProjectBiweekly(s *Snapshot, now time.Time, periods int, paydays calendar.Paydays) (*Projection, error) {
	return Projector{Granularity: calendar.GranularityBiweekly, Paydays: paydays}.Run(s, now, periods)
}
