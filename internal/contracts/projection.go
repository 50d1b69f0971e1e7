package contracts

import (
	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/obligation"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/risk"

	"github.com/shopspring/decimal"
)

type ProjectionPeriodResponse struct {
	Label       string            `json:"label"`
	Key         string            `json:"key"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Income      decimal.Decimal   `json:"income"`
	Obligations decimal.Decimal   `json:"obligations"`
	Breakdown   BreakdownResponse `json:"breakdown"`
	Balance     decimal.Decimal   `json:"balance"`
	Risk        risk.Level        `json:"risk"`
}

type BreakdownResponse struct {
	Loans            decimal.Decimal `json:"loans"`
	CardCurrent      decimal.Decimal `json:"cardCurrent"`
	CardInstallments decimal.Decimal `json:"cardInstallments"`
	Purchases        decimal.Decimal `json:"purchases"`
}

type ProjectionResponse struct {
	Granularity     calendar.Granularity       `json:"granularity"`
	StartingBalance decimal.Decimal            `json:"startingBalance"`
	OpeningBalance  decimal.Decimal            `json:"openingBalance"`
	InProgress      *ProjectionPeriodResponse  `json:"inProgress,omitempty"`
	Periods         []ProjectionPeriodResponse `json:"periods"`
}

func NewProjectionResponse(p *projection.Projection) ProjectionResponse {
	out := ProjectionResponse{
		Granularity:     p.Granularity,
		StartingBalance: round(p.StartingBalance),
		OpeningBalance:  round(p.OpeningBalance),
		Periods:         make([]ProjectionPeriodResponse, 0, len(p.Periods)),
	}
	if p.InProgress != nil {
		inProgress := newPeriodResponse(*p.InProgress)
		out.InProgress = &inProgress
	}
	for _, period := range p.Periods {
		out.Periods = append(out.Periods, newPeriodResponse(period))
	}
	return out
}

func newPeriodResponse(p projection.Period) ProjectionPeriodResponse {
	return ProjectionPeriodResponse{
		Label:       p.Label,
		Key:         p.Key,
		StartDate:   p.StartDate.Format(DateLayout),
		EndDate:     p.EndDate.Format(DateLayout),
		Income:      round(p.Income),
		Obligations: round(p.Obligations),
		Breakdown:   newBreakdownResponse(p.Breakdown),
		Balance:     round(p.Balance),
		Risk:        p.Risk,
	}
}

func newBreakdownResponse(b obligation.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Loans:            round(b.Loans),
		CardCurrent:      round(b.CardCurrent),
		CardInstallments: round(b.CardInstallments),
		Purchases:        round(b.Purchases),
	}
}
