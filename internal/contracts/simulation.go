package contracts

import (
	"github.com/Nojands/FinanzApp/internal/domain/risk"
	"github.com/Nojands/FinanzApp/internal/domain/simulation"

	"github.com/shopspring/decimal"
)

type SimulationCreateRequest struct {
	Product string          `json:"product" binding:"omitempty,max=150"`
	Price   decimal.Decimal `json:"price"`
	Term    int             `json:"term" binding:"required,min=1"`
}

type SimulationMonthResponse struct {
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

type SimulationResponse struct {
	RecordId            string                    `json:"recordId"`
	Product             string                    `json:"product"`
	Price               decimal.Decimal           `json:"price"`
	Term                int                       `json:"term"`
	MonthlyPayment      decimal.Decimal           `json:"monthlyPayment"`
	StartingBalance     decimal.Decimal           `json:"startingBalance"`
	Verdict             simulation.Verdict        `json:"verdict"`
	ProblemMonth        *int                      `json:"problemMonth,omitempty"`
	CriticalMonth       *string                   `json:"criticalMonth,omitempty"`
	MinimumBalance      decimal.Decimal           `json:"minimumBalance"`
	MinimumBalanceMonth string                    `json:"minimumBalanceMonth"`
	FinalBalance        decimal.Decimal           `json:"finalBalance"`
	Months              []SimulationMonthResponse `json:"months"`
}

func NewSimulationResponse(outcome *simulation.Outcome) SimulationResponse {
	r := outcome.Result
	out := SimulationResponse{
		RecordId:            outcome.Record.Id.String(),
		Product:             r.Product,
		Price:               round(r.Price),
		Term:                r.Term,
		MonthlyPayment:      round(r.MonthlyPayment),
		StartingBalance:     round(r.StartingBalance),
		Verdict:             r.Verdict,
		ProblemMonth:        r.ProblemMonth,
		CriticalMonth:       r.CriticalMonth,
		MinimumBalance:      round(r.MinimumBalance),
		MinimumBalanceMonth: r.MinimumBalanceMonth,
		FinalBalance:        round(r.FinalBalance),
		Months:              make([]SimulationMonthResponse, 0, len(r.Months)),
	}
	for _, m := range r.Months {
		out.Months = append(out.Months, SimulationMonthResponse{
			Number:         m.Number,
			Label:          m.Label,
			Key:            m.Key,
			Income:         round(m.Income),
			Obligations:    round(m.Obligations),
			Installment:    round(m.Installment),
			BalanceWithout: round(m.BalanceWithout),
			BalanceWith:    round(m.BalanceWith),
			Difference:     round(m.Difference),
			StateWithout:   m.StateWithout,
			StateWith:      m.StateWith,
		})
	}
	return out
}
