package contracts

import (
	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/report"

	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	CurrentBalance      decimal.Decimal           `json:"currentBalance"`
	InitialBalance      decimal.Decimal           `json:"initialBalance"`
	TotalIncome         decimal.Decimal           `json:"totalIncome"`
	TotalExpenses       decimal.Decimal           `json:"totalExpenses"`
	Month               string                    `json:"month"`
	MonthlyCommitments  decimal.Decimal           `json:"monthlyCommitments"`
	Commitments         BreakdownResponse         `json:"commitments"`
	RecurringIncome     decimal.Decimal           `json:"recurringIncome"`
	MinProjectedBalance decimal.Decimal           `json:"minProjectedBalance"`
	LowestPeriod        *ProjectionPeriodResponse `json:"lowestPeriod,omitempty"`
	RecentEntries       []*ledger.Entry           `json:"recentEntries"`
}

func NewDashboardResponse(d *dashboard.Dashboard) DashboardResponse {
	out := DashboardResponse{
		CurrentBalance:      round(d.CurrentBalance),
		InitialBalance:      round(d.InitialBalance),
		TotalIncome:         round(d.TotalIncome),
		TotalExpenses:       round(d.TotalExpenses),
		Month:               d.Month,
		MonthlyCommitments:  round(d.MonthlyCommitments),
		Commitments:         newBreakdownResponse(d.Commitments),
		RecurringIncome:     round(d.RecurringIncome),
		MinProjectedBalance: round(d.MinProjectedBalance),
		RecentEntries:       d.RecentEntries,
	}
	if out.RecentEntries == nil {
		out.RecentEntries = []*ledger.Entry{}
	}
	if d.LowestPeriod != nil {
		lowest := newPeriodResponse(*d.LowestPeriod)
		out.LowestPeriod = &lowest
	}
	return out
}

type SummaryResponse struct {
	Summary *report.Summary `json:"summary"`
}

func NewSummaryResponse(s *report.Summary) SummaryResponse {
	rounded := *s
	rounded.TotalIncome = round(s.TotalIncome)
	rounded.TotalExpenses = round(s.TotalExpenses)
	rounded.Net = round(s.Net)
	rounded.CurrentBalance = round(s.CurrentBalance)
	rounded.AverageMonthlyExpenses = round(s.AverageMonthlyExpenses)
	return SummaryResponse{Summary: &rounded}
}

type MonthlyTrendResponse struct {
	Months []report.TrendItem `json:"months"`
}

func NewMonthlyTrendResponse(items []report.TrendItem) MonthlyTrendResponse {
	out := MonthlyTrendResponse{Months: make([]report.TrendItem, 0, len(items))}
	for _, item := range items {
		item.Income = round(item.Income)
		item.Expenses = round(item.Expenses)
		item.Balance = round(item.Balance)
		out.Months = append(out.Months, item)
	}
	return out
}
