package report

import (
	"github.com/shopspring/decimal"
)

// MonthTotals sums the ledger entries of one calendar month.
type MonthTotals struct {
	Key      string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

type Summary struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	Net            decimal.Decimal `json:"net"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	ActiveLoans    int             `json:"activeLoans"`
	// ActivePurchases counts installment purchases with installments left.
	ActivePurchases int `json:"activePurchases"`
	// AverageMonthlyExpenses averages the recent months that had any expense.
	AverageMonthlyExpenses decimal.Decimal `json:"averageMonthlyExpenses"`
}

type TrendItem struct {
	Key      string          `json:"key"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}
