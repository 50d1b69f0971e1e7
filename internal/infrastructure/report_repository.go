package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/report"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

var _ report.Repository = (*ReportRepository)(nil)

func (r *ReportRepository) MonthlyTotals(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]report.MonthTotals, error) {
	var rows []struct {
		Month string
		Kind  string
		Total decimal.Decimal
	}
	err := r.DB.WithContext(ctx).Table("ledger_entries").
		Select("TO_CHAR(date, 'YYYY-MM') AS month, kind, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID.String(), from, to).
		Group("month, kind").
		Order("month").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	months := make([]report.MonthTotals, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, row := range rows {
		i, ok := index[row.Month]
		if !ok {
			i = len(months)
			index[row.Month] = i
			months = append(months, report.MonthTotals{Key: row.Month, Income: decimal.Zero, Expenses: decimal.Zero})
		}
		switch ledger.Kind(row.Kind) {
		case ledger.KindIncome:
			months[i].Income = row.Total
		case ledger.KindExpense:
			months[i].Expenses = row.Total
		}
	}
	return months, nil
}
