package infrastructure

import (
	"context"
	"database/sql"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/settings"
	"github.com/Nojands/FinanzApp/internal/logger"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// SnapshotRepository assembles the projection input of one user.
type SnapshotRepository struct {
	DB             *gorm.DB
	DefaultPaydays calendar.Paydays
}

var _ projection.SnapshotReader = (*SnapshotRepository)(nil)

// LoadSnapshot reads settings, ledger totals and every active obligation inside
// one read-only repeatable-read transaction, so concurrent writes cannot
// produce a torn view.
func (r *SnapshotRepository) LoadSnapshot(ctx context.Context, userID ulid.ULID) (*projection.Snapshot, error) {
	snapshot := &projection.Snapshot{UserID: userID}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stored, err := getSettings(tx, userID)
		if err != nil {
			return err
		}
		if stored == nil {
			stored = settings.Defaults(userID, r.defaultPaydays())
		}
		snapshot.InitialBalance = stored.InitialBalance
		snapshot.Paydays = stored.Paydays()

		totals, err := ledgerTotals(tx, userID)
		if err != nil {
			return err
		}
		snapshot.TotalIncome = totals.Income
		snapshot.TotalExpenses = totals.Expenses

		if snapshot.Incomes, err = activeIncomes(ctx, tx, userID); err != nil {
			return err
		}
		if snapshot.Loans, err = activeLoans(ctx, tx, userID); err != nil {
			return err
		}
		if snapshot.Cards, err = activeCards(ctx, tx, userID); err != nil {
			return err
		}
		if snapshot.Purchases, err = activePurchases(ctx, tx, userID); err != nil {
			return err
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID.String()).Msg("Erro ao carregar dados da projeção")
		return nil, err
	}

	return snapshot, nil
}

func (r *SnapshotRepository) defaultPaydays() calendar.Paydays {
	if r.DefaultPaydays.First == 0 {
		return calendar.DefaultPaydays()
	}
	return r.DefaultPaydays
}
