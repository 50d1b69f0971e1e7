package infrastructure

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

func (r *DashboardRepository) RecentEntries(ctx context.Context, userID ulid.ULID, limit int) ([]*ledger.Entry, error) {
	page := query.NewPage(1, limit)
	result, err := query.Paginate(
		query.New[ledgerEntryDB](r.DB, "ledger_entries").
			Context(ctx).
			Where("user_id = ?", userID.String()).
			Order("date DESC, created_at DESC"),
		page,
		toDomainLedgerEntry,
	)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
