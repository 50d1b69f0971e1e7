package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LedgerRepository struct {
	DB *gorm.DB
}

var _ ledger.Repository = (*LedgerRepository)(nil)

type ledgerEntryDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string          `gorm:"type:varchar(26);index:idx_ledger_entries_user_date,priority:1;not null;column:user_id"`
	Kind        string          `gorm:"type:varchar(10);not null;column:kind"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_ledger_entries_user_date,priority:2;column:date"`
	Description string          `gorm:"type:varchar(255);column:description"`
	CreatedAt   time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time       `gorm:"not null;column:updated_at"`
}

func (ledgerEntryDB) TableName() string {
	return "ledger_entries"
}

func toDomainLedgerEntry(ldb *ledgerEntryDB) (*ledger.Entry, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(ldb.UserId)
	if err != nil {
		return nil, err
	}
	return &ledger.Entry{
		Id:          id,
		UserId:      userID,
		Kind:        ledger.Kind(ldb.Kind),
		Amount:      ldb.Amount,
		Date:        ldb.Date,
		Description: ldb.Description,
		CreatedAt:   ldb.CreatedAt,
	}, nil
}

func toDBLedgerEntry(e *ledger.Entry) *ledgerEntryDB {
	return &ledgerEntryDB{
		Id:          e.Id.String(),
		UserId:      e.UserId.String(),
		Kind:        string(e.Kind),
		Amount:      e.Amount,
		Date:        e.Date,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.CreatedAt,
	}
}

func (r *LedgerRepository) Create(ctx context.Context, e *ledger.Entry) error {
	return r.DB.WithContext(ctx).Table("ledger_entries").Create(toDBLedgerEntry(e)).Error
}

func (r *LedgerRepository) Delete(ctx context.Context, entryID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", entryID.String(), userID.String()).Delete(&ledgerEntryDB{}).Error
}

func (r *LedgerRepository) GetByID(ctx context.Context, entryID, userID ulid.ULID) (*ledger.Entry, error) {
	row, err := query.New[ledgerEntryDB](r.DB, "ledger_entries").
		Context(ctx).
		Where("id = ? AND user_id = ?", entryID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainLedgerEntry(row)
}

func (r *LedgerRepository) List(ctx context.Context, userID ulid.ULID, filter ledger.ListFilter, page query.Page) (*query.Result[*ledger.Entry], error) {
	q := query.New[ledgerEntryDB](r.DB, "ledger_entries").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("date DESC, id DESC")
	if filter.Kind != nil {
		q.Where("kind = ?", string(*filter.Kind))
	}
	if filter.From != nil {
		q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q.Where("date <= ?", *filter.To)
	}
	return query.Paginate(q, page, toDomainLedgerEntry)
}

func (r *LedgerRepository) Totals(ctx context.Context, userID ulid.ULID) (ledger.Totals, error) {
	return ledgerTotals(r.DB.WithContext(ctx), userID)
}

func ledgerTotals(db *gorm.DB, userID ulid.ULID) (ledger.Totals, error) {
	var rows []struct {
		Kind  string
		Total decimal.Decimal
	}
	err := db.Table("ledger_entries").
		Select("kind, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID.String()).
		Group("kind").
		Scan(&rows).Error
	if err != nil {
		return ledger.Totals{}, err
	}

	totals := ledger.Totals{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, row := range rows {
		switch ledger.Kind(row.Kind) {
		case ledger.KindIncome:
			totals.Income = row.Total
		case ledger.KindExpense:
			totals.Expenses = row.Total
		}
	}
	return totals, nil
}
