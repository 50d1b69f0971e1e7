package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/recurring"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecurringRepository struct {
	DB *gorm.DB
}

var _ recurring.Repository = (*RecurringRepository)(nil)

type recurringIncomeDB struct {
	Id            string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId        string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	Name          string          `gorm:"type:varchar(100);not null;column:name"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	PaymentDay    int             `gorm:"not null;column:payment_day"`
	StartDate     time.Time       `gorm:"type:date;not null;column:start_date"`
	EndDate       time.Time       `gorm:"type:date;not null;column:end_date"`
	Frequency     string          `gorm:"type:varchar(20);not null;default:'MONTHLY';column:frequency"`
	SpecificMonth *int            `gorm:"column:specific_month"`
	IsActive      bool            `gorm:"not null;default:true;column:is_active"`
	CreatedAt     time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt     time.Time       `gorm:"not null;column:updated_at"`
}

func (recurringIncomeDB) TableName() string {
	return "recurring_incomes"
}

func toDomainRecurringIncome(rdb *recurringIncomeDB) (*recurring.RecurringIncome, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(rdb.UserId)
	if err != nil {
		return nil, err
	}

	return &recurring.RecurringIncome{
		Id:            id,
		UserId:        userID,
		Name:          rdb.Name,
		Amount:        rdb.Amount,
		PaymentDay:    rdb.PaymentDay,
		StartDate:     rdb.StartDate,
		EndDate:       rdb.EndDate,
		Frequency:     recurring.Frequency(rdb.Frequency),
		SpecificMonth: rdb.SpecificMonth,
		IsActive:      rdb.IsActive,
		CreatedAt:     rdb.CreatedAt,
		UpdatedAt:     rdb.UpdatedAt,
	}, nil
}

func toDBRecurringIncome(r *recurring.RecurringIncome) *recurringIncomeDB {
	return &recurringIncomeDB{
		Id:            r.Id.String(),
		UserId:        r.UserId.String(),
		Name:          r.Name,
		Amount:        r.Amount,
		PaymentDay:    r.PaymentDay,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Frequency:     string(r.Frequency),
		SpecificMonth: r.SpecificMonth,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *RecurringRepository) Create(ctx context.Context, inc *recurring.RecurringIncome) error {
	return r.DB.WithContext(ctx).Table("recurring_incomes").Create(toDBRecurringIncome(inc)).Error
}

// Update writes every column, so deactivation and zero values persist.
func (r *RecurringRepository) Update(ctx context.Context, inc *recurring.RecurringIncome) error {
	rdb := toDBRecurringIncome(inc)
	return r.DB.WithContext(ctx).Table("recurring_incomes").
		Where("id = ? AND user_id = ?", rdb.Id, rdb.UserId).
		Select("*").Omit("created_at").
		Updates(rdb).Error
}

func (r *RecurringRepository) Delete(ctx context.Context, incomeID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", incomeID.String(), userID.String()).Delete(&recurringIncomeDB{}).Error
}

func (r *RecurringRepository) GetByID(ctx context.Context, incomeID, userID ulid.ULID) (*recurring.RecurringIncome, error) {
	row, err := query.New[recurringIncomeDB](r.DB, "recurring_incomes").
		Context(ctx).
		Where("id = ? AND user_id = ?", incomeID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainRecurringIncome(row)
}

func (r *RecurringRepository) List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*recurring.RecurringIncome], error) {
	return query.Paginate(r.findByUser(ctx, userID), page, toDomainRecurringIncome)
}

func (r *RecurringRepository) ListActive(ctx context.Context, userID ulid.ULID) ([]*recurring.RecurringIncome, error) {
	return activeIncomes(ctx, r.DB, userID)
}

func (r *RecurringRepository) findByUser(ctx context.Context, userID ulid.ULID) *query.Query[recurringIncomeDB] {
	return query.New[recurringIncomeDB](r.DB, "recurring_incomes").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC")
}

func activeIncomes(ctx context.Context, db *gorm.DB, userID ulid.ULID) ([]*recurring.RecurringIncome, error) {
	q := query.New[recurringIncomeDB](db, "recurring_incomes").
		Context(ctx).
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Order("payment_day, id")
	return query.ExecuteAll(q, toDomainRecurringIncome)
}
