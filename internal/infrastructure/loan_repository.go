package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LoanRepository struct {
	DB *gorm.DB
}

var _ loan.Repository = (*LoanRepository)(nil)

type loanDB struct {
	Id         string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId     string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	Name       string          `gorm:"type:varchar(100);not null;column:name"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	PaymentDay int             `gorm:"not null;column:payment_day"`
	StartDate  time.Time       `gorm:"type:date;not null;column:start_date"`
	EndDate    time.Time       `gorm:"type:date;not null;column:end_date"`
	AlertDays  int             `gorm:"not null;default:10;column:alert_days"`
	Notes      string          `gorm:"type:text;column:notes"`
	IsActive   bool            `gorm:"not null;default:true;column:is_active"`
	CreatedAt  time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt  time.Time       `gorm:"not null;column:updated_at"`
}

func (loanDB) TableName() string {
	return "loans"
}

func toDomainLoan(ldb *loanDB) (*loan.Loan, error) {
	id, err := pkg.ParseULID(ldb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(ldb.UserId)
	if err != nil {
		return nil, err
	}

	return &loan.Loan{
		Id:         id,
		UserId:     userID,
		Name:       ldb.Name,
		Amount:     ldb.Amount,
		PaymentDay: ldb.PaymentDay,
		StartDate:  ldb.StartDate,
		EndDate:    ldb.EndDate,
		AlertDays:  ldb.AlertDays,
		Notes:      ldb.Notes,
		IsActive:   ldb.IsActive,
		CreatedAt:  ldb.CreatedAt,
		UpdatedAt:  ldb.UpdatedAt,
	}, nil
}

func toDBLoan(l *loan.Loan) *loanDB {
	return &loanDB{
		Id:         l.Id.String(),
		UserId:     l.UserId.String(),
		Name:       l.Name,
		Amount:     l.Amount,
		PaymentDay: l.PaymentDay,
		StartDate:  l.StartDate,
		EndDate:    l.EndDate,
		AlertDays:  l.AlertDays,
		Notes:      l.Notes,
		IsActive:   l.IsActive,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) error {
	return r.DB.WithContext(ctx).Table("loans").Create(toDBLoan(l)).Error
}

func (r *LoanRepository) Update(ctx context.Context, l *loan.Loan) error {
	ldb := toDBLoan(l)
	return r.DB.WithContext(ctx).Table("loans").
		Where("id = ? AND user_id = ?", ldb.Id, ldb.UserId).
		Select("*").Omit("created_at").
		Updates(ldb).Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", loanID.String(), userID.String()).Delete(&loanDB{}).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, loanID, userID ulid.ULID) (*loan.Loan, error) {
	row, err := query.New[loanDB](r.DB, "loans").
		Context(ctx).
		Where("id = ? AND user_id = ?", loanID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainLoan(row)
}

func (r *LoanRepository) List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*loan.Loan], error) {
	q := query.New[loanDB](r.DB, "loans").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("is_active DESC, payment_day, created_at DESC")
	return query.Paginate(q, page, toDomainLoan)
}

func activeLoans(ctx context.Context, db *gorm.DB, userID ulid.ULID) ([]*loan.Loan, error) {
	q := query.New[loanDB](db, "loans").
		Context(ctx).
		Where("user_id = ? AND is_active = ?", userID.String(), true).
		Order("payment_day, id")
	return query.ExecuteAll(q, toDomainLoan)
}
