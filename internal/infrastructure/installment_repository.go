package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InstallmentRepository struct {
	DB *gorm.DB
}

var _ installment.Repository = (*InstallmentRepository)(nil)

type installmentPurchaseDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId           string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	Product          string          `gorm:"type:varchar(150);not null;column:product"`
	Price            decimal.Decimal `gorm:"type:decimal(15,2);not null;column:price"`
	Term             int             `gorm:"not null;column:term"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(15,2);not null;column:monthly_payment"`
	FirstPaymentDate time.Time       `gorm:"type:date;not null;column:first_payment_date"`
	PeriodsRemaining int             `gorm:"not null;column:periods_remaining"`
	PaymentDay       int             `gorm:"not null;default:15;column:payment_day"`
	AlertDays        int             `gorm:"not null;default:10;column:alert_days"`
	IsActive         bool            `gorm:"not null;default:true;column:is_active"`
	CreatedAt        time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt        time.Time       `gorm:"not null;column:updated_at"`
}

func (installmentPurchaseDB) TableName() string {
	return "installment_purchases"
}

func toDomainPurchase(pdb *installmentPurchaseDB) (*installment.Purchase, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(pdb.UserId)
	if err != nil {
		return nil, err
	}

	return &installment.Purchase{
		Id:               id,
		UserId:           userID,
		Product:          pdb.Product,
		Price:            pdb.Price,
		Term:             pdb.Term,
		MonthlyPayment:   pdb.MonthlyPayment,
		FirstPaymentDate: pdb.FirstPaymentDate,
		PeriodsRemaining: pdb.PeriodsRemaining,
		PaymentDay:       pdb.PaymentDay,
		AlertDays:        pdb.AlertDays,
		IsActive:         pdb.IsActive,
		CreatedAt:        pdb.CreatedAt,
		UpdatedAt:        pdb.UpdatedAt,
	}, nil
}

func toDBPurchase(p *installment.Purchase) *installmentPurchaseDB {
	return &installmentPurchaseDB{
		Id:               p.Id.String(),
		UserId:           p.UserId.String(),
		Product:          p.Product,
		Price:            p.Price,
		Term:             p.Term,
		MonthlyPayment:   p.MonthlyPayment,
		FirstPaymentDate: p.FirstPaymentDate,
		PeriodsRemaining: p.PeriodsRemaining,
		PaymentDay:       p.PaymentDay,
		AlertDays:        p.AlertDays,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (r *InstallmentRepository) Create(ctx context.Context, p *installment.Purchase) error {
	return r.DB.WithContext(ctx).Table("installment_purchases").Create(toDBPurchase(p)).Error
}

func (r *InstallmentRepository) Update(ctx context.Context, p *installment.Purchase) error {
	pdb := toDBPurchase(p)
	return r.DB.WithContext(ctx).Table("installment_purchases").
		Where("id = ? AND user_id = ?", pdb.Id, pdb.UserId).
		Select("*").Omit("created_at").
		Updates(pdb).Error
}

func (r *InstallmentRepository) Delete(ctx context.Context, purchaseID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", purchaseID.String(), userID.String()).Delete(&installmentPurchaseDB{}).Error
}

func (r *InstallmentRepository) GetByID(ctx context.Context, purchaseID, userID ulid.ULID) (*installment.Purchase, error) {
	row, err := query.New[installmentPurchaseDB](r.DB, "installment_purchases").
		Context(ctx).
		Where("id = ? AND user_id = ?", purchaseID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainPurchase(row)
}

func (r *InstallmentRepository) List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*installment.Purchase], error) {
	q := query.New[installmentPurchaseDB](r.DB, "installment_purchases").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("is_active DESC, first_payment_date DESC")
	return query.Paginate(q, page, toDomainPurchase)
}

func activePurchases(ctx context.Context, db *gorm.DB, userID ulid.ULID) ([]*installment.Purchase, error) {
	q := query.New[installmentPurchaseDB](db, "installment_purchases").
		Context(ctx).
		Where("user_id = ? AND is_active = ? AND periods_remaining > 0", userID.String(), true).
		Order("first_payment_date, id")
	return query.ExecuteAll(q, toDomainPurchase)
}
