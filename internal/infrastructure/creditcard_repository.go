package infrastructure

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreditCardRepository struct {
	DB *gorm.DB
}

var _ creditcard.Repository = (*CreditCardRepository)(nil)

type creditCardDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey;column:id"`
	UserId      string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	Name        string          `gorm:"type:varchar(100);not null;column:name"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:credit_limit"`
	ClosingDay  int             `gorm:"not null;column:closing_day"`
	DueDay      int             `gorm:"not null;column:due_day"`
	IsActive    bool            `gorm:"not null;default:true;column:is_active"`
	CreatedAt   time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time       `gorm:"not null;column:updated_at"`
}

func (creditCardDB) TableName() string {
	return "credit_cards"
}

type cardChargeDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey;column:id"`
	CreditCardId     string          `gorm:"type:varchar(26);index;not null;column:credit_card_id"`
	UserId           string          `gorm:"type:varchar(26);index;not null;column:user_id"`
	Date             time.Time       `gorm:"type:date;not null;column:date"`
	Description      string          `gorm:"type:varchar(255);column:description"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount"`
	Kind             string          `gorm:"type:varchar(15);not null;column:kind"`
	Term             int             `gorm:"not null;default:0;column:term"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:monthly_payment"`
	PeriodsRemaining int             `gorm:"not null;default:0;column:periods_remaining"`
	IsActive         bool            `gorm:"not null;default:true;column:is_active"`
	CreatedAt        time.Time       `gorm:"not null;column:created_at"`
	UpdatedAt        time.Time       `gorm:"not null;column:updated_at"`
}

func (cardChargeDB) TableName() string {
	return "card_charges"
}

func toDomainCreditCard(ccdb *creditCardDB) (*creditcard.CreditCard, error) {
	id, err := pkg.ParseULID(ccdb.Id)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(ccdb.UserId)
	if err != nil {
		return nil, err
	}

	return &creditcard.CreditCard{
		Id:          id,
		UserId:      uid,
		Name:        ccdb.Name,
		CreditLimit: ccdb.CreditLimit,
		ClosingDay:  ccdb.ClosingDay,
		DueDay:      ccdb.DueDay,
		IsActive:    ccdb.IsActive,
		CreatedAt:   ccdb.CreatedAt,
		UpdatedAt:   ccdb.UpdatedAt,
	}, nil
}

func toDBCreditCard(cc *creditcard.CreditCard) *creditCardDB {
	return &creditCardDB{
		Id:          cc.Id.String(),
		UserId:      cc.UserId.String(),
		Name:        cc.Name,
		CreditLimit: cc.CreditLimit,
		ClosingDay:  cc.ClosingDay,
		DueDay:      cc.DueDay,
		IsActive:    cc.IsActive,
		CreatedAt:   cc.CreatedAt,
		UpdatedAt:   cc.UpdatedAt,
	}
}

func toDomainCharge(cdb *cardChargeDB) (*creditcard.Charge, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}
	ccid, err := pkg.ParseULID(cdb.CreditCardId)
	if err != nil {
		return nil, err
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, err
	}

	return &creditcard.Charge{
		Id:               id,
		CreditCardId:     ccid,
		UserId:           uid,
		Date:             cdb.Date,
		Description:      cdb.Description,
		Amount:           cdb.Amount,
		Kind:             creditcard.ChargeKind(cdb.Kind),
		Term:             cdb.Term,
		MonthlyPayment:   cdb.MonthlyPayment,
		PeriodsRemaining: cdb.PeriodsRemaining,
		IsActive:         cdb.IsActive,
		CreatedAt:        cdb.CreatedAt,
		UpdatedAt:        cdb.UpdatedAt,
	}, nil
}

func toDBCharge(c *creditcard.Charge) *cardChargeDB {
	return &cardChargeDB{
		Id:               c.Id.String(),
		CreditCardId:     c.CreditCardId.String(),
		UserId:           c.UserId.String(),
		Date:             c.Date,
		Description:      c.Description,
		Amount:           c.Amount,
		Kind:             string(c.Kind),
		Term:             c.Term,
		MonthlyPayment:   c.MonthlyPayment,
		PeriodsRemaining: c.PeriodsRemaining,
		IsActive:         c.IsActive,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *CreditCardRepository) CreateCreditCard(ctx context.Context, cc *creditcard.CreditCard) error {
	return r.DB.WithContext(ctx).Table("credit_cards").Create(toDBCreditCard(cc)).Error
}

func (r *CreditCardRepository) UpdateCreditCard(ctx context.Context, cc *creditcard.CreditCard) error {
	ccdb := toDBCreditCard(cc)
	return r.DB.WithContext(ctx).Table("credit_cards").
		Where("id = ? AND user_id = ?", ccdb.Id, ccdb.UserId).
		Select("*").Omit("created_at").
		Updates(ccdb).Error
}

// DeleteCreditCard removes the card together with its charges.
func (r *CreditCardRepository) DeleteCreditCard(ctx context.Context, cardID, userID ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("credit_card_id = ? AND user_id = ?", cardID.String(), userID.String()).
			Delete(&cardChargeDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", cardID.String(), userID.String()).Delete(&creditCardDB{}).Error
	})
}

func (r *CreditCardRepository) GetCreditCardById(ctx context.Context, cardID, userID ulid.ULID) (*creditcard.CreditCard, error) {
	row, err := query.New[creditCardDB](r.DB, "credit_cards").
		Context(ctx).
		Where("id = ? AND user_id = ?", cardID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainCreditCard(row)
}

func (r *CreditCardRepository) ListCreditCards(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*creditcard.CreditCard], error) {
	q := query.New[creditCardDB](r.DB, "credit_cards").
		Context(ctx).
		Where("user_id = ?", userID.String()).
		Order("is_active DESC, name")
	return query.Paginate(q, page, toDomainCreditCard)
}

func (r *CreditCardRepository) CreateCharge(ctx context.Context, c *creditcard.Charge) error {
	return r.DB.WithContext(ctx).Table("card_charges").Create(toDBCharge(c)).Error
}

func (r *CreditCardRepository) UpdateCharge(ctx context.Context, c *creditcard.Charge) error {
	cdb := toDBCharge(c)
	return r.DB.WithContext(ctx).Table("card_charges").
		Where("id = ? AND user_id = ?", cdb.Id, cdb.UserId).
		Select("*").Omit("created_at").
		Updates(cdb).Error
}

func (r *CreditCardRepository) GetChargeById(ctx context.Context, chargeID, userID ulid.ULID) (*creditcard.Charge, error) {
	row, err := query.New[cardChargeDB](r.DB, "card_charges").
		Context(ctx).
		Where("id = ? AND user_id = ?", chargeID.String(), userID.String()).
		First()
	if err != nil {
		return nil, err
	}
	return toDomainCharge(row)
}

func (r *CreditCardRepository) ListCharges(ctx context.Context, cardID, userID ulid.ULID, page query.Page) (*query.Result[*creditcard.Charge], error) {
	q := query.New[cardChargeDB](r.DB, "card_charges").
		Context(ctx).
		Where("credit_card_id = ? AND user_id = ?", cardID.String(), userID.String()).
		Order("date DESC, created_at DESC")
	return query.Paginate(q, page, toDomainCharge)
}

// activeCards loads the active cards of a user with their active charges attached.
func activeCards(ctx context.Context, db *gorm.DB, userID ulid.ULID) ([]*creditcard.CreditCard, error) {
	cards, err := query.ExecuteAll(
		query.New[creditCardDB](db, "credit_cards").
			Context(ctx).
			Where("user_id = ? AND is_active = ?", userID.String(), true).
			Order("name, id"),
		toDomainCreditCard,
	)
	if err != nil {
		return nil, err
	}

	charges, err := query.ExecuteAll(
		query.New[cardChargeDB](db, "card_charges").
			Context(ctx).
			Where("user_id = ? AND is_active = ?", userID.String(), true).
			Order("date, id"),
		toDomainCharge,
	)
	if err != nil {
		return nil, err
	}

	byCard := make(map[ulid.ULID]*creditcard.CreditCard, len(cards))
	for _, card := range cards {
		byCard[card.Id] = card
	}
	for _, ch := range charges {
		if card, ok := byCard[ch.CreditCardId]; ok {
			card.Charges = append(card.Charges, ch)
		}
	}
	return cards, nil
}
