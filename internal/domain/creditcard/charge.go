package creditcard

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/installment"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type ChargeKind string

const (
	ChargeKindCurrent     ChargeKind = "CURRENT"
	ChargeKindInstallment ChargeKind = "INSTALLMENT"
)

func (k ChargeKind) IsValid() bool {
	switch k {
	case ChargeKindCurrent, ChargeKindInstallment:
		return true
	}
	return false
}

// Charge is a purchase made with a card. Installment charges are paid in Term
// monthly payments starting in the month of Date.
type Charge struct {
	Id               ulid.ULID       `json:"id"`
	CreditCardId     ulid.ULID       `json:"creditCardId"`
	UserId           ulid.ULID       `json:"userId"`
	Date             time.Time       `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Kind             ChargeKind      `json:"kind"`
	Term             int             `json:"term,omitempty"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	PeriodsRemaining int             `json:"periodsRemaining,omitempty"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (c *Charge) Plan() installment.Plan {
	return installment.Plan{FirstPayment: c.Date, Term: c.Term}
}

type CreateChargeRequest struct {
	UserId       ulid.ULID
	CreditCardId ulid.ULID
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Kind         ChargeKind
	Term         int
}
