package creditcard

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type CreditCard struct {
	Id          ulid.ULID       `json:"id"`
	UserId      ulid.ULID       `json:"userId"`
	Name        string          `json:"name"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	// ClosingDay is the statement cutoff; DueDay the estimated payment day.
	ClosingDay int       `json:"closingDay"`
	DueDay     int       `json:"dueDay"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Charges []*Charge `json:"charges,omitempty"`
}

// CurrentBalance sums the active non-installment charges of the cycle.
func (c *CreditCard) CurrentBalance() decimal.Decimal {
	total := decimal.Zero
	for _, ch := range c.Charges {
		if ch.IsActive && ch.Kind == ChargeKindCurrent {
			total = total.Add(ch.Amount)
		}
	}
	return total
}

// InstallmentsDueOn sums the installment payments falling on paymentDate.
func (c *CreditCard) InstallmentsDueOn(paymentDate time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, ch := range c.Charges {
		if ch.IsActive && ch.Kind == ChargeKindInstallment && ch.Plan().ActiveAt(paymentDate) {
			total = total.Add(ch.MonthlyPayment)
		}
	}
	return total
}

// PaymentDateIn returns the day the card bill is paid inside the period.
func (c *CreditCard) PaymentDateIn(p calendar.Period) (time.Time, bool) {
	return p.DateForDay(c.DueDay)
}

type CreateCreditCardRequest struct {
	UserId      ulid.ULID
	Name        string
	CreditLimit decimal.Decimal
	ClosingDay  int
	DueDay      int
}

type UpdateCreditCardRequest struct {
	Name        *string
	CreditLimit *decimal.Decimal
	ClosingDay  *int
	DueDay      *int
	IsActive    *bool
}
