package installment

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentDay = 15
	DefaultAlertDays  = 10
)

// Purchase is an installment purchase registered without a card.
type Purchase struct {
	Id               ulid.ULID       `json:"id"`
	UserId           ulid.ULID       `json:"userId"`
	Product          string          `json:"product"`
	Price            decimal.Decimal `json:"price"`
	Term             int             `json:"term"`
	MonthlyPayment   decimal.Decimal `json:"monthlyPayment"`
	FirstPaymentDate time.Time       `json:"firstPaymentDate"`
	PeriodsRemaining int             `json:"periodsRemaining"`
	PaymentDay       int             `json:"paymentDay"`
	AlertDays        int             `json:"alertDays"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (p *Purchase) Plan() Plan {
	return Plan{FirstPayment: p.FirstPaymentDate, Term: p.Term}
}

// DueIn returns the installment owed inside the period, or zero.
func (p *Purchase) DueIn(period calendar.Period) decimal.Decimal {
	if !p.IsActive {
		return decimal.Zero
	}
	date, ok := period.DateForDay(p.PaymentDay)
	if !ok || !p.Plan().ActiveAt(date) {
		return decimal.Zero
	}
	return p.MonthlyPayment
}

// ExpectedEnd is the month after the last outstanding installment.
func (p *Purchase) ExpectedEnd() time.Time {
	return calendar.AddMonths(p.FirstPaymentDate, p.PeriodsRemaining)
}

type CreatePurchaseRequest struct {
	UserId           ulid.ULID
	Product          string
	Price            decimal.Decimal
	Term             int
	FirstPaymentDate time.Time
	PaymentDay       *int
	AlertDays        *int
}
