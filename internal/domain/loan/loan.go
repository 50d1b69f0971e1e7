package loan

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const DefaultAlertDays = 10

// Loan is a fixed monthly payment between two dates.
type Loan struct {
	Id         ulid.ULID       `json:"id"`
	UserId     ulid.ULID       `json:"userId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	PaymentDay int             `json:"paymentDay"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	AlertDays  int             `json:"alertDays"`
	Notes      string          `json:"notes"`
	IsActive   bool            `json:"isActive"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (l *Loan) IsOpenEnded() bool {
	return !l.EndDate.Before(calendar.OpenEnded)
}

// DueIn reports whether the loan payment is owed inside the period: the loan
// must be running during the period and its payment day must fall within it.
func (l *Loan) DueIn(p calendar.Period) bool {
	if !l.IsActive {
		return false
	}
	if _, ok := p.DateForDay(l.PaymentDay); !ok {
		return false
	}
	return p.Overlaps(l.StartDate, l.EndDate)
}

// RunningOn reports whether date lies between the start and end dates.
func (l *Loan) RunningOn(date time.Time) bool {
	d := calendar.Truncate(date)
	return !d.Before(calendar.Truncate(l.StartDate)) && !d.After(calendar.Truncate(l.EndDate))
}

type CreateLoanRequest struct {
	UserId     ulid.ULID
	Name       string
	Amount     decimal.Decimal
	PaymentDay int
	StartDate  time.Time
	EndDate    *time.Time
	AlertDays  *int
	Notes      string
}

type UpdateLoanRequest struct {
	Name      *string
	Amount    *decimal.Decimal
	EndDate   *time.Time
	AlertDays *int
	Notes     *string
	IsActive  *bool
}
