package recurring

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type RecurringIncome struct {
	Id            ulid.ULID       `json:"id"`
	UserId        ulid.ULID       `json:"userId"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDay    int             `json:"paymentDay"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	Frequency     Frequency       `json:"frequency"`
	SpecificMonth *int            `json:"specificMonth,omitempty"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

func (r *RecurringIncome) IsOpenEnded() bool {
	return !r.EndDate.Before(calendar.OpenEnded)
}

type Frequency string

const (
	FrequencyWeekly     Frequency = "WEEKLY"
	FrequencyBiweekly   Frequency = "BIWEEKLY"
	FrequencyMonthly    Frequency = "MONTHLY"
	FrequencyBimonthly  Frequency = "BIMONTHLY"
	FrequencyQuarterly  Frequency = "QUARTERLY"
	FrequencySemiannual Frequency = "SEMIANNUAL"
	FrequencyAnnual     Frequency = "ANNUAL"
)

// Frequencies lists every supported frequency.
var Frequencies = []Frequency{
	FrequencyWeekly,
	FrequencyBiweekly,
	FrequencyMonthly,
	FrequencyBimonthly,
	FrequencyQuarterly,
	FrequencySemiannual,
	FrequencyAnnual,
}

func (f Frequency) IsValid() bool {
	_, ok := disbursementRules[f]
	return ok
}

type CreateIncomeRequest struct {
	UserId        ulid.ULID
	Name          string
	Amount        decimal.Decimal
	PaymentDay    int
	StartDate     time.Time
	EndDate       *time.Time
	Frequency     Frequency
	SpecificMonth *int
}

type UpdateIncomeRequest struct {
	Name     *string
	Amount   *decimal.Decimal
	EndDate  *time.Time
	IsActive *bool
}
