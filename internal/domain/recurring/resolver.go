package recurring

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/shopspring/decimal"
)

// disbursementRule reports whether an income pays out in the month starting at month.
type disbursementRule func(inc *RecurringIncome, month time.Time) bool

// Weekly and biweekly incomes are approximated as one payment per month.
var disbursementRules = map[Frequency]disbursementRule{
	FrequencyWeekly:     everyMonth,
	FrequencyBiweekly:   everyMonth,
	FrequencyMonthly:    everyMonth,
	FrequencyBimonthly:  everyNMonths(2),
	FrequencyQuarterly:  everyNMonths(3),
	FrequencySemiannual: everyNMonths(6),
	FrequencyAnnual:     annual,
}

func everyMonth(*RecurringIncome, time.Time) bool {
	return true
}

func everyNMonths(n int) disbursementRule {
	return func(inc *RecurringIncome, month time.Time) bool {
		elapsed := calendar.MonthsBetween(inc.StartDate, month)
		return elapsed >= 0 && elapsed%n == 0
	}
}

func annual(inc *RecurringIncome, month time.Time) bool {
	if inc.SpecificMonth != nil {
		return int(month.Month()) == *inc.SpecificMonth
	}
	return month.Month() == inc.StartDate.Month()
}

// PaysInMonth applies the frequency rule to the month containing t.
func (r *RecurringIncome) PaysInMonth(t time.Time) bool {
	rule, ok := disbursementRules[r.Frequency]
	if !ok {
		return false
	}
	return rule(r, calendar.FirstOfMonth(t))
}

// ActiveInMonth compares the active range at month granularity.
func (r *RecurringIncome) ActiveInMonth(t time.Time) bool {
	month := calendar.FirstOfMonth(t)
	return !month.Before(calendar.FirstOfMonth(r.StartDate)) && !month.After(calendar.FirstOfMonth(r.EndDate))
}

// AmountForMonth is the contribution of the income to a monthly period.
func (r *RecurringIncome) AmountForMonth(p calendar.Period) decimal.Decimal {
	if !r.IsActive || !r.ActiveInMonth(p.Start) || !r.PaysInMonth(p.Start) {
		return decimal.Zero
	}
	return r.Amount
}

// PaymentIn returns the payment date of the income inside a biweekly period,
// if it pays out there. The active range only has to overlap the period, the
// same rule loans follow.
func (r *RecurringIncome) PaymentIn(p calendar.Period) (time.Time, bool) {
	if !r.IsActive {
		return time.Time{}, false
	}
	date, ok := p.DateForDay(r.PaymentDay)
	if !ok || !p.Overlaps(r.StartDate, r.EndDate) || !r.PaysInMonth(date) {
		return time.Time{}, false
	}
	return date, true
}

// IsOffCycle reports whether the income is paid on a day that is not a payday anchor.
func (r *RecurringIncome) IsOffCycle(paydays calendar.Paydays) bool {
	return !paydays.IsAnchor(r.PaymentDay)
}

func MonthlyIncome(items []*RecurringIncome, p calendar.Period) decimal.Decimal {
	total := decimal.Zero
	for _, inc := range items {
		total = total.Add(inc.AmountForMonth(p))
	}
	return total
}

// BiweeklySchedule computes the income credited to each period. Payments on a
// payday anchor are credited to the period their date falls in; off-cycle
// payments become available one period later. Off-cycle money paid during the
// last period is beyond the horizon and not credited.
func BiweeklySchedule(items []*RecurringIncome, periods []calendar.Period, paydays calendar.Paydays) []decimal.Decimal {
	credited := make([]decimal.Decimal, len(periods))
	for i := range credited {
		credited[i] = decimal.Zero
	}

	for i, p := range periods {
		for _, inc := range items {
			if _, ok := inc.PaymentIn(p); !ok {
				continue
			}
			if !inc.IsOffCycle(paydays) {
				credited[i] = credited[i].Add(inc.Amount)
				continue
			}
			if i+1 < len(periods) {
				credited[i+1] = credited[i+1].Add(inc.Amount)
			}
		}
	}
	return credited
}
