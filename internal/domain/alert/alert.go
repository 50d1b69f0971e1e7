package alert

import (
	"sort"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/domain/projection"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindLoan        Kind = "LOAN"
	KindInstallment Kind = "INSTALLMENT"
)

type Urgency string

const (
	UrgencyUrgent    Urgency = "URGENT"
	UrgencySoon      Urgency = "SOON"
	UrgencyScheduled Urgency = "SCHEDULED"
)

// lookahead is how many months, starting with the current one, are searched
// for the next payment of an item.
const lookahead = 3

type Alert struct {
	Kind          Kind            `json:"kind"`
	SourceId      ulid.ULID       `json:"sourceId"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	DaysRemaining int             `json:"daysRemaining"`
	Urgency       Urgency         `json:"urgency"`
	Notes         string          `json:"notes,omitempty"`
}

func UrgencyFor(days int) Urgency {
	switch {
	case days <= 2:
		return UrgencyUrgent
	case days <= 5:
		return UrgencySoon
	default:
		return UrgencyScheduled
	}
}

// Upcoming lists the next payment of every active loan and installment
// purchase that falls within the item's own alert window, nearest first.
func Upcoming(s *projection.Snapshot, now time.Time) []Alert {
	today := calendar.Truncate(now)
	alerts := make([]Alert, 0)

	for _, l := range s.Loans {
		if !l.IsActive || !l.RunningOn(today) {
			continue
		}
		date, days, ok := nextPayment(today, l.PaymentDay, windowOrDefault(l.AlertDays, loan.DefaultAlertDays))
		if !ok {
			continue
		}
		alerts = append(alerts, Alert{
			Kind:          KindLoan,
			SourceId:      l.Id,
			Name:          l.Name,
			Amount:        l.Amount,
			DueDate:       date,
			DaysRemaining: days,
			Urgency:       UrgencyFor(days),
			Notes:         l.Notes,
		})
	}

	for _, p := range s.Purchases {
		if !p.IsActive || p.PeriodsRemaining <= 0 {
			continue
		}
		day := p.PaymentDay
		if day == 0 {
			day = installment.DefaultPaymentDay
		}
		date, days, ok := nextPayment(today, day, windowOrDefault(p.AlertDays, installment.DefaultAlertDays))
		if !ok {
			continue
		}
		alerts = append(alerts, Alert{
			Kind:          KindInstallment,
			SourceId:      p.Id,
			Name:          p.Product,
			Amount:        p.MonthlyPayment,
			DueDate:       date,
			DaysRemaining: days,
			Urgency:       UrgencyFor(days),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})
	return alerts
}

func nextPayment(today time.Time, day, window int) (time.Time, int, bool) {
	month := calendar.FirstOfMonth(today)
	for i := 0; i < lookahead; i++ {
		m := month.AddDate(0, i, 0)
		date := calendar.Date(m.Year(), m.Month(), day)
		days := int(date.Sub(today).Hours() / 24)
		if days >= 0 && days <= window {
			return date, days, true
		}
	}
	return time.Time{}, 0, false
}

func windowOrDefault(days, fallback int) int {
	if days <= 0 {
		return fallback
	}
	return days
}
