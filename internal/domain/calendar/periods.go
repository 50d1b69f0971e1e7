package calendar

import (
	"fmt"
	"time"

	appErrors "github.com/Nojands/FinanzApp/internal/errors"
)

const (
	DefaultPayday1 = 15
	DefaultPayday2 = 30
)

// Paydays are the two day-of-month anchors bounding biweekly periods.
// First is always smaller than Second.
type Paydays struct {
	First  int
	Second int
}

func DefaultPaydays() Paydays {
	return Paydays{First: DefaultPayday1, Second: DefaultPayday2}
}

// NewPaydays validates both anchors and orders them.
func NewPaydays(a, b int) (Paydays, error) {
	if a < 1 || a > 31 {
		return Paydays{}, appErrors.NewValidationError("payday_1", "deve estar entre 1 e 31")
	}
	if b < 1 || b > 31 {
		return Paydays{}, appErrors.NewValidationError("payday_2", "deve estar entre 1 e 31")
	}
	if a == b {
		return Paydays{}, appErrors.NewValidationError("payday_2", "deve ser diferente do dia de pagamento 1")
	}
	if a > b {
		a, b = b, a
	}
	return Paydays{First: a, Second: b}, nil
}

func (p Paydays) IsAnchor(day int) bool {
	return day == p.First || day == p.Second
}

// Monthly returns n calendar months starting with the month containing now.
func Monthly(now time.Time, n int) []Period {
	periods := make([]Period, 0, n)
	base := FirstOfMonth(Truncate(now))
	for i := 0; i < n; i++ {
		start := base.AddDate(0, i, 0)
		periods = append(periods, Period{
			Index: i,
			Kind:  KindMonth,
			Label: MonthLabel(start),
			Key:   start.Format("2006-01"),
			Start: start,
			End:   LastOfMonth(start),
		})
	}
	return periods
}

// Biweekly returns n alternating biweekly periods; the first one is the period
// containing now. Each period starts the day after the previous one ends.
func Biweekly(now time.Time, n int, paydays Paydays) []Period {
	if n <= 0 {
		return nil
	}

	today := Truncate(now)
	month := FirstOfMonth(today)

	var kind Kind
	var start time.Time
	switch day := today.Day(); {
	case day >= paydays.First && day < paydays.Second:
		kind = KindInMonth
		start = crossMonthEnd(month.AddDate(0, -1, 0), paydays).AddDate(0, 0, 1)
	case day >= paydays.Second:
		kind = KindCrossMonth
		start = inMonthEnd(month, paydays).AddDate(0, 0, 1)
	default:
		kind = KindCrossMonth
		month = month.AddDate(0, -1, 0)
		start = inMonthEnd(month, paydays).AddDate(0, 0, 1)
	}

	periods := make([]Period, 0, n)
	for i := 0; i < n; i++ {
		end := inMonthEnd(month, paydays)
		if kind == KindCrossMonth {
			end = crossMonthEnd(month, paydays)
		}
		if end.Before(start) {
			end = start
		}

		periods = append(periods, Period{
			Index: i,
			Kind:  kind,
			Label: biweeklyLabel(kind, start, end),
			Key:   start.Format("2006-01"),
			Start: start,
			End:   end,
		})

		start = end.AddDate(0, 0, 1)
		if kind == KindCrossMonth {
			kind = KindInMonth
			month = month.AddDate(0, 1, 0)
		} else {
			kind = KindCrossMonth
		}
	}
	return periods
}

// Upcoming drops periods that started on or before now.
func Upcoming(periods []Period, now time.Time) []Period {
	today := Truncate(now)
	out := make([]Period, 0, len(periods))
	for _, p := range periods {
		if p.Start.After(today) {
			out = append(out, p)
		}
	}
	return out
}

func inMonthEnd(month time.Time, paydays Paydays) time.Time {
	return Date(month.Year(), month.Month(), paydays.Second-1)
}

func crossMonthEnd(month time.Time, paydays Paydays) time.Time {
	next := FirstOfMonth(month).AddDate(0, 1, 0)
	if paydays.First == 1 {
		return next.AddDate(0, 0, -1)
	}
	return Date(next.Year(), next.Month(), paydays.First-1)
}

func biweeklyLabel(kind Kind, start, end time.Time) string {
	number := 1
	if kind == KindInMonth {
		number = 2
	}
	return fmt.Sprintf("%s - Quinzena %d (%s - %s)", MonthLabel(start), number, shortDay(start), shortDay(end))
}
