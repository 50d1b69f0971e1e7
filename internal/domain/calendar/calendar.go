package calendar

import (
	"fmt"
	"time"
)

type Granularity string

const (
	GranularityMonthly  Granularity = "MONTHLY"
	GranularityBiweekly Granularity = "BIWEEKLY"
)

// Kind distinguishes the two alternating biweekly windows.
type Kind int

const (
	KindMonth Kind = iota
	// KindCrossMonth runs from the second payday up to the day before the first
	// payday of the following month.
	KindCrossMonth
	// KindInMonth runs from the first payday up to the day before the second one.
	KindInMonth
)

// OpenEnded is the end date stored for items without a planned end.
var OpenEnded = Date(2099, time.December, 31)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

var shortMonthNames = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez",
}

type Period struct {
	Index int
	Kind  Kind
	Label string
	// Key identifies the calendar month of the period start ("2006-01").
	Key   string
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day inside the period.
func (p Period) Contains(t time.Time) bool {
	d := Truncate(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// DateForDay returns the date inside the period on which a monthly payment
// scheduled for the given day of month falls. Days past the end of a month are
// clamped to its last day.
func (p Period) DateForDay(day int) (time.Time, bool) {
	for m := FirstOfMonth(p.Start); !m.After(p.End); m = m.AddDate(0, 1, 0) {
		candidate := Date(m.Year(), m.Month(), day)
		if p.Contains(candidate) {
			return candidate, true
		}
	}
	return time.Time{}, false
}

// Overlaps reports whether [start, end] shares at least one day with the period.
func (p Period) Overlaps(start, end time.Time) bool {
	return !Truncate(start).After(p.End) && !Truncate(end).Before(p.Start)
}

func (p Period) Month() time.Time {
	return FirstOfMonth(p.Start)
}

// Date builds a UTC date, snapping day to the last valid day of the month.
func Date(year int, month time.Month, day int) time.Time {
	if last := DaysIn(year, month); day > last {
		day = last
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Truncate drops the clock part of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func LastOfMonth(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), 31)
}

// AddMonths moves t by n calendar months, clamping the day instead of rolling
// over into the following month.
func AddMonths(t time.Time, n int) time.Time {
	first := FirstOfMonth(t).AddDate(0, n, 0)
	return Date(first.Year(), first.Month(), t.Day())
}

// MonthsBetween counts calendar months from the month of "from" to the month of "to".
func MonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}

func MonthName(t time.Time) string {
	return monthNames[t.Month()-1]
}

func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t), t.Year())
}

func shortDay(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), shortMonthNames[t.Month()-1])
}
