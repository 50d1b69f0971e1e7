package projection

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
)

// BiweeklyHorizon sizes a biweekly projection so it covers the last known
// obligation: two periods per month until the latest loan end or final
// installment, plus two, bounded by [min, max]. Open-ended loans do not
// extend the horizon.
func BiweeklyHorizon(s *Snapshot, now time.Time, min, max int) int {
	today := calendar.Truncate(now)
	latest := today

	for _, l := range s.Loans {
		if !l.IsActive || l.IsOpenEnded() {
			continue
		}
		if l.EndDate.After(latest) {
			latest = l.EndDate
		}
	}

	for _, p := range s.Purchases {
		if !p.IsActive || p.PeriodsRemaining <= 0 {
			continue
		}
		if end := p.ExpectedEnd(); end.After(latest) {
			latest = end
		}
	}

	for _, card := range s.Cards {
		for _, ch := range card.Charges {
			if !ch.IsActive || ch.Kind != creditcard.ChargeKindInstallment {
				continue
			}
			if end := ch.Plan().LastPaymentMonth(); end.After(latest) {
				latest = end
			}
		}
	}

	n := calendar.MonthsBetween(today, latest)*2 + 2
	if n < min {
		n = min
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}
