package obligation

import (
	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/creditcard"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Breakdown splits the dues of one period by source.
type Breakdown struct {
	Loans            decimal.Decimal `json:"loans"`
	CardCurrent      decimal.Decimal `json:"cardCurrent"`
	CardInstallments decimal.Decimal `json:"cardInstallments"`
	Purchases        decimal.Decimal `json:"purchases"`
}

func (b Breakdown) Total() decimal.Decimal {
	return pkg.SumDecimals(b.Loans, b.CardCurrent, b.CardInstallments, b.Purchases)
}

// Resolver sums the dues of loans, cards and installment purchases per period.
// A Resolver carries per-run state in biweekly mode and must not be reused
// across projections.
type Resolver struct {
	loans     []*loan.Loan
	cards     []*creditcard.CreditCard
	purchases []*installment.Purchase

	charged map[ulid.ULID]struct{}
}

func NewResolver(loans []*loan.Loan, cards []*creditcard.CreditCard, purchases []*installment.Purchase) *Resolver {
	return &Resolver{
		loans:     loans,
		cards:     cards,
		purchases: purchases,
		charged:   make(map[ulid.ULID]struct{}),
	}
}

// Monthly treats each card's current-cycle spend as a flat monthly due.
func (r *Resolver) Monthly(p calendar.Period) Breakdown {
	b := r.common(p)
	for _, card := range r.cards {
		if !card.IsActive {
			continue
		}
		b.CardCurrent = b.CardCurrent.Add(card.CurrentBalance())
	}
	return b
}

// Biweekly charges each card's current-cycle balance once, in the first period
// holding the card's payment day.
func (r *Resolver) Biweekly(p calendar.Period) Breakdown {
	b := r.common(p)
	for _, card := range r.cards {
		if !card.IsActive {
			continue
		}
		if _, done := r.charged[card.Id]; done {
			continue
		}
		if _, ok := card.PaymentDateIn(p); !ok {
			continue
		}
		b.CardCurrent = b.CardCurrent.Add(card.CurrentBalance())
		r.charged[card.Id] = struct{}{}
	}
	return b
}

func (r *Resolver) common(p calendar.Period) Breakdown {
	b := Breakdown{
		Loans:            decimal.Zero,
		CardCurrent:      decimal.Zero,
		CardInstallments: decimal.Zero,
		Purchases:        decimal.Zero,
	}

	for _, l := range r.loans {
		if l.DueIn(p) {
			b.Loans = b.Loans.Add(l.Amount)
		}
	}

	for _, card := range r.cards {
		if !card.IsActive {
			continue
		}
		if date, ok := card.PaymentDateIn(p); ok {
			b.CardInstallments = b.CardInstallments.Add(card.InstallmentsDueOn(date))
		}
	}

	for _, purchase := range r.purchases {
		b.Purchases = b.Purchases.Add(purchase.DueIn(p))
	}

	return b
}
