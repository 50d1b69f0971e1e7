package installment

import (
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/shopspring/decimal"
)

// Plan is an interest-free installment schedule: Term monthly payments, the
// first one in the month of FirstPayment.
type Plan struct {
	FirstPayment time.Time
	Term         int
}

// Elapsed counts months from the first payment to paymentDate.
func (p Plan) Elapsed(paymentDate time.Time) int {
	return calendar.MonthsBetween(p.FirstPayment, paymentDate)
}

// ActiveAt reports whether a payment falling on paymentDate is part of the plan.
func (p Plan) ActiveAt(paymentDate time.Time) bool {
	elapsed := p.Elapsed(paymentDate)
	return elapsed >= 0 && elapsed < p.Term
}

// LastPaymentMonth is the first day of the month holding the final payment.
func (p Plan) LastPaymentMonth() time.Time {
	return calendar.FirstOfMonth(p.FirstPayment).AddDate(0, p.Term-1, 0)
}

// MonthlyPayment splits price into term payments rounded to cents.
func MonthlyPayment(price decimal.Decimal, term int) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, appErrors.NewValidationError("price", "deve ser maior que zero")
	}
	if term <= 0 {
		return decimal.Zero, appErrors.NewValidationError("term", "deve ser maior que zero")
	}
	return price.Div(decimal.NewFromInt(int64(term))).Round(2), nil
}

// PayAhead settles n future installments. It returns the remaining count and
// whether the plan is now fully paid.
func PayAhead(remaining, n int) (int, bool, error) {
	if n < 1 {
		return remaining, false, appErrors.NewValidationError("installments", "deve ser pelo menos 1")
	}
	if remaining <= 0 {
		return remaining, true, appErrors.NewValidationError("installments", "não há parcelas restantes")
	}
	if n > remaining {
		return remaining, false, appErrors.NewValidationError("installments", "excede as parcelas restantes")
	}
	left := remaining - n
	return left, left == 0, nil
}
