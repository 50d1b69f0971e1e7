package ledger

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

// Entry is a realized movement of money. Entries only feed the current
// balance; projections never read them individually.
type Entry struct {
	Id          ulid.ULID       `json:"id"`
	UserId      ulid.ULID       `json:"userId"`
	Kind        Kind            `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Totals aggregates every entry of a user.
type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expenses)
}

type CreateEntryRequest struct {
	UserId      ulid.ULID
	Kind        Kind
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

type ListFilter struct {
	Kind *Kind
	From *time.Time
	To   *time.Time
}

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, entryID, userID ulid.ULID) error
	GetByID(ctx context.Context, entryID, userID ulid.ULID) (*Entry, error)
	List(ctx context.Context, userID ulid.ULID, filter ListFilter, page query.Page) (*query.Result[*Entry], error)
	Totals(ctx context.Context, userID ulid.ULID) (Totals, error)
}
