package loan

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, loan *Loan) error
	Update(ctx context.Context, loan *Loan) error
	Delete(ctx context.Context, loanID, userID ulid.ULID) error
	GetByID(ctx context.Context, loanID, userID ulid.ULID) (*Loan, error)
	List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Loan], error)
}
