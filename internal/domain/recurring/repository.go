package recurring

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, income *RecurringIncome) error
	Update(ctx context.Context, income *RecurringIncome) error
	Delete(ctx context.Context, incomeID, userID ulid.ULID) error
	GetByID(ctx context.Context, incomeID, userID ulid.ULID) (*RecurringIncome, error)
	List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*RecurringIncome], error)
	ListActive(ctx context.Context, userID ulid.ULID) ([]*RecurringIncome, error)
}
