package installment

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, purchase *Purchase) error
	Update(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, purchaseID, userID ulid.ULID) error
	GetByID(ctx context.Context, purchaseID, userID ulid.ULID) (*Purchase, error)
	List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Purchase], error)
}
