package creditcard

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	CreateCreditCard(ctx context.Context, card *CreditCard) error
	UpdateCreditCard(ctx context.Context, card *CreditCard) error
	DeleteCreditCard(ctx context.Context, cardID, userID ulid.ULID) error
	GetCreditCardById(ctx context.Context, cardID, userID ulid.ULID) (*CreditCard, error)
	ListCreditCards(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*CreditCard], error)

	CreateCharge(ctx context.Context, charge *Charge) error
	UpdateCharge(ctx context.Context, charge *Charge) error
	GetChargeById(ctx context.Context, chargeID, userID ulid.ULID) (*Charge, error)
	ListCharges(ctx context.Context, cardID, userID ulid.ULID, page query.Page) (*query.Result[*Charge], error)
}
