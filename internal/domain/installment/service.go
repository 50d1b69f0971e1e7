package installment

import (
	"context"
	"strings"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository Repository
}

func (s *Service) CreatePurchase(ctx context.Context, req *CreatePurchaseRequest) (*Purchase, error) {
	if strings.TrimSpace(req.Product) == "" {
		return nil, appErrors.NewValidationError("product", "é obrigatório")
	}

	payment, err := MonthlyPayment(req.Price, req.Term)
	if err != nil {
		return nil, err
	}

	if req.FirstPaymentDate.IsZero() {
		return nil, appErrors.NewValidationError("first_payment_date", "é obrigatória")
	}
	first := calendar.Truncate(req.FirstPaymentDate)

	paymentDay := first.Day()
	if req.PaymentDay != nil {
		if *req.PaymentDay < 1 || *req.PaymentDay > 31 {
			return nil, appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
		}
		paymentDay = *req.PaymentDay
	}

	alertDays := DefaultAlertDays
	if req.AlertDays != nil {
		if *req.AlertDays < 0 {
			return nil, appErrors.NewValidationError("alert_days", "não pode ser negativo")
		}
		alertDays = *req.AlertDays
	}

	now := time.Now()
	purchase := &Purchase{
		Id:               pkg.GenerateULIDObject(),
		UserId:           req.UserId,
		Product:          strings.TrimSpace(req.Product),
		Price:            req.Price,
		Term:             req.Term,
		MonthlyPayment:   payment,
		FirstPaymentDate: first,
		PeriodsRemaining: req.Term,
		PaymentDay:       paymentDay,
		AlertDays:        alertDays,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repository.Create(ctx, purchase); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return purchase, nil
}

// PayAhead registers an early payment of n installments. The purchase is
// deactivated once nothing remains.
func (s *Service) PayAhead(ctx context.Context, purchaseID, userID ulid.ULID, n int) (*Purchase, error) {
	purchase, err := s.GetPurchase(ctx, purchaseID, userID)
	if err != nil {
		return nil, err
	}

	remaining, done, err := PayAhead(purchase.PeriodsRemaining, n)
	if err != nil {
		return nil, err
	}

	purchase.PeriodsRemaining = remaining
	if done {
		purchase.IsActive = false
	}
	purchase.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, purchase); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return purchase, nil
}

func (s *Service) DeletePurchase(ctx context.Context, purchaseID, userID ulid.ULID) error {
	if _, err := s.GetPurchase(ctx, purchaseID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, purchaseID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetPurchase(ctx context.Context, purchaseID, userID ulid.ULID) (*Purchase, error) {
	purchase, err := s.Repository.GetByID(ctx, purchaseID, userID)
	if err != nil {
		return nil, appErrors.ErrPurchaseNotFound.WithError(err)
	}
	if purchase.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}
	return purchase, nil
}

func (s *Service) ListPurchases(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Purchase], error) {
	result, err := s.Repository.List(ctx, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}
