package creditcard

import (
	"context"
	"strings"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/installment"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	Repository Repository
}

func (s *Service) CreateCreditCard(ctx context.Context, req *CreateCreditCardRequest) (*CreditCard, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	card := &CreditCard{
		Id:          pkg.GenerateULIDObject(),
		UserId:      req.UserId,
		Name:        strings.TrimSpace(req.Name),
		CreditLimit: req.CreditLimit,
		ClosingDay:  req.ClosingDay,
		DueDay:      req.DueDay,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repository.CreateCreditCard(ctx, card); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return card, nil
}

func (s *Service) UpdateCreditCard(ctx context.Context, cardID, userID ulid.ULID, req *UpdateCreditCardRequest) (*CreditCard, error) {
	card, err := s.GetCreditCardById(ctx, cardID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "não pode ser vazio")
		}
		card.Name = name
	}

	if req.CreditLimit != nil {
		if req.CreditLimit.IsNegative() {
			return nil, appErrors.NewValidationError("credit_limit", "deve ser maior ou igual a zero")
		}
		card.CreditLimit = *req.CreditLimit
	}

	if req.ClosingDay != nil {
		if !validDay(*req.ClosingDay) {
			return nil, appErrors.NewValidationError("cutoff_day", "deve estar entre 1 e 31")
		}
		card.ClosingDay = *req.ClosingDay
	}

	if req.DueDay != nil {
		if !validDay(*req.DueDay) {
			return nil, appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
		}
		card.DueDay = *req.DueDay
	}

	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}

	card.UpdatedAt = time.Now()

	if err := s.Repository.UpdateCreditCard(ctx, card); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return card, nil
}

func (s *Service) DeleteCreditCard(ctx context.Context, cardID, userID ulid.ULID) error {
	if _, err := s.GetCreditCardById(ctx, cardID, userID); err != nil {
		return err
	}

	if err := s.Repository.DeleteCreditCard(ctx, cardID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetCreditCardById(ctx context.Context, cardID, userID ulid.ULID) (*CreditCard, error) {
	card, err := s.Repository.GetCreditCardById(ctx, cardID, userID)
	if err != nil {
		return nil, appErrors.ErrCreditCardNotFound.WithError(err)
	}

	if card.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return card, nil
}

func (s *Service) ListCreditCards(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*CreditCard], error) {
	result, err := s.Repository.ListCreditCards(ctx, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}

// AddCharge records a purchase on the card. Installment charges get their
// monthly payment and remaining count derived from amount and term.
func (s *Service) AddCharge(ctx context.Context, req *CreateChargeRequest) (*Charge, error) {
	card, err := s.GetCreditCardById(ctx, req.CreditCardId, req.UserId)
	if err != nil {
		return nil, err
	}

	if !card.IsActive {
		return nil, appErrors.NewValidationError("credit_card_id", "cartão inativo")
	}

	if !req.Kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "deve ser CURRENT ou INSTALLMENT")
	}

	if !req.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	date := calendar.Truncate(time.Now())
	if !req.Date.IsZero() {
		date = calendar.Truncate(req.Date)
	}

	now := time.Now()
	charge := &Charge{
		Id:             pkg.GenerateULIDObject(),
		CreditCardId:   card.Id,
		UserId:         req.UserId,
		Date:           date,
		Description:    strings.TrimSpace(req.Description),
		Amount:         req.Amount,
		Kind:           req.Kind,
		MonthlyPayment: decimal.Zero,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if req.Kind == ChargeKindInstallment {
		payment, err := installment.MonthlyPayment(req.Amount, req.Term)
		if err != nil {
			return nil, err
		}
		charge.Term = req.Term
		charge.MonthlyPayment = payment
		charge.PeriodsRemaining = req.Term
	}

	if err := s.Repository.CreateCharge(ctx, charge); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return charge, nil
}

func (s *Service) ListCharges(ctx context.Context, cardID, userID ulid.ULID, page query.Page) (*query.Result[*Charge], error) {
	if _, err := s.GetCreditCardById(ctx, cardID, userID); err != nil {
		return nil, err
	}

	result, err := s.Repository.ListCharges(ctx, cardID, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}

// PayAhead settles n installments of a charge in advance.
func (s *Service) PayAhead(ctx context.Context, cardID, chargeID, userID ulid.ULID, n int) (*Charge, error) {
	charge, err := s.Repository.GetChargeById(ctx, chargeID, userID)
	if err != nil {
		return nil, appErrors.ErrChargeNotFound.WithError(err)
	}

	if charge.UserId != userID || charge.CreditCardId != cardID {
		return nil, appErrors.ErrChargeNotFound
	}

	if charge.Kind != ChargeKindInstallment {
		return nil, appErrors.NewValidationError("kind", "apenas lançamentos parcelados aceitam pagamento antecipado")
	}

	remaining, done, err := installment.PayAhead(charge.PeriodsRemaining, n)
	if err != nil {
		return nil, err
	}

	charge.PeriodsRemaining = remaining
	if done {
		charge.IsActive = false
	}
	charge.UpdatedAt = time.Now()

	if err := s.Repository.UpdateCharge(ctx, charge); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return charge, nil
}

func (s *Service) validateCreateRequest(req *CreateCreditCardRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if req.CreditLimit.IsNegative() {
		return appErrors.NewValidationError("credit_limit", "deve ser maior ou igual a zero")
	}

	if !validDay(req.ClosingDay) {
		return appErrors.NewValidationError("cutoff_day", "deve estar entre 1 e 31")
	}

	if !validDay(req.DueDay) {
		return appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
	}

	return nil
}

func validDay(day int) bool {
	return day >= 1 && day <= 31
}
