package recurring

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

func (s *Service) CreateIncome(ctx context.Context, req *CreateIncomeRequest) (*RecurringIncome, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	endDate := calendar.OpenEnded
	if req.EndDate != nil {
		endDate = calendar.Truncate(*req.EndDate)
	}

	now := time.Now()
	income := &RecurringIncome{
		Id:            pkg.GenerateULIDObject(),
		UserId:        req.UserId,
		Name:          strings.TrimSpace(req.Name),
		Amount:        req.Amount,
		PaymentDay:    req.PaymentDay,
		StartDate:     calendar.Truncate(req.StartDate),
		EndDate:       endDate,
		Frequency:     req.Frequency,
		SpecificMonth: req.SpecificMonth,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, income); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return income, nil
}

func (s *Service) UpdateIncome(ctx context.Context, incomeID, userID ulid.ULID, req *UpdateIncomeRequest) (*RecurringIncome, error) {
	income, err := s.GetIncome(ctx, incomeID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		income.Name = name
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
		}
		income.Amount = *req.Amount
	}

	if req.EndDate != nil {
		end := calendar.Truncate(*req.EndDate)
		if end.Before(income.StartDate) {
			return nil, appErrors.NewValidationError("end_date", "não pode ser anterior à data de início")
		}
		income.EndDate = end
	}

	if req.IsActive != nil {
		income.IsActive = *req.IsActive
	}

	income.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, income); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return income, nil
}

func (s *Service) DeleteIncome(ctx context.Context, incomeID, userID ulid.ULID) error {
	if _, err := s.GetIncome(ctx, incomeID, userID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, incomeID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetIncome(ctx context.Context, incomeID, userID ulid.ULID) (*RecurringIncome, error) {
	income, err := s.Repository.GetByID(ctx, incomeID, userID)
	if err != nil {
		return nil, appErrors.ErrIncomeNotFound.WithError(err)
	}

	if income.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return income, nil
}

func (s *Service) ListIncomes(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*RecurringIncome], error) {
	result, err := s.Repository.List(ctx, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}

func validateCreateRequest(req *CreateIncomeRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if !req.Amount.IsPositive() {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	if req.PaymentDay < 1 || req.PaymentDay > 31 {
		return appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
	}

	if !req.Frequency.IsValid() {
		return appErrors.NewValidationError("frequency", "frequência inválida")
	}

	if req.SpecificMonth != nil {
		if req.Frequency != FrequencyAnnual {
			return appErrors.NewValidationError("specific_month", "só pode ser informado para frequência anual")
		}
		if *req.SpecificMonth < 1 || *req.SpecificMonth > 12 {
			return appErrors.NewValidationError("specific_month", "deve estar entre 1 e 12")
		}
	}

	if req.StartDate.IsZero() {
		return appErrors.NewValidationError("start_date", "é obrigatória")
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return appErrors.NewValidationError("end_date", "não pode ser anterior à data de início")
	}

	return nil
}
