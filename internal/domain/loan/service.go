package loan

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

func (s *Service) CreateLoan(ctx context.Context, req *CreateLoanRequest) (*Loan, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if !req.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if req.PaymentDay < 1 || req.PaymentDay > 31 {
		return nil, appErrors.NewValidationError("payment_day", "deve estar entre 1 e 31")
	}
	if req.StartDate.IsZero() {
		return nil, appErrors.NewValidationError("start_date", "é obrigatória")
	}

	endDate := calendar.OpenEnded
	if req.EndDate != nil {
		endDate = calendar.Truncate(*req.EndDate)
	}
	startDate := calendar.Truncate(req.StartDate)
	if endDate.Before(startDate) {
		return nil, appErrors.NewValidationError("end_date", "não pode ser anterior à data de início")
	}

	alertDays := DefaultAlertDays
	if req.AlertDays != nil {
		if *req.AlertDays < 0 {
			return nil, appErrors.NewValidationError("alert_days", "não pode ser negativo")
		}
		alertDays = *req.AlertDays
	}

	now := time.Now()
	l := &Loan{
		Id:         pkg.GenerateULIDObject(),
		UserId:     req.UserId,
		Name:       strings.TrimSpace(req.Name),
		Amount:     req.Amount,
		PaymentDay: req.PaymentDay,
		StartDate:  startDate,
		EndDate:    endDate,
		AlertDays:  alertDays,
		Notes:      strings.TrimSpace(req.Notes),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repository.Create(ctx, l); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return l, nil
}

func (s *Service) UpdateLoan(ctx context.Context, loanID, userID ulid.ULID, req *UpdateLoanRequest) (*Loan, error) {
	l, err := s.GetLoan(ctx, loanID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		l.Name = strings.TrimSpace(*req.Name)
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
		}
		l.Amount = *req.Amount
	}
	if req.EndDate != nil {
		end := calendar.Truncate(*req.EndDate)
		if end.Before(l.StartDate) {
			return nil, appErrors.NewValidationError("end_date", "não pode ser anterior à data de início")
		}
		l.EndDate = end
	}
	if req.AlertDays != nil {
		if *req.AlertDays < 0 {
			return nil, appErrors.NewValidationError("alert_days", "não pode ser negativo")
		}
		l.AlertDays = *req.AlertDays
	}
	if req.Notes != nil {
		l.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	l.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, l); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return l, nil
}

func (s *Service) DeleteLoan(ctx context.Context, loanID, userID ulid.ULID) error {
	if _, err := s.GetLoan(ctx, loanID, userID); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, loanID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetLoan(ctx context.Context, loanID, userID ulid.ULID) (*Loan, error) {
	l, err := s.Repository.GetByID(ctx, loanID, userID)
	if err != nil {
		return nil, appErrors.ErrLoanNotFound.WithError(err)
	}
	if l.UserId != userID {
		return nil, appErrors.ErrResourceNotOwned
	}
	return l, nil
}

func (s *Service) ListLoans(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Loan], error) {
	result, err := s.Repository.List(ctx, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}
