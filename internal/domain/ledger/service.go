package ledger

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

func (s *Service) CreateEntry(ctx context.Context, req *CreateEntryRequest) (*Entry, error) {
	if !req.Kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "deve ser INCOME ou EXPENSE")
	}
	if !req.Amount.IsPositive() {
		return nil, appErrors.NewValidationError("amount", "deve ser maior que zero")
	}

	date := calendar.Truncate(time.Now())
	if !req.Date.IsZero() {
		date = calendar.Truncate(req.Date)
	}

	entry := &Entry{
		Id:          pkg.GenerateULIDObject(),
		UserId:      req.UserId,
		Kind:        req.Kind,
		Amount:      req.Amount,
		Date:        date,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   time.Now(),
	}

	if err := s.Repository.Create(ctx, entry); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return entry, nil
}

func (s *Service) DeleteEntry(ctx context.Context, entryID, userID ulid.ULID) error {
	entry, err := s.Repository.GetByID(ctx, entryID, userID)
	if err != nil {
		return appErrors.ErrEntryNotFound.WithError(err)
	}
	if entry.UserId != userID {
		return appErrors.ErrResourceNotOwned
	}

	if err := s.Repository.Delete(ctx, entryID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) ListEntries(ctx context.Context, userID ulid.ULID, filter ListFilter, page query.Page) (*query.Result[*Entry], error) {
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, appErrors.NewValidationError("kind", "deve ser INCOME ou EXPENSE")
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, appErrors.NewValidationError("end_date", "deve ser posterior à data inicial")
	}

	result, err := s.Repository.List(ctx, userID, filter, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}

func (s *Service) GetTotals(ctx context.Context, userID ulid.ULID) (Totals, error) {
	totals, err := s.Repository.Totals(ctx, userID)
	if err != nil {
		return Totals{}, appErrors.NewDatabaseError(err)
	}
	return totals, nil
}
