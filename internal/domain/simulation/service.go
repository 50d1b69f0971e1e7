package simulation

import (
	"context"
	"strings"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/projection"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Service struct {
	Snapshots projection.SnapshotReader
	Records   RecordRepository
	MinMonths int
	MaxTerm   int
	Now       func() time.Time
}

type Request struct {
	UserId  ulid.ULID
	Product string
	Price   decimal.Decimal
	Term    int
}

type Outcome struct {
	Result *Result `json:"result"`
	Record *Record `json:"record"`
}

// Simulate runs the purchase simulation and appends its audit record.
func (s *Service) Simulate(ctx context.Context, req *Request) (*Outcome, error) {
	if !req.Price.IsPositive() {
		return nil, appErrors.NewValidationError("price", "deve ser maior que zero")
	}
	if req.Term <= 0 {
		return nil, appErrors.NewValidationError("term", "deve ser maior que zero")
	}
	if s.MaxTerm > 0 && req.Term > s.MaxTerm {
		return nil, appErrors.NewValidationError("term", "excede o prazo máximo permitido")
	}

	snapshot, err := s.Snapshots.LoadSnapshot(ctx, req.UserId)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	minMonths := s.MinMonths
	if minMonths <= 0 {
		minMonths = DefaultMinMonths
	}

	now := s.now()
	result, err := Simulate(snapshot, now, strings.TrimSpace(req.Product), req.Price, req.Term, minMonths)
	if err != nil {
		return nil, err
	}

	record := NewRecord(req.UserId, result, now)
	if err := s.Records.Create(ctx, record); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &Outcome{Result: result, Record: record}, nil
}

func (s *Service) ListRecords(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Record], error) {
	result, err := s.Records.List(ctx, userID, page)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return result, nil
}

func (s *Service) DeleteRecord(ctx context.Context, recordID, userID ulid.ULID) error {
	record, err := s.Records.GetByID(ctx, recordID, userID)
	if err != nil {
		return appErrors.ErrSimulationNotFound.WithError(err)
	}
	if record.UserId != userID {
		return appErrors.ErrResourceNotOwned
	}
	if err := s.Records.Delete(ctx, recordID, userID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
