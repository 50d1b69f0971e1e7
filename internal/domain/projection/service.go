package projection

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/oklog/ulid/v2"
)

type Limits struct {
	DefaultMonths      int
	MaxMonths          int
	MinBiweeklyPeriods int
	MaxBiweeklyPeriods int
}

type Service struct {
	Snapshots SnapshotReader
	Limits    Limits
	Now       func() time.Time
}

// BiweeklyRequest selects the biweekly horizon. Periods counts future
// periods only: a request for N returns N entries in Projection.Periods,
// and the period containing today is reported apart as InProgress.
type BiweeklyRequest struct {
	// Periods of zero sizes the horizon from the known obligations.
	Periods int
	Payday1 *int
	Payday2 *int
}

// ProjectMonthly projects the given number of months. A nil months uses the
// configured default; an explicit value outside 1..MaxMonths is rejected.
func (s *Service) ProjectMonthly(ctx context.Context, userID ulid.ULID, months *int) (*Projection, error) {
	n := s.Limits.DefaultMonths
	if months != nil {
		n = *months
	}
	if n < 1 || n > s.Limits.MaxMonths {
		return nil, appErrors.NewValidationError("months", "fora do intervalo permitido").
			WithDetails(map[string]interface{}{"field": "months", "max": s.Limits.MaxMonths})
	}

	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ProjectMonthly(snapshot, s.now(), n)
}

// ProjectBiweekly emits req.Periods future periods after the one in
// progress, or an automatic horizon when Periods is zero.
func (s *Service) ProjectBiweekly(ctx context.Context, userID ulid.ULID, req BiweeklyRequest) (*Projection, error) {
	if req.Periods < 0 || req.Periods > s.Limits.MaxBiweeklyPeriods {
		return nil, appErrors.NewValidationError("periods", "fora do intervalo permitido").
			WithDetails(map[string]interface{}{"field": "periods", "max": s.Limits.MaxBiweeklyPeriods})
	}
	if (req.Payday1 == nil) != (req.Payday2 == nil) {
		return nil, appErrors.NewValidationError("payday_2", "informe os dois dias de pagamento")
	}

	snapshot, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	paydays := snapshot.Paydays
	if req.Payday1 != nil {
		paydays, err = calendar.NewPaydays(*req.Payday1, *req.Payday2)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	periods := req.Periods
	if periods == 0 {
		periods = BiweeklyHorizon(snapshot, now, s.Limits.MinBiweeklyPeriods, s.Limits.MaxBiweeklyPeriods)
	}

	return ProjectBiweekly(snapshot, now, periods, paydays)
}

func (s *Service) load(ctx context.Context, userID ulid.ULID) (*Snapshot, error) {
	snapshot, err := s.Snapshots.LoadSnapshot(ctx, userID)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return snapshot, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
