package projection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/projection"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeSnapshotReader struct {
	loadFn func(ctx context.Context, userID ulid.ULID) (*projection.Snapshot, error)
}

func (f *fakeSnapshotReader) LoadSnapshot(ctx context.Context, userID ulid.ULID) (*projection.Snapshot, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx, userID)
	}
	return &projection.Snapshot{UserID: userID}, nil
}

func newService(reader projection.SnapshotReader) *projection.Service {
	return &projection.Service{
		Snapshots: reader,
		Limits: projection.Limits{
			DefaultMonths:      6,
			MaxMonths:          120,
			MinBiweeklyPeriods: 12,
			MaxBiweeklyPeriods: 240,
		},
		Now: func() time.Time { return now },
	}
}

func intPtr(v int) *int {
	return &v
}

func TestServiceProjectMonthly(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()

	tests := []struct {
		name     string
		months   *int
		reader   *fakeSnapshotReader
		wantLen  int
		wantCode string
	}{
		{
			name:    "default horizon",
			reader:  &fakeSnapshotReader{},
			wantLen: 6,
		},
		{
			name:    "explicit horizon",
			months:  intPtr(24),
			reader:  &fakeSnapshotReader{},
			wantLen: 24,
		},
		{
			name:     "above maximum",
			months:   intPtr(121),
			reader:   &fakeSnapshotReader{},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "explicit zero",
			months:   intPtr(0),
			reader:   &fakeSnapshotReader{},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:     "negative",
			months:   intPtr(-1),
			reader:   &fakeSnapshotReader{},
			wantCode: "VALIDATION_ERROR",
		},
		{
			name:   "storage failure",
			months: intPtr(3),
			reader: &fakeSnapshotReader{
				loadFn: func(context.Context, ulid.ULID) (*projection.Snapshot, error) {
					return nil, errors.New("connection reset")
				},
			},
			wantCode: "DATABASE_ERROR",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := newService(tt.reader).ProjectMonthly(context.Background(), userID, tt.months)
			if tt.wantCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Periods) != tt.wantLen {
				t.Fatalf("expected %d periods, got %d", tt.wantLen, len(p.Periods))
			}
		})
	}
}

func TestServiceProjectBiweekly(t *testing.T) {
	t.Parallel()

	userID := pkg.GenerateULIDObject()
	reader := &fakeSnapshotReader{
		loadFn: func(_ context.Context, id ulid.ULID) (*projection.Snapshot, error) {
			s := salaryAndLoan()
			s.UserID = id
			return s, nil
		},
	}

	tests := []struct {
		name     string
		req      projection.BiweeklyRequest
		wantLen  int
		wantCode string
	}{
		{"automatic horizon", projection.BiweeklyRequest{}, 12, ""},
		{"explicit periods", projection.BiweeklyRequest{Periods: 30}, 30, ""},
		{"payday override", projection.BiweeklyRequest{Periods: 4, Payday1: intPtr(25), Payday2: intPtr(10)}, 4, ""},
		{"single payday", projection.BiweeklyRequest{Payday1: intPtr(10)}, 0, "VALIDATION_ERROR"},
		{"same paydays", projection.BiweeklyRequest{Payday1: intPtr(10), Payday2: intPtr(10)}, 0, "VALIDATION_ERROR"},
		{"too many periods", projection.BiweeklyRequest{Periods: 241}, 0, "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := newService(reader).ProjectBiweekly(context.Background(), userID, tt.req)
			if tt.wantCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Periods) != tt.wantLen {
				t.Fatalf("expected %d periods, got %d", tt.wantLen, len(p.Periods))
			}
			if p.InProgress == nil {
				t.Fatalf("expected the in-progress period to be reported")
			}
		})
	}
}
