package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	"github.com/Nojands/FinanzApp/internal/domain/loan"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeRepository struct {
	createErr error
	created   *loan.Loan
	found     *loan.Loan
	updated   *loan.Loan
	deleted   bool
}

func (f *fakeRepository) Create(_ context.Context, l *loan.Loan) error {
	f.created = l
	return f.createErr
}

func (f *fakeRepository) Update(_ context.Context, l *loan.Loan) error {
	f.updated = l
	return nil
}

func (f *fakeRepository) Delete(context.Context, ulid.ULID, ulid.ULID) error {
	f.deleted = true
	return nil
}

func (f *fakeRepository) GetByID(context.Context, ulid.ULID, ulid.ULID) (*loan.Loan, error) {
	if f.found == nil {
		return nil, errors.New("record not found")
	}
	return f.found, nil
}

func (f *fakeRepository) List(context.Context, ulid.ULID, query.Page) (*query.Result[*loan.Loan], error) {
	return &query.Result[*loan.Loan]{}, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validRequest() loan.CreateLoanRequest {
	return loan.CreateLoanRequest{
		UserId:     pkg.GenerateULIDObject(),
		Name:       " Financiamento carro ",
		Amount:     decimal.NewFromInt(850),
		PaymentDay: 10,
		StartDate:  date(2025, time.January, 1),
	}
}

func storedLoan(owner ulid.ULID) *loan.Loan {
	return &loan.Loan{
		Id:         pkg.GenerateULIDObject(),
		UserId:     owner,
		Name:       "Consignado",
		Amount:     decimal.NewFromInt(400),
		PaymentDay: 5,
		StartDate:  date(2025, time.March, 1),
		EndDate:    date(2026, time.February, 28),
		AlertDays:  loan.DefaultAlertDays,
		IsActive:   true,
	}
}

func TestCreateLoanDefaults(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{}
	svc := &loan.Service{Repository: repo}

	req := validRequest()
	got, err := svc.CreateLoan(context.Background(), &req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created != got {
		t.Fatalf("loan was not persisted")
	}
	if got.Name != "Financiamento carro" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if !got.IsOpenEnded() || got.AlertDays != loan.DefaultAlertDays || !got.IsActive {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestCreateLoanValidation(t *testing.T) {
	t.Parallel()

	days := func(v int) *int { return &v }
	before := date(2024, time.December, 31)
	sameDay := date(2025, time.January, 1)

	tests := []struct {
		name      string
		mutate    func(r *loan.CreateLoanRequest)
		wantField string
	}{
		{"blank name", func(r *loan.CreateLoanRequest) { r.Name = "   " }, "name"},
		{"zero amount", func(r *loan.CreateLoanRequest) { r.Amount = decimal.Zero }, "amount"},
		{"negative amount", func(r *loan.CreateLoanRequest) { r.Amount = decimal.NewFromInt(-1) }, "amount"},
		{"payment day 0", func(r *loan.CreateLoanRequest) { r.PaymentDay = 0 }, "payment_day"},
		{"payment day 32", func(r *loan.CreateLoanRequest) { r.PaymentDay = 32 }, "payment_day"},
		{"missing start", func(r *loan.CreateLoanRequest) { r.StartDate = time.Time{} }, "start_date"},
		{"end before start", func(r *loan.CreateLoanRequest) { r.EndDate = &before }, "end_date"},
		{"negative alert days", func(r *loan.CreateLoanRequest) { r.AlertDays = days(-1) }, "alert_days"},
		{"end on start day", func(r *loan.CreateLoanRequest) { r.EndDate = &sameDay }, ""},
		{"payment day 31", func(r *loan.CreateLoanRequest) { r.PaymentDay = 31 }, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validRequest()
			tt.mutate(&req)

			_, err := (&loan.Service{Repository: &fakeRepository{}}).CreateLoan(context.Background(), &req)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
			if appErr.Details["field"] != tt.wantField {
				t.Fatalf("expected field %s, got %v", tt.wantField, appErr.Details["field"])
			}
		})
	}
}

func TestCreateLoanStorageFailure(t *testing.T) {
	t.Parallel()

	svc := &loan.Service{Repository: &fakeRepository{createErr: errors.New("connection reset")}}

	req := validRequest()
	_, err := svc.CreateLoan(context.Background(), &req)
	if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != "DATABASE_ERROR" {
		t.Fatalf("expected DATABASE_ERROR, got %v", err)
	}
}

func TestUpdateLoan(t *testing.T) {
	t.Parallel()

	owner := pkg.GenerateULIDObject()
	zero := decimal.Zero
	early := date(2025, time.February, 1)
	later := date(2025, time.December, 31)
	paused := false

	tests := []struct {
		name     string
		userID   ulid.ULID
		req      loan.UpdateLoanRequest
		wantCode string
	}{
		{"other user", pkg.GenerateULIDObject(), loan.UpdateLoanRequest{IsActive: &paused}, "RESOURCE_NOT_OWNED"},
		{"zero amount", owner, loan.UpdateLoanRequest{Amount: &zero}, "VALIDATION_ERROR"},
		{"end before start", owner, loan.UpdateLoanRequest{EndDate: &early}, "VALIDATION_ERROR"},
		{"pause and shorten", owner, loan.UpdateLoanRequest{EndDate: &later, IsActive: &paused}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepository{found: storedLoan(owner)}
			got, err := (&loan.Service{Repository: repo}).UpdateLoan(context.Background(), repo.found.Id, tt.userID, &tt.req)
			if tt.wantCode != "" {
				if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				if repo.updated != nil {
					t.Fatalf("rejected update must not be saved")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.updated != got || got.IsActive || !got.EndDate.Equal(later) {
				t.Fatalf("expected paused loan ending %s, got %+v", later, got)
			}
		})
	}
}

func TestDeleteLoan(t *testing.T) {
	t.Parallel()

	owner := pkg.GenerateULIDObject()

	tests := []struct {
		name        string
		found       *loan.Loan
		userID      ulid.ULID
		wantCode    string
		wantDeleted bool
	}{
		{"owner", storedLoan(owner), owner, "", true},
		{"other user", storedLoan(owner), pkg.GenerateULIDObject(), "RESOURCE_NOT_OWNED", false},
		{"missing", nil, owner, "LOAN_NOT_FOUND", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepository{found: tt.found}
			err := (&loan.Service{Repository: repo}).DeleteLoan(context.Background(), pkg.GenerateULIDObject(), tt.userID)
			if tt.wantCode != "" {
				if appErr, ok := appErrors.AsAppError(err); !ok || appErr.Code != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.deleted != tt.wantDeleted {
				t.Fatalf("expected deleted=%v, got %v", tt.wantDeleted, repo.deleted)
			}
		})
	}
}

func TestLoanDueIn(t *testing.T) {
	t.Parallel()

	// Paydays 5 and 20: the period runs across the February/March boundary.
	crossMonth := calendar.Period{
		Kind:  calendar.KindCrossMonth,
		Start: date(2025, time.February, 20),
		End:   date(2025, time.March, 4),
	}

	running := func(day int) *loan.Loan {
		return &loan.Loan{
			PaymentDay: day,
			StartDate:  date(2024, time.June, 1),
			EndDate:    calendar.OpenEnded,
			IsActive:   true,
		}
	}

	tests := []struct {
		name string
		loan func() *loan.Loan
		want bool
	}{
		{"day 31 clamped to february 28", func() *loan.Loan { return running(31) }, true},
		{"day after the month turns", func() *loan.Loan { return running(3) }, true},
		{"day outside the window", func() *loan.Loan { return running(10) }, false},
		{"inactive", func() *loan.Loan {
			l := running(25)
			l.IsActive = false
			return l
		}, false},
		{"starts after the period", func() *loan.Loan {
			l := running(25)
			l.StartDate = date(2025, time.March, 5)
			return l
		}, false},
		{"ended before the period", func() *loan.Loan {
			l := running(25)
			l.EndDate = date(2025, time.February, 19)
			return l
		}, false},
		{"starts inside the period after the payment day", func() *loan.Loan {
			l := running(25)
			l.StartDate = date(2025, time.March, 1)
			return l
		}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.loan().DueIn(crossMonth); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
