package routes_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/dashboard"
	"github.com/Nojands/FinanzApp/internal/domain/ledger"
	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/report"
	"github.com/Nojands/FinanzApp/internal/middleware"
	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"
	"github.com/Nojands/FinanzApp/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type fakeSnapshotReader struct {
	snapshot *projection.Snapshot
}

func (f *fakeSnapshotReader) LoadSnapshot(_ context.Context, userID ulid.ULID) (*projection.Snapshot, error) {
	s := *f.snapshot
	s.UserID = userID
	return &s, nil
}

type noopLedgerRepository struct{}

func (noopLedgerRepository) Create(context.Context, *ledger.Entry) error { return nil }

func (noopLedgerRepository) Delete(context.Context, ulid.ULID, ulid.ULID) error { return nil }

func (noopLedgerRepository) GetByID(context.Context, ulid.ULID, ulid.ULID) (*ledger.Entry, error) {
	return nil, errors.New("not found")
}

func (noopLedgerRepository) List(context.Context, ulid.ULID, ledger.ListFilter, query.Page) (*query.Result[*ledger.Entry], error) {
	return &query.Result[*ledger.Entry]{}, nil
}

func (noopLedgerRepository) Totals(context.Context, ulid.ULID) (ledger.Totals, error) {
	return ledger.Totals{}, nil
}

func (noopLedgerRepository) RecentEntries(context.Context, ulid.ULID, int) ([]*ledger.Entry, error) {
	return nil, nil
}

type fakeReportRepository struct{}

func (fakeReportRepository) MonthlyTotals(context.Context, ulid.ULID, time.Time, time.Time) ([]report.MonthTotals, error) {
	return []report.MonthTotals{{Key: "2025-01", Income: decimal.NewFromInt(300), Expenses: decimal.RequireFromString("120.456")}}, nil
}

func newRouter(h *routes.Handler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", h.Health)
	r.NoRoute(h.NotFound)

	api := r.Group("/api")
	api.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.UserIDKey, userID)
		}
		c.Next()
	})
	api.GET("/projections/monthly", h.ProjectMonthly)
	api.GET("/projections/biweekly", h.ProjectBiweekly)
	api.POST("/ledger", h.CreateEntry)
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/reports/summary", h.GetReportSummary)
	api.GET("/reports/monthly-trend", h.GetMonthlyTrend)
	return r
}

func newHandler() *routes.Handler {
	snapshots := &fakeSnapshotReader{snapshot: &projection.Snapshot{InitialBalance: decimal.NewFromInt(1000)}}
	clock := func() time.Time { return time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC) }
	projections := &projection.Service{
		Snapshots: snapshots,
		Limits: projection.Limits{
			DefaultMonths:      6,
			MaxMonths:          120,
			MinBiweeklyPeriods: 12,
			MaxBiweeklyPeriods: 240,
		},
		Now: clock,
	}

	return &routes.Handler{
		ProjectionService: projections,
		LedgerService:     &ledger.Service{Repository: noopLedgerRepository{}},
		DashboardService: &dashboard.Service{
			Repository:  noopLedgerRepository{},
			Snapshots:   snapshots,
			Projections: projections,
			Now:         clock,
		},
		ReportService: &report.Service{
			Repository: fakeReportRepository{},
			Snapshots:  snapshots,
			Now:        clock,
		},
	}
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newHandler()
	if rec := serve(newRouter(h, ""), http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	h.Ping = func(context.Context) error { return errors.New("connection refused") }
	rec := serve(newRouter(h, ""), http.MethodGet, "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"degraded"`) {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	t.Parallel()

	rec := serve(newRouter(newHandler(), ""), http.MethodGet, "/api/orcamentos", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body struct {
		Error   string                 `json:"error"`
		Details map[string]interface{} `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Error != "NOT_FOUND" || body.Details["path"] != "/api/orcamentos" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestProjectMonthlyEndpoint(t *testing.T) {
	t.Parallel()

	user := pkg.GenerateULIDObject().String()

	tests := []struct {
		name        string
		userID      string
		target      string
		wantStatus  int
		wantPeriods int
		wantCode    string
	}{
		{"default horizon", user, "/api/projections/monthly", http.StatusOK, 6, ""},
		{"explicit horizon", user, "/api/projections/monthly?months=3", http.StatusOK, 3, ""},
		{"zero months", user, "/api/projections/monthly?months=0", http.StatusBadRequest, 0, "VALIDATION_ERROR"},
		{"non numeric months", user, "/api/projections/monthly?months=tres", http.StatusBadRequest, 0, "VALIDATION_ERROR"},
		{"months above limit", user, "/api/projections/monthly?months=500", http.StatusBadRequest, 0, "VALIDATION_ERROR"},
		{"no authenticated user", "", "/api/projections/monthly", http.StatusUnauthorized, 0, "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(newRouter(newHandler(), tt.userID), http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}

			var body struct {
				Error   string `json:"error"`
				Periods []struct {
					Balance string `json:"balance"`
					Risk    string `json:"risk"`
				} `json:"periods"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}

			if tt.wantCode != "" {
				if body.Error != tt.wantCode {
					t.Fatalf("expected %s, got %s", tt.wantCode, body.Error)
				}
				return
			}
			if len(body.Periods) != tt.wantPeriods {
				t.Fatalf("expected %d periods, got %d", tt.wantPeriods, len(body.Periods))
			}
			for _, p := range body.Periods {
				if p.Balance != "1000" {
					t.Fatalf("expected flat balance 1000, got %s", p.Balance)
				}
			}
		})
	}
}

func TestProjectBiweeklyRequiresBothPaydays(t *testing.T) {
	t.Parallel()

	r := newRouter(newHandler(), pkg.GenerateULIDObject().String())

	rec := serve(r, http.MethodGet, "/api/projections/biweekly?payday1=5", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = serve(r, http.MethodGet, "/api/projections/biweekly?periods=4&payday1=5&payday2=20", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateEntryRejectsInvalidBody(t *testing.T) {
	t.Parallel()

	r := newRouter(newHandler(), pkg.GenerateULIDObject().String())

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"kind":`},
		{"unknown kind", `{"kind":"TRANSFER","amount":"10"}`},
		{"bad date", `{"kind":"INCOME","amount":"10","date":"10/01/2025"}`},
	}

	for _, tt := range tests {
		if rec := serve(r, http.MethodPost, "/api/ledger", tt.body); rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", tt.name, rec.Code, rec.Body.String())
		}
	}

	rec := serve(r, http.MethodPost, "/api/ledger", `{"kind":"INCOME","amount":"250.75","date":"2025-01-10","description":"freela"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestDashboardEndpoint(t *testing.T) {
	t.Parallel()

	rec := serve(newRouter(newHandler(), pkg.GenerateULIDObject().String()), http.MethodGet, "/api/dashboard", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		CurrentBalance      string            `json:"currentBalance"`
		MinProjectedBalance string            `json:"minProjectedBalance"`
		Month               string            `json:"month"`
		RecentEntries       []json.RawMessage `json:"recentEntries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.CurrentBalance != "1000" || body.MinProjectedBalance != "1000" || body.Month != "Janeiro 2025" {
		t.Fatalf("unexpected dashboard %s", rec.Body.String())
	}
	if body.RecentEntries == nil {
		t.Fatalf("recent entries should be an empty list, got %s", rec.Body.String())
	}
}

func TestReportEndpoints(t *testing.T) {
	t.Parallel()

	user := pkg.GenerateULIDObject().String()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{"summary", "/api/reports/summary", http.StatusOK, `"currentBalance":"1000"`},
		{"default trend", "/api/reports/monthly-trend", http.StatusOK, `"key":"2024-02"`},
		{"trend amounts rounded", "/api/reports/monthly-trend?months=1", http.StatusOK, `"balance":"179.54"`},
		{"zero months", "/api/reports/monthly-trend?months=0", http.StatusBadRequest, `"VALIDATION_ERROR"`},
		{"non numeric months", "/api/reports/monthly-trend?months=doze", http.StatusBadRequest, `"VALIDATION_ERROR"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := serve(newRouter(newHandler(), user), http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Fatalf("expected %s in %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}
