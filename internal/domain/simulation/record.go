package simulation

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/pkg"
	"github.com/Nojands/FinanzApp/internal/pkg/query"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Record is the audit entry written once per simulation.
type Record struct {
	Id              ulid.ULID       `json:"id"`
	UserId          ulid.ULID       `json:"userId"`
	SimulatedAt     time.Time       `json:"simulatedAt"`
	Product         string          `json:"product"`
	Price           decimal.Decimal `json:"price"`
	Term            int             `json:"term"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment"`
	Verdict         Verdict         `json:"verdict"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
	FinalBalance    decimal.Decimal `json:"finalBalance"`
	CriticalMonth   *string         `json:"criticalMonth,omitempty"`
	MinimumBalance  decimal.Decimal `json:"minimumBalance"`
}

func NewRecord(userID ulid.ULID, result *Result, at time.Time) *Record {
	return &Record{
		Id:              pkg.GenerateULIDObject(),
		UserId:          userID,
		SimulatedAt:     at,
		Product:         result.Product,
		Price:           pkg.Round2(result.Price),
		Term:            result.Term,
		MonthlyPayment:  pkg.Round2(result.MonthlyPayment),
		Verdict:         result.Verdict,
		StartingBalance: pkg.Round2(result.StartingBalance),
		FinalBalance:    pkg.Round2(result.FinalBalance),
		CriticalMonth:   result.CriticalMonth,
		MinimumBalance:  pkg.Round2(result.MinimumBalance),
	}
}

type RecordRepository interface {
	Create(ctx context.Context, record *Record) error
	GetByID(ctx context.Context, recordID, userID ulid.ULID) (*Record, error)
	List(ctx context.Context, userID ulid.ULID, page query.Page) (*query.Result[*Record], error)
	Delete(ctx context.Context, recordID, userID ulid.ULID) error
}
