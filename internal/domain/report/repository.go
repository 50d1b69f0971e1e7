package report

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// MonthlyTotals groups ledger entries dated between from and to, both
	// inclusive, by calendar month. Months without entries are omitted.
	MonthlyTotals(ctx context.Context, userID ulid.ULID, from, to time.Time) ([]MonthTotals, error)
}
