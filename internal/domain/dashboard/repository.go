package dashboard

import (
	"context"

	"github.com/Nojands/FinanzApp/internal/domain/ledger"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// RecentEntries returns the newest ledger entries first.
	RecentEntries(ctx context.Context, userID ulid.ULID, limit int) ([]*ledger.Entry, error)
}
