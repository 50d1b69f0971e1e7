package settings

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Settings is the per-user configuration row. A user without a stored row
// gets Defaults.
type Settings struct {
	UserId            ulid.ULID       `json:"userId"`
	InitialBalance    decimal.Decimal `json:"initialBalance"`
	Payday1           int             `json:"payday1"`
	Payday2           int             `json:"payday2"`
	NotificationEmail string          `json:"notificationEmail"`
	AlertsEnabled     bool            `json:"alertsEnabled"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func Defaults(userID ulid.ULID, paydays calendar.Paydays) *Settings {
	return &Settings{
		UserId:         userID,
		InitialBalance: decimal.Zero,
		Payday1:        paydays.First,
		Payday2:        paydays.Second,
	}
}

// Paydays returns the stored anchors, falling back to the defaults when the
// row holds an invalid pair.
func (s *Settings) Paydays() calendar.Paydays {
	p, err := calendar.NewPaydays(s.Payday1, s.Payday2)
	if err != nil {
		return calendar.DefaultPaydays()
	}
	return p
}

type UpdateSettingsRequest struct {
	InitialBalance    *decimal.Decimal
	Payday1           *int
	Payday2           *int
	NotificationEmail *string
	AlertsEnabled     *bool
}

type Repository interface {
	// Get returns nil without error when the user has no stored settings.
	Get(ctx context.Context, userID ulid.ULID) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
	ListAlertRecipients(ctx context.Context) ([]*Settings, error)
}
