package settings

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/calendar"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository     Repository
	DefaultPaydays calendar.Paydays
}

func (s *Service) GetSettings(ctx context.Context, userID ulid.ULID) (*Settings, error) {
	stored, err := s.Repository.Get(ctx, userID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if stored == nil {
		return Defaults(userID, s.defaults()), nil
	}
	return stored, nil
}

func (s *Service) UpdateSettings(ctx context.Context, userID ulid.ULID, req *UpdateSettingsRequest) (*Settings, error) {
	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.InitialBalance != nil {
		current.InitialBalance = *req.InitialBalance
	}

	payday1, payday2 := current.Payday1, current.Payday2
	if req.Payday1 != nil {
		payday1 = *req.Payday1
	}
	if req.Payday2 != nil {
		payday2 = *req.Payday2
	}
	paydays, err := calendar.NewPaydays(payday1, payday2)
	if err != nil {
		return nil, err
	}
	current.Payday1, current.Payday2 = paydays.First, paydays.Second

	if req.NotificationEmail != nil {
		email := strings.TrimSpace(*req.NotificationEmail)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return nil, appErrors.NewValidationError("notification_email", "email inválido")
			}
		}
		current.NotificationEmail = email
	}

	if req.AlertsEnabled != nil {
		current.AlertsEnabled = *req.AlertsEnabled
	}

	if current.AlertsEnabled && current.NotificationEmail == "" {
		return nil, appErrors.NewValidationError("notification_email", "é obrigatório para receber alertas")
	}

	current.UpdatedAt = time.Now()
	if err := s.Repository.Save(ctx, current); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return current, nil
}

func (s *Service) defaults() calendar.Paydays {
	if s.DefaultPaydays.First == 0 {
		return calendar.DefaultPaydays()
	}
	return s.DefaultPaydays
}
