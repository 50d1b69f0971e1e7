package alert

import (
	"context"
	"time"

	"github.com/Nojands/FinanzApp/internal/domain/projection"
	"github.com/Nojands/FinanzApp/internal/domain/settings"
	appErrors "github.com/Nojands/FinanzApp/internal/errors"
	"github.com/Nojands/FinanzApp/internal/logger"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Snapshots projection.SnapshotReader
	Settings  settings.Repository
	Notifier  Notifier
	Now       func() time.Time
}

func (s *Service) ListAlerts(ctx context.Context, userID ulid.ULID) ([]Alert, error) {
	snapshot, err := s.Snapshots.LoadSnapshot(ctx, userID)
	if err != nil {
		if appErrors.IsAppError(err) {
			return nil, err
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return Upcoming(snapshot, s.now()), nil
}

// Sweep notifies every user who opted into reminders. A failure for one user
// is logged and does not stop the others. It returns how many users were notified.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	recipients, err := s.Settings.ListAlertRecipients(ctx)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}

	sent := 0
	for _, r := range recipients {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		if !r.AlertsEnabled || r.NotificationEmail == "" {
			continue
		}

		alerts, err := s.ListAlerts(ctx, r.UserId)
		if err != nil {
			logger.Error().Err(err).Str("user_id", r.UserId.String()).Msg("Erro ao calcular alertas")
			continue
		}
		if len(alerts) == 0 {
			continue
		}

		if err := s.Notifier.Notify(ctx, r.NotificationEmail, alerts); err != nil {
			logger.Error().Err(err).Str("user_id", r.UserId.String()).Msg("Erro ao enviar lembrete de pagamento")
			continue
		}
		sent++
	}

	logger.Info().Int("recipients", len(recipients)).Int("notified", sent).Msg("Varredura de alertas concluída")
	return sent, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
