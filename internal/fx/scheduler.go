package fx

import (
	"context"

	"github.com/Nojands/FinanzApp/config"
	"github.com/Nojands/FinanzApp/internal/domain/alert"
	"github.com/Nojands/FinanzApp/internal/logger"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		startAlertScheduler,
	),
)

func startAlertScheduler(lc fx.Lifecycle, cfg *config.Config, svc *alert.Service) error {
	if !cfg.Alerts.Enabled {
		logger.Info().Msg("Envio de alertas desabilitado (ALERTS_ENABLED != true)")
		return nil
	}

	scheduler, err := alert.NewScheduler(svc, cfg.Alerts.Schedule)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return scheduler.Stop(ctx)
		},
	})
	return nil
}
