package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/Nojands/FinanzApp/internal/logger"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 5 * time.Minute

// Scheduler runs the reminder sweep on a cron schedule.
type Scheduler struct {
	cron    *cron.Cron
	service *Service
}

func NewScheduler(service *Service, schedule string) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, service: service}
	if _, err := c.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("agendamento de alertas inválido %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info().Int("entries", len(s.cron.Entries())).Msg("Agendador de alertas iniciado")
}

// Stop waits for a running sweep to finish or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.service.Sweep(ctx); err != nil {
		logger.Error().Err(err).Msg("Falha na varredura de alertas")
	}
}
