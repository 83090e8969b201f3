package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// EventCompleter closes out events whose date has passed
type EventCompleter interface {
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs periodic housekeeping inside the API process
type Scheduler struct {
	cron   *cron.Cron
	events EventCompleter
	log    zerolog.Logger
	now    func() time.Time
}

func NewScheduler(events EventCompleter, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		events: events,
		log:    log,
		now:    time.Now,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 5 * * * *", s.completePastEvents); err != nil { // hourly at :05
		return err
	}
	s.cron.Start()
	return nil
}

// Stop waits up to five seconds for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) completePastEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.events.CompletePast(ctx, s.now())
	if err != nil {
		s.log.Error().Err(err).Msg("complete past events failed")
		return
	}
	if n > 0 {
		s.log.Info().Int64("events", n).Msg("marked past events completed")
	}
}
