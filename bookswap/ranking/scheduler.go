package ranking

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobsConfig carries the cron specs for the scheduled maintenance jobs and
// the debounce window for event-triggered re-ranking.
type JobsConfig struct {
	DecaySpec       string `toml:"decay_spec"`
	WeeklyResetSpec string `toml:"weekly_reset_spec"`
	RefreshAllSpec  string `toml:"refresh_all_spec"`
	RecalcDebounce  int    `toml:"recalc_debounce_seconds"`
}

func DefaultJobsConfig() JobsConfig {
	return JobsConfig{
		DecaySpec:       "0 4 * * *",  // daily, 04:00
		WeeklyResetSpec: "0 0 * * 1",  // Mondays, midnight
		RefreshAllSpec:  "30 3 * * *", // daily, 03:30
		RecalcDebounce:  60,
	}
}

// Scheduler runs the periodic maintenance jobs and coalesces re-rank
// requests so event bursts pay for one full sort instead of many.
type Scheduler struct {
	service  *Service
	cron     *cron.Cron
	jobs     JobsConfig
	recalcCh chan struct{}
}

func NewScheduler(service *Service, jobs JobsConfig) *Scheduler {
	return &Scheduler{
		service:  service,
		cron:     cron.New(),
		jobs:     jobs,
		recalcCh: make(chan struct{}, 1),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.jobs.DecaySpec, func() {
		if _, err := s.service.ApplyDecay(ctx); err != nil {
			slog.Error("Decay job failed", slog.String("type", "job"), slog.Any("error", err))
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.jobs.WeeklyResetSpec, func() {
		if err := s.service.ResetWeeklyCounters(ctx); err != nil {
			slog.Error("Weekly reset job failed", slog.String("type", "job"), slog.Any("error", err))
		}
	}); err != nil {
		return err
	}

	if _, err := s.cron.AddFunc(s.jobs.RefreshAllSpec, func() {
		if _, err := s.service.UpdateAllUsers(ctx); err != nil {
			slog.Error("Refresh-all job failed", slog.String("type", "job"), slog.Any("error", err))
		}
	}); err != nil {
		return err
	}

	s.cron.Start()
	go s.recalcLoop(ctx)

	slog.Info("Ranking scheduler started",
		slog.String("type", "job"),
		slog.String("decay", s.jobs.DecaySpec),
		slog.String("weekly_reset", s.jobs.WeeklyResetSpec),
		slog.String("refresh_all", s.jobs.RefreshAllSpec))
	return nil
}

func (s *Scheduler) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	slog.Info("Ranking scheduler stopped", slog.String("type", "job"))
}

// RequestRecalc asks for a deferred full re-rank. Safe to call from any
// goroutine; requests arriving while one is pending are coalesced.
func (s *Scheduler) RequestRecalc() {
	select {
	case s.recalcCh <- struct{}{}:
	default:
	}
}

func (s *Scheduler) recalcLoop(ctx context.Context) {
	debounce := time.Duration(s.jobs.RecalcDebounce) * time.Second
	if debounce <= 0 {
		debounce = time.Minute
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.recalcCh:
			// Let a burst of events settle before paying for the sort.
			timer := time.NewTimer(debounce)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			if err := s.service.RecalculateRankings(ctx); err != nil {
				slog.Error("Deferred recalculation failed",
					slog.String("type", "job"),
					slog.Any("error", err))
			}
		}
	}
}
