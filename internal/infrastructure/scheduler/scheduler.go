// Package scheduler runs the daily analysis push in the background.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// Scheduler manages scheduled background tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	analysis  ports.AnalysisService
	logger    *logger.Logger
	pushHour  int
}

// New creates a new scheduler instance
func New(analysis ports.AnalysisService, pushHour int, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		analysis:  analysis,
		logger:    logger,
		pushHour:  pushHour,
	}
}

// Start schedules the daily analysis push and runs in the background.
// With no analysis endpoint configured nothing is scheduled.
func (s *Scheduler) Start() error {
	if !s.analysis.Enabled() {
		s.logger.Info("Analysis endpoint not configured, daily push disabled")
		return nil
	}

	at := fmt.Sprintf("%02d:00", s.pushHour)
	if _, err := s.scheduler.Every(1).Day().At(at).Do(s.pushAnalysis); err != nil {
		return fmt.Errorf("failed to schedule analysis push: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("Daily analysis push scheduled", "at", at)
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) pushAnalysis() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	result, err := s.analysis.Push(ctx)
	if err != nil {
		s.logger.Errorw("Scheduled analysis push failed", "error", err)
		return
	}
	s.logger.Infow("Scheduled analysis push done",
		"batch_id", result.BatchID,
		"entry_count", result.EntryCount,
	)
}
