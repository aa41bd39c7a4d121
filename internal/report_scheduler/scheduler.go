package report_scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"alzmate/internal/repository"
	"alzmate/internal/service"
)

// defaultSweepInterval is used when the configured interval is missing
// or not positive. time.NewTicker panics on a non-positive duration.
const defaultSweepInterval = 3600

// Scheduler periodically generates combined weekly reports for every
// patient, which also raises decline and risk alerts as a side effect.
type Scheduler struct {
	progressService service.ProgressService
	userRepo        repository.UserRepository
	logger          *zap.Logger
	sweepInterval   int64
}

func NewScheduler(progressService service.ProgressService, userRepo repository.UserRepository, logger *zap.Logger, sweepInterval int64) *Scheduler {
	if sweepInterval <= 0 {
		logger.Warn("Invalid sweep interval, using default",
			zap.Int64("configured", sweepInterval), zap.Int64("default", defaultSweepInterval))
		sweepInterval = defaultSweepInterval
	}
	return &Scheduler{
		progressService: progressService,
		userRepo:        userRepo,
		logger:          logger,
		sweepInterval:   sweepInterval,
	}
}

// Run starts the periodic report sweep.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Report scheduler started.")

	ticker := time.NewTicker(time.Duration(s.sweepInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Report scheduler stopped.")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep generates a combined report for every registered patient.
// Failures for one patient do not stop the sweep.
func (s *Scheduler) sweep(ctx context.Context) {
	s.logger.Info("Starting weekly report sweep...")

	patients, err := s.userRepo.ListPatients()
	if err != nil {
		s.logger.Error("Failed to list patients for report sweep", zap.Error(err))
		return
	}

	for _, patient := range patients {
		if ctx.Err() != nil {
			return
		}
		report, err := s.progressService.CombinedWeeklyReport(ctx, patient.Username)
		if err != nil {
			s.logger.Error("Failed to generate weekly report",
				zap.String("patient_id", patient.Username), zap.Error(err))
			continue
		}
		s.logger.Info("Weekly report generated",
			zap.String("patient_id", patient.Username),
			zap.Float64("score", report.Score.Score),
			zap.String("state", report.Score.State),
			zap.String("risk", report.Risk.CombinedRiskLevel))
	}

	s.logger.Info("Weekly report sweep finished.", zap.Int("patients", len(patients)))
}
