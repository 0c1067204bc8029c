package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/maritime_incident_dedup/internal/config"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/shenikar/maritime_incident_dedup/internal/service"
	"github.com/sirupsen/logrus"
)

// DedupJob периодически запускает проход дедупликации с параметрами из конфигурации
type DedupJob struct {
	dedupService service.DeduplicationService
	logger       *logrus.Logger
	cfg          *config.Config
}

// NewDedupJob создает новый DedupJob
func NewDedupJob(dedupService service.DeduplicationService, logger *logrus.Logger, cfg *config.Config) *DedupJob {
	return &DedupJob{
		dedupService: dedupService,
		logger:       logger,
		cfg:          cfg,
	}
}

// Run выполняет одну итерацию и возвращает число слияний.
// Если другой проход держит блокировку, итерация пропускается без ошибки.
func (j *DedupJob) Run(ctx context.Context) (int, error) {
	opts := models.RunOptions{
		ConfidenceThreshold: j.cfg.DedupConfidenceThreshold,
		MaxRecords:          j.cfg.DedupMaxRecords,
	}

	summary, err := j.dedupService.RunDeduplicationPass(ctx, opts)
	if err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			j.logger.Info("Deduplication pass already running, skipping scheduled run")
			return 0, nil
		}
		return 0, err
	}
	return summary.MergesPerformed, nil
}

// Start запускает горутину с периодическим проходом; DEDUP_INTERVAL=0 отключает задачу
func (j *DedupJob) Start(ctx context.Context) {
	interval := j.cfg.DedupInterval
	if interval <= 0 {
		j.logger.Info("Scheduled deduplication is disabled")
		return
	}

	j.logger.WithField("interval", interval.String()).Info("Starting scheduled deduplication job...")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				j.logger.Info("Stopping scheduled deduplication job.")
				return
			case <-ticker.C:
				merges, err := j.Run(ctx)
				if err != nil {
					j.logger.WithError(err).Error("Scheduled deduplication pass failed")
				} else if merges > 0 {
					j.logger.WithField("merges", merges).Info("Scheduled deduplication pass merged records")
				}
			}
		}
	}()
}
