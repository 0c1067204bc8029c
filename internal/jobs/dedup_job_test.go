package jobs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shenikar/maritime_incident_dedup/internal/config"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/shenikar/maritime_incident_dedup/internal/service"
	"github.com/shenikar/maritime_incident_dedup/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDedupJob(t *testing.T, interval time.Duration) (*DedupJob, *mocks.MockDeduplicationService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDeduplicationService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DedupConfidenceThreshold: 0.85,
		DedupMaxRecords:          200,
		DedupInterval:            interval,
	}
	return NewDedupJob(mockService, logger, cfg), mockService
}

func TestDedupJob_RunUsesConfiguredOptions(t *testing.T) {
	job, mockService := newTestDedupJob(t, 0)

	mockService.EXPECT().
		RunDeduplicationPass(gomock.Any(), models.RunOptions{ConfidenceThreshold: 0.85, MaxRecords: 200}).
		Return(&models.RunSummary{MergesPerformed: 3}, nil).
		Times(1)

	merges, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, merges)
}

func TestDedupJob_RunSkipsWhenLocked(t *testing.T) {
	job, mockService := newTestDedupJob(t, 0)

	mockService.EXPECT().
		RunDeduplicationPass(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", service.ErrRunInProgress))

	merges, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, merges)
}

func TestDedupJob_RunPropagatesErrors(t *testing.T) {
	job, mockService := newTestDedupJob(t, 0)

	mockService.EXPECT().
		RunDeduplicationPass(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("service: could not fetch candidates"))

	_, err := job.Run(context.Background())

	assert.ErrorContains(t, err, "could not fetch candidates")
}

func TestDedupJob_StartDisabled(t *testing.T) {
	job, mockService := newTestDedupJob(t, 0)

	mockService.EXPECT().RunDeduplicationPass(gomock.Any(), gomock.Any()).Times(0)

	job.Start(context.Background())
}

func TestDedupJob_StartRunsOnTick(t *testing.T) {
	job, mockService := newTestDedupJob(t, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)
	mockService.EXPECT().
		RunDeduplicationPass(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.RunOptions) (*models.RunSummary, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return &models.RunSummary{}, nil
		}).
		MinTimes(1)

	job.Start(ctx)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("scheduled pass did not run")
	}
	cancel()
	// даем горутине завершиться до проверки ожиданий контроллера
	time.Sleep(20 * time.Millisecond)
}
