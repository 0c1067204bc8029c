package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/sirupsen/logrus"
)

// MaxMergeChainDepth - максимальное число переходов по ссылкам merged_into
const MaxMergeChainDepth = 5

var (
	// ErrMergeChainTooDeep - цепочка длиннее допустимой или зациклена
	ErrMergeChainTooDeep = errors.New("merge chain exceeds depth limit")
	// ErrBrokenMergeChain - запись помечена merged_into без ссылки на основную
	ErrBrokenMergeChain = errors.New("merge chain is broken")
)

// ResolvePrimary идет по ссылкам merged_into от записи id и возвращает
// текущую основную запись
func (s *dedupService) ResolvePrimary(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "dedup",
		"method":    "ResolvePrimary",
		"record_id": id,
	})

	if s.store == nil {
		return nil, fmt.Errorf("service: %w", ErrNotConfigured)
	}

	current, err := s.store.Get(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get record")
		return nil, fmt.Errorf("service: could not get record %s: %w", id, err)
	}

	for hops := 0; current.MergeStatus == models.MergeStatusMergedInto; hops++ {
		if hops >= MaxMergeChainDepth {
			log.WithField("depth", hops).Error("Merge chain exceeds depth limit")
			return nil, fmt.Errorf("service: record %s: %w", id, ErrMergeChainTooDeep)
		}
		if current.MergedInto == nil {
			log.WithField("broken_at", current.ID).Error("Record is merged_into without a target")
			return nil, fmt.Errorf("service: record %s: %w", current.ID, ErrBrokenMergeChain)
		}

		next, err := s.store.Get(ctx, *current.MergedInto)
		if err != nil {
			log.WithError(err).WithField("target_id", *current.MergedInto).Warn("Failed to follow merge chain")
			return nil, fmt.Errorf("service: could not follow merge chain at %s: %w", *current.MergedInto, err)
		}
		current = next
	}

	if current.ID != id {
		log.WithField("primary_id", current.ID).Debug("Resolved effective primary")
	}
	return current, nil
}
