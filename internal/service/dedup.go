package service

//go:generate mockgen -source=dedup.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/config"
	"github.com/shenikar/maritime_incident_dedup/internal/dedup"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/shenikar/maritime_incident_dedup/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrRunInProgress - другой проход уже держит блокировку
	ErrRunInProgress = errors.New("deduplication run already in progress")
	// ErrInvalidOptions - некорректные параметры прохода
	ErrInvalidOptions = errors.New("invalid run options")
	// ErrNotConfigured - хранилище записей не настроено
	ErrNotConfigured = errors.New("record store is not configured")
	// ErrAlreadyMerged - обе записи уже сведены к одной основной
	ErrAlreadyMerged = errors.New("records already resolve to the same primary")
)

const (
	defaultPageSize       = 100
	defaultMaxPages       = 10
	defaultScoringWorkers = 4
	defaultWindow         = 30 * 24 * time.Hour
)

// RecordStore определяет контракт хранилища отчетов об инцидентах
type RecordStore interface {
	Query(ctx context.Context, filter models.RecordFilter, order models.RecordSort, pageSize int, pageToken string) ([]*models.IncidentRecord, string, error)
	Get(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error)
	Patch(ctx context.Context, id uuid.UUID, patch *models.RecordPatch) error
	RecordMerge(ctx context.Context, audit *models.MergeAudit) error
}

// RunLocker не дает двум проходам выполняться одновременно
type RunLocker interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// SimilarityScorer - сравнение двух отчетов из разных источников
type SimilarityScorer interface {
	Score(a, b *models.IncidentRecord) (dedup.ScoreResult, error)
	Classify(total float64) dedup.Confidence
}

// DeduplicationService определяет контракт движка межисточниковой дедупликации
type DeduplicationService interface {
	RunDeduplicationPass(ctx context.Context, opts models.RunOptions) (*models.RunSummary, error)
	ResolvePrimary(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error)
}

type dedupService struct {
	store     RecordStore
	locker    RunLocker
	publisher webhook.WebhookPublisher
	scorer    SimilarityScorer
	selector  *dedup.Selector
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

// NewDeduplicationService создает сервис. locker и publisher могут быть nil.
func NewDeduplicationService(
	store RecordStore,
	locker RunLocker,
	publisher webhook.WebhookPublisher,
	scorer SimilarityScorer,
	selector *dedup.Selector,
	logger *logrus.Logger,
	cfg *config.Config,
) DeduplicationService {
	return &dedupService{
		store:     store,
		locker:    locker,
		publisher: publisher,
		scorer:    scorer,
		selector:  selector,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// candidatePair - пара записей из разных источников и результат ее сравнения
type candidatePair struct {
	a, b   *models.IncidentRecord
	result dedup.ScoreResult
	scored bool
}

// RunDeduplicationPass выполняет один проход: выборка, разбиение по источникам,
// сравнение пар, ранжирование и жадное применение слияний
func (s *dedupService) RunDeduplicationPass(ctx context.Context, opts models.RunOptions) (*models.RunSummary, error) {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return nil, err
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dedup",
		"method":    "RunDeduplicationPass",
		"dry_run":   opts.DryRun,
		"threshold": opts.ConfidenceThreshold,
	})
	log.Info("Starting deduplication pass")

	if s.store == nil {
		log.Error("Record store is not configured")
		return nil, fmt.Errorf("service: %w", ErrNotConfigured)
	}

	if !opts.DryRun && s.locker != nil {
		acquired, err := s.locker.Acquire(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to acquire run lock")
			return nil, fmt.Errorf("service: could not acquire run lock: %w", err)
		}
		if !acquired {
			log.Warn("Another deduplication pass holds the run lock")
			return nil, fmt.Errorf("service: %w", ErrRunInProgress)
		}
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx)); err != nil {
				log.WithError(err).Warn("Failed to release run lock")
			}
		}()
	}

	started := s.now()
	records, err := s.fetchCandidates(ctx, opts.MaxRecords)
	if err != nil {
		log.WithError(err).Error("Failed to fetch candidate records")
		return nil, fmt.Errorf("service: could not fetch candidates: %w", err)
	}

	partitions, sources := partitionBySource(records)
	summary := &models.RunSummary{
		RecordsAnalyzed: len(records),
		SourceCount:     len(sources),
		DryRun:          opts.DryRun,
		Results:         make([]models.MergeResult, 0),
		StartedAt:       started,
	}

	pairs := generatePairs(partitions, sources)
	if err := s.scorePairs(ctx, pairs, log); err != nil {
		log.WithError(err).Error("Scoring interrupted")
		return nil, fmt.Errorf("service: scoring interrupted: %w", err)
	}

	matches := make([]*candidatePair, 0)
	for _, pair := range pairs {
		// итог 0 - пара несравнима и в статистику не входит
		if !pair.scored || pair.result.Total == 0 {
			continue
		}
		summary.PairsCompared++
		switch s.scorer.Classify(pair.result.Total) {
		case dedup.ConfidenceHigh:
			summary.HighConfidenceMatches++
		case dedup.ConfidenceMedium:
			summary.MediumConfidenceMatches++
		default:
			continue
		}
		matches = append(matches, pair)
	}
	summary.PotentialMatchesFound = len(matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].result.Total > matches[j].result.Total
	})

	consumed := make(map[uuid.UUID]struct{}, len(records))
	for _, match := range matches {
		if _, ok := consumed[match.a.ID]; ok {
			continue
		}
		if _, ok := consumed[match.b.ID]; ok {
			continue
		}
		if match.result.Total < opts.ConfidenceThreshold {
			continue
		}
		consumed[match.a.ID] = struct{}{}
		consumed[match.b.ID] = struct{}{}

		if opts.DryRun {
			summary.Results = append(summary.Results, models.MergeResult{
				Kind:      models.MergeResultCandidate,
				Record1ID: match.a.ID,
				Record2ID: match.b.ID,
				Score:     match.result.Total,
			})
			summary.MergesPerformed++
			continue
		}

		result := s.executeMerge(ctx, match, log)
		summary.Results = append(summary.Results, result)
		if result.Success {
			summary.MergesPerformed++
		}
	}

	summary.Duration = s.now().Sub(started)
	log.WithFields(logrus.Fields{
		"records_analyzed":  summary.RecordsAnalyzed,
		"sources":           summary.SourceCount,
		"pairs_compared":    summary.PairsCompared,
		"high_confidence":   summary.HighConfidenceMatches,
		"medium_confidence": summary.MediumConfidenceMatches,
		"merges":            summary.MergesPerformed,
	}).Info("Deduplication pass completed")
	return summary, nil
}

// fetchCandidates постранично выбирает несведенные записи за скользящее окно
func (s *dedupService) fetchCandidates(ctx context.Context, maxRecords int) ([]*models.IncidentRecord, error) {
	window := s.cfg.DedupWindow
	if window <= 0 {
		window = defaultWindow
	}
	pageSize := s.cfg.DedupPageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	maxPages := s.cfg.DedupMaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	filter := models.RecordFilter{
		OccurredAfter: s.now().Add(-window),
		UnmergedOnly:  true,
	}
	order := models.RecordSort{Field: "occurred_at", Desc: true}

	records := make([]*models.IncidentRecord, 0, maxRecords)
	token := ""
	for page := 0; page < maxPages && len(records) < maxRecords; page++ {
		batch, next, err := s.store.Query(ctx, filter, order, min(pageSize, maxRecords-len(records)), token)
		if err != nil {
			return nil, fmt.Errorf("query page %d: %w", page+1, err)
		}
		records = append(records, batch...)
		if next == "" {
			break
		}
		token = next
	}

	if len(records) > maxRecords {
		records = records[:maxRecords]
	}
	return records, nil
}

// scorePairs сравнивает пары параллельно; ошибка одной пары не влияет на остальные
func (s *dedupService) scorePairs(ctx context.Context, pairs []*candidatePair, log *logrus.Entry) error {
	workers := s.cfg.DedupScoringWorkers
	if workers <= 0 {
		workers = defaultScoringWorkers
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, pair := range pairs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			result, err := s.scorer.Score(pair.a, pair.b)
			if err != nil {
				log.WithError(err).WithFields(logrus.Fields{
					"record1_id": pair.a.ID,
					"record2_id": pair.b.ID,
				}).Warn("Skipping pair that could not be scored")
				return nil
			}
			pair.result = result
			pair.scored = true
			return nil
		})
	}
	return g.Wait()
}

// executeMerge сливает пару и возвращает результат; ошибки не прерывают проход.
// Сначала условно помечается вторичная запись, затем обновляется основная.
// Если основную записать не удалось, пометка вторичной откатывается.
func (s *dedupService) executeMerge(ctx context.Context, match *candidatePair, log *logrus.Entry) models.MergeResult {
	result := models.MergeResult{
		Kind:      models.MergeResultExecuted,
		Score:     match.result.Total,
		Record1ID: match.a.ID,
		Record2ID: match.b.ID,
	}
	mlog := log.WithFields(logrus.Fields{
		"record1_id": match.a.ID,
		"record2_id": match.b.ID,
		"score":      match.result.Total,
	})
	fail := func(err error) models.MergeResult {
		mlog.WithError(err).Error("Failed to merge records")
		result.Success = false
		result.Error = err.Error()
		return result
	}

	left, err := s.ResolvePrimary(ctx, match.a.ID)
	if err != nil {
		return fail(err)
	}
	right, err := s.ResolvePrimary(ctx, match.b.ID)
	if err != nil {
		return fail(err)
	}
	if left.ID == right.ID {
		return fail(fmt.Errorf("service: %w: %s", ErrAlreadyMerged, left.ID))
	}

	primary, secondary := s.selector.SelectPrimary(left, right)
	result.PrimaryID = primary.ID
	result.SecondaryID = secondary.ID

	primaryID := primary.ID
	secondaryStatus := effectiveStatus(secondary)
	secondaryPatch := &models.RecordPatch{
		MergeStatus:   models.MergeStatusPtr(models.MergeStatusMergedInto),
		MergedInto:    &primaryID,
		RequireStatus: models.MergeStatusPtr(secondaryStatus),
	}
	if err := s.store.Patch(ctx, secondary.ID, secondaryPatch); err != nil {
		return fail(fmt.Errorf("service: could not mark secondary %s: %w", secondary.ID, err))
	}

	primaryPatch := dedup.MergeFields(primary, secondary)
	primaryPatch.MergeStatus = models.MergeStatusPtr(models.MergeStatusMerged)
	primaryPatch.RequireStatus = models.MergeStatusPtr(effectiveStatus(primary))
	if err := s.store.Patch(ctx, primary.ID, primaryPatch); err != nil {
		err = fmt.Errorf("service: could not update primary %s: %w", primary.ID, err)
		rollback := &models.RecordPatch{
			MergeStatus:     models.MergeStatusPtr(secondaryStatus),
			ClearMergedInto: true,
			RequireStatus:   models.MergeStatusPtr(models.MergeStatusMergedInto),
		}
		if rbErr := s.store.Patch(ctx, secondary.ID, rollback); rbErr != nil {
			mlog.WithError(rbErr).WithField("secondary_id", secondary.ID).
				Error("Failed to roll back secondary after primary update failure")
			err = fmt.Errorf("%w; rollback of secondary %s failed: %v", err, secondary.ID, rbErr)
		}
		return fail(err)
	}

	result.Success = true
	mlog.WithFields(logrus.Fields{
		"primary_id":   primary.ID,
		"secondary_id": secondary.ID,
	}).Info("Records merged successfully")

	audit := &models.MergeAudit{
		ID:          uuid.New(),
		PrimaryID:   primary.ID,
		SecondaryID: secondary.ID,
		Score:       match.result.Total,
		Dimensions:  match.result.Dimensions,
		MergedBy:    "system",
		CreatedAt:   s.now(),
	}
	if err := s.store.RecordMerge(ctx, audit); err != nil {
		mlog.WithError(err).Warn("Failed to record merge audit")
	}

	if s.publisher != nil {
		event := webhook.WebhookEvent{
			Type:        webhook.EventIncidentMerged,
			PrimaryID:   primary.ID,
			SecondaryID: secondary.ID,
			Score:       match.result.Total,
			Dimensions:  match.result.Dimensions,
			Sources:     []string{primary.Source, secondary.Source},
			Timestamp:   s.now(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			mlog.WithError(err).Warn("Failed to publish merge event")
		}
	}

	return result
}

func effectiveStatus(r *models.IncidentRecord) models.MergeStatus {
	if r.IsUnmerged() {
		return models.MergeStatusUnmerged
	}
	return r.MergeStatus
}

func normalizeOptions(opts models.RunOptions) (models.RunOptions, error) {
	if opts.ConfidenceThreshold == 0 {
		opts.ConfidenceThreshold = models.DefaultConfidenceThreshold
	}
	if opts.MaxRecords == 0 {
		opts.MaxRecords = models.DefaultMaxRecords
	}
	if opts.ConfidenceThreshold < 0 || opts.ConfidenceThreshold > 1 {
		return opts, fmt.Errorf("service: %w: confidence threshold %.2f outside [0, 1]",
			ErrInvalidOptions, opts.ConfidenceThreshold)
	}
	if opts.MaxRecords < 0 {
		return opts, fmt.Errorf("service: %w: max records %d is negative", ErrInvalidOptions, opts.MaxRecords)
	}
	return opts, nil
}

// partitionBySource группирует записи по источнику; источники отсортированы для детерминизма
func partitionBySource(records []*models.IncidentRecord) (map[string][]*models.IncidentRecord, []string) {
	partitions := make(map[string][]*models.IncidentRecord)
	for _, r := range records {
		partitions[r.Source] = append(partitions[r.Source], r)
	}
	sources := make([]string, 0, len(partitions))
	for source := range partitions {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return partitions, sources
}

// generatePairs строит пары только между разными источниками
func generatePairs(partitions map[string][]*models.IncidentRecord, sources []string) []*candidatePair {
	pairs := make([]*candidatePair, 0)
	for i := 0; i < len(sources); i++ {
		for j := i + 1; j < len(sources); j++ {
			for _, a := range partitions[sources[i]] {
				if !a.IsUnmerged() {
					continue
				}
				for _, b := range partitions[sources[j]] {
					if !b.IsUnmerged() {
						continue
					}
					pairs = append(pairs, &candidatePair{a: a, b: b})
				}
			}
		}
	}
	return pairs
}
