package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/shenikar/maritime_incident_dedup/internal/service"
)

var (
	// ErrRecordNotFound - запись с таким id не существует
	ErrRecordNotFound = errors.New("incident record not found")
	// ErrConflict - статус записи изменился с момента чтения
	ErrConflict = errors.New("incident record merge status changed concurrently")
)

const defaultCacheTTL = 5 * time.Minute

// RecordRepository - хранилище отчетов в PostgreSQL с кэшем чтения в Redis
type RecordRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewRecordRepository создает репозиторий. redisClient может быть nil - тогда кэш не используется.
func NewRecordRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.RecordStore {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &RecordRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Query возвращает страницу записей и токен следующей страницы
func (r *RecordRepository) Query(ctx context.Context, filter models.RecordFilter, order models.RecordSort, pageSize int, pageToken string) ([]*models.IncidentRecord, string, error) {
	offset, err := parsePageToken(pageToken)
	if err != nil {
		return nil, "", err
	}
	query, args, err := buildSelectQuery(filter, order, pageSize, offset)
	if err != nil {
		return nil, "", err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query incident records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.IncidentRecord, 0, pageSize)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan incident record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error records iteration: %w", err)
	}
	return records, nextPageToken(offset, pageSize, len(records)), nil
}

// Get возвращает запись по UUID, сначала проверяя кэш
func (r *RecordRepository) Get(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	if cached, err := r.GetRecordFromCache(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	query := "SELECT" + recordColumns + "\nFROM incident_records\nWHERE id = $1;"
	record, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to get incident record by id: %w", err)
	}

	// кэш - только ускорение чтения, его сбой не должен ломать запрос
	_ = r.SetRecordCache(ctx, record)
	return record, nil
}

// Patch применяет частичное обновление. Если задан RequireStatus и текущий
// статус другой, возвращается ErrConflict.
func (r *RecordRepository) Patch(ctx context.Context, id uuid.UUID, patch *models.RecordPatch) error {
	if patch == nil || patch.IsEmpty() {
		return nil
	}

	query, args := buildPatchQuery(id, patch)
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to patch incident record: %w", err)
	}
	_ = r.InvalidateRecordCache(ctx, id)

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM incident_records WHERE id = $1);", id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check incident record existence: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
		}
		return fmt.Errorf("%w: %s", ErrConflict, id)
	}
	return nil
}

// RecordMerge сохраняет запись аудита о выполненном слиянии
func (r *RecordRepository) RecordMerge(ctx context.Context, audit *models.MergeAudit) error {
	dimensions, err := json.Marshal(audit.Dimensions)
	if err != nil {
		return fmt.Errorf("failed to marshal merge dimensions: %w", err)
	}

	query := `
		INSERT INTO incident_merges (id, primary_id, secondary_id, score, dimensions, merged_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.db.Exec(ctx, query,
		audit.ID,
		audit.PrimaryID,
		audit.SecondaryID,
		audit.Score,
		dimensions,
		audit.MergedBy,
		audit.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record merge audit: %w", err)
	}
	return nil
}

func recordCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident_record:%s", id.String())
}

// GetRecordFromCache пытается получить запись из Redis; (nil, nil) - промах
func (r *RecordRepository) GetRecordFromCache(ctx context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, recordCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident record from cache: %w", err)
	}

	record := &models.IncidentRecord{}
	if err := json.Unmarshal(val, record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident record from cache: %w", err)
	}
	return record, nil
}

// SetRecordCache сохраняет запись в Redis
func (r *RecordRepository) SetRecordCache(ctx context.Context, record *models.IncidentRecord) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal incident record for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, recordCacheKey(record.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident record in cache: %w", err)
	}
	return nil
}

// InvalidateRecordCache удаляет запись из кэша Redis
func (r *RecordRepository) InvalidateRecordCache(ctx context.Context, id uuid.UUID) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, recordCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident record cache: %w", err)
	}
	return nil
}

// scanRecord читает одну строку выборки recordColumns
func scanRecord(row pgx.Row) (*models.IncidentRecord, error) {
	record := &models.IncidentRecord{}
	var mergeStatus *string
	err := row.Scan(
		&record.ID,
		&record.Source,
		&record.SourceReference,
		&record.OccurredAt,
		&record.Title,
		&record.Description,
		&record.Latitude,
		&record.Longitude,
		&record.LocationName,
		&record.VesselName,
		&record.VesselType,
		&record.VesselFlag,
		&record.VesselIMO,
		&record.IncidentType,
		&record.AttackMethod,
		&record.Outcome,
		&record.ResponseActions,
		&record.AuthoritiesNotified,
		&mergeStatus,
		&record.MergedInto,
		&record.MergedSources,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.MergeStatus = models.MergeStatusUnmerged
	if mergeStatus != nil {
		record.MergeStatus = models.MergeStatus(*mergeStatus)
	}
	return record, nil
}
