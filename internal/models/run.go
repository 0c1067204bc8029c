package models

import (
	"time"

	"github.com/google/uuid"
)

// Значения по умолчанию для прохода дедупликации
const (
	DefaultConfidenceThreshold = 0.8
	DefaultMaxRecords          = 100
)

// RunOptions - параметры одного прохода дедупликации
type RunOptions struct {
	DryRun              bool    `json:"dry_run"`
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	MaxRecords          int     `json:"max_records"`
}

// DefaultRunOptions возвращает параметры по умолчанию
func DefaultRunOptions() RunOptions {
	return RunOptions{
		ConfidenceThreshold: DefaultConfidenceThreshold,
		MaxRecords:          DefaultMaxRecords,
	}
}

// MergeResultKind различает кандидата dry-run и выполненное слияние
type MergeResultKind string

const (
	MergeResultCandidate MergeResultKind = "candidate"
	MergeResultExecuted  MergeResultKind = "executed"
)

// MergeResult - элемент списка результатов прохода
type MergeResult struct {
	Kind  MergeResultKind `json:"kind"`
	Score float64         `json:"score"`

	// Пара кандидатов; заполняется всегда
	Record1ID uuid.UUID `json:"record1_id,omitzero"`
	Record2ID uuid.UUID `json:"record2_id,omitzero"`

	// Заполняются для выполненных слияний после выбора основной записи
	Success     bool      `json:"success"`
	PrimaryID   uuid.UUID `json:"primary_id,omitzero"`
	SecondaryID uuid.UUID `json:"secondary_id,omitzero"`
	Error       string    `json:"error,omitempty"`
}

// RunSummary - итог прохода дедупликации
type RunSummary struct {
	RecordsAnalyzed         int           `json:"records_analyzed"`
	SourceCount             int           `json:"source_count"`
	PairsCompared           int           `json:"pairs_compared"`
	PotentialMatchesFound   int           `json:"potential_matches_found"`
	HighConfidenceMatches   int           `json:"high_confidence_matches"`
	MediumConfidenceMatches int           `json:"medium_confidence_matches"`
	MergesPerformed         int           `json:"merges_performed"`
	DryRun                  bool          `json:"dry_run"`
	Results                 []MergeResult `json:"results"`
	StartedAt               time.Time     `json:"started_at"`
	Duration                time.Duration `json:"duration"`
}

// MergeAudit - запись журнала выполненных слияний
type MergeAudit struct {
	ID          uuid.UUID          `json:"id"`
	PrimaryID   uuid.UUID          `json:"primary_id"`
	SecondaryID uuid.UUID          `json:"secondary_id"`
	Score       float64            `json:"score"`
	Dimensions  map[string]float64 `json:"dimensions"`
	MergedBy    string             `json:"merged_by"`
	CreatedAt   time.Time          `json:"created_at"`
}
