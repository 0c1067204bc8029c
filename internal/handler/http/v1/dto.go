package v1

import (
	"time"

	"github.com/google/uuid"
)

// RunDedupRequest DTO для запуска прохода дедупликации
// @Description DTO для запуска прохода дедупликации. Нулевые значения заменяются значениями по умолчанию.
type RunDedupRequest struct {
	DryRun bool `json:"dry_run"`
	// Минимальный балл для слияния; 0 или отсутствие поля означает 0.8
	ConfidenceThreshold float64 `json:"confidence_threshold" validate:"gte=0,lte=1"`
	// Максимум записей за проход; 0 или отсутствие поля означает 100
	MaxRecords int `json:"max_records" validate:"gte=0,lte=1000"`
}

// MergeResultResponse DTO одного результата слияния
// @Description Кандидат на слияние (dry run) или результат выполненного слияния
type MergeResultResponse struct {
	Kind        string     `json:"kind"`
	Score       float64    `json:"score"`
	Record1ID   uuid.UUID  `json:"record1_id"`
	Record2ID   uuid.UUID  `json:"record2_id"`
	Success     bool       `json:"success"`
	PrimaryID   *uuid.UUID `json:"primary_id,omitempty"`
	SecondaryID *uuid.UUID `json:"secondary_id,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// RunSummaryResponse DTO для ответа с итогами прохода
// @Description Итоги прохода дедупликации
type RunSummaryResponse struct {
	RecordsAnalyzed         int                   `json:"records_analyzed"`
	SourceCount             int                   `json:"source_count"`
	PairsCompared           int                   `json:"pairs_compared"`
	PotentialMatchesFound   int                   `json:"potential_matches_found"`
	HighConfidenceMatches   int                   `json:"high_confidence_matches"`
	MediumConfidenceMatches int                   `json:"medium_confidence_matches"`
	MergesPerformed         int                   `json:"merges_performed"`
	DryRun                  bool                  `json:"dry_run"`
	Results                 []MergeResultResponse `json:"results"`
	StartedAt               time.Time             `json:"started_at"`
	DurationMs              int64                 `json:"duration_ms"`
}

// IncidentRecordResponse DTO для ответа с отчетом об инциденте
// @Description DTO для ответа с отчетом об инциденте
type IncidentRecordResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Source              string     `json:"source"`
	SourceReference     *string    `json:"source_reference,omitempty"`
	OccurredAt          *time.Time `json:"occurred_at,omitempty"`
	Title               string     `json:"title"`
	Description         *string    `json:"description,omitempty"`
	Latitude            *float64   `json:"latitude,omitempty"`
	Longitude           *float64   `json:"longitude,omitempty"`
	LocationName        *string    `json:"location_name,omitempty"`
	VesselName          *string    `json:"vessel_name,omitempty"`
	VesselType          *string    `json:"vessel_type,omitempty"`
	VesselFlag          *string    `json:"vessel_flag,omitempty"`
	VesselIMO           *string    `json:"vessel_imo,omitempty"`
	IncidentType        *string    `json:"incident_type,omitempty"`
	AttackMethod        *string    `json:"attack_method,omitempty"`
	Outcome             *string    `json:"outcome,omitempty"`
	ResponseActions     []string   `json:"response_actions"`
	AuthoritiesNotified []string   `json:"authorities_notified"`
	MergeStatus         string     `json:"merge_status"`
	MergedInto          *uuid.UUID `json:"merged_into,omitempty"`
	MergedSources       []string   `json:"merged_sources"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
