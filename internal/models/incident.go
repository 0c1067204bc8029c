package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MergeStatus - состояние записи относительно слияния дубликатов
type MergeStatus string

const (
	// MergeStatusUnmerged хранится в бд как NULL
	MergeStatusUnmerged   MergeStatus = "unmerged"
	MergeStatusMerged     MergeStatus = "merged"
	MergeStatusMergedInto MergeStatus = "merged_into"
)

// Известные источники отчетов об инцидентах
const (
	SourceReCAAP  = "recaap"
	SourceUKMTO   = "ukmto"
	SourceMDATGoG = "mdat_gog"
	SourceIMB     = "imb_prc"
	SourceMICA    = "mica"
)

// IncidentRecord - отчет одного источника об инциденте.
// nil-указатель означает, что поле отсутствует.
type IncidentRecord struct {
	ID              uuid.UUID  `json:"id"`
	Source          string     `json:"source"`
	SourceReference *string    `json:"source_reference,omitempty"`
	OccurredAt      *time.Time `json:"occurred_at,omitempty"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	LocationName    *string    `json:"location_name,omitempty"`

	VesselName   *string `json:"vessel_name,omitempty"`
	VesselType   *string `json:"vessel_type,omitempty"`
	VesselFlag   *string `json:"vessel_flag,omitempty"`
	VesselIMO    *string `json:"vessel_imo,omitempty"`
	IncidentType *string `json:"incident_type,omitempty"`
	AttackMethod *string `json:"attack_method,omitempty"`
	Outcome      *string `json:"outcome,omitempty"`

	ResponseActions     []string `json:"response_actions,omitempty"`
	AuthoritiesNotified []string `json:"authorities_notified,omitempty"`

	MergeStatus   MergeStatus `json:"merge_status"`
	MergedInto    *uuid.UUID  `json:"merged_into,omitempty"`
	MergedSources []string    `json:"merged_sources,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasCoordinates сообщает, известны ли обе координаты
func (r *IncidentRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// IsUnmerged сообщает, что запись еще не участвовала в слиянии
func (r *IncidentRecord) IsUnmerged() bool {
	return r.MergeStatus == "" || r.MergeStatus == MergeStatusUnmerged
}

// Present сообщает, что строковое поле задано и не пустое
func Present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// StringPtr возвращает указатель на копию строки
func StringPtr(s string) *string {
	return &s
}

// FloatPtr возвращает указатель на копию числа
func FloatPtr(f float64) *float64 {
	return &f
}

// TimePtr возвращает указатель на копию времени
func TimePtr(t time.Time) *time.Time {
	return &t
}
