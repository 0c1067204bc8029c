package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordPatch описывает частичное обновление записи.
// Записываются только поля с ненулевым указателем.
type RecordPatch struct {
	Description  *string    `json:"description,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	LocationName *string    `json:"location_name,omitempty"`
	OccurredAt   *time.Time `json:"occurred_at,omitempty"`

	VesselName   *string `json:"vessel_name,omitempty"`
	VesselType   *string `json:"vessel_type,omitempty"`
	VesselFlag   *string `json:"vessel_flag,omitempty"`
	VesselIMO    *string `json:"vessel_imo,omitempty"`
	IncidentType *string `json:"incident_type,omitempty"`
	AttackMethod *string `json:"attack_method,omitempty"`
	Outcome      *string `json:"outcome,omitempty"`

	ResponseActions     []string `json:"response_actions,omitempty"`
	AuthoritiesNotified []string `json:"authorities_notified,omitempty"`
	MergedSources       []string `json:"merged_sources,omitempty"`

	MergeStatus *MergeStatus `json:"merge_status,omitempty"`
	MergedInto  *uuid.UUID   `json:"merged_into,omitempty"`

	// ClearMergedInto сбрасывает ссылку на основную запись; MergedInto при этом игнорируется
	ClearMergedInto bool `json:"clear_merged_into,omitempty"`

	// RequireStatus - условие записи: патч применяется, только если
	// текущий статус записи совпадает с ожидаемым
	RequireStatus *MergeStatus `json:"-"`
}

// IsEmpty сообщает, что патч не меняет ни одного поля
func (p *RecordPatch) IsEmpty() bool {
	return p.Description == nil && p.Latitude == nil && p.Longitude == nil &&
		p.LocationName == nil && p.OccurredAt == nil &&
		p.VesselName == nil && p.VesselType == nil && p.VesselFlag == nil &&
		p.VesselIMO == nil && p.IncidentType == nil && p.AttackMethod == nil &&
		p.Outcome == nil && p.ResponseActions == nil && p.AuthoritiesNotified == nil &&
		p.MergedSources == nil && p.MergeStatus == nil && p.MergedInto == nil && !p.ClearMergedInto
}

// Apply применяет патч к копии записи и возвращает результат
func (p *RecordPatch) Apply(r *IncidentRecord) *IncidentRecord {
	out := *r
	if p.Description != nil {
		out.Description = p.Description
	}
	if p.Latitude != nil {
		out.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		out.Longitude = p.Longitude
	}
	if p.LocationName != nil {
		out.LocationName = p.LocationName
	}
	if p.OccurredAt != nil {
		out.OccurredAt = p.OccurredAt
	}
	if p.VesselName != nil {
		out.VesselName = p.VesselName
	}
	if p.VesselType != nil {
		out.VesselType = p.VesselType
	}
	if p.VesselFlag != nil {
		out.VesselFlag = p.VesselFlag
	}
	if p.VesselIMO != nil {
		out.VesselIMO = p.VesselIMO
	}
	if p.IncidentType != nil {
		out.IncidentType = p.IncidentType
	}
	if p.AttackMethod != nil {
		out.AttackMethod = p.AttackMethod
	}
	if p.Outcome != nil {
		out.Outcome = p.Outcome
	}
	if p.ResponseActions != nil {
		out.ResponseActions = p.ResponseActions
	}
	if p.AuthoritiesNotified != nil {
		out.AuthoritiesNotified = p.AuthoritiesNotified
	}
	if p.MergedSources != nil {
		out.MergedSources = p.MergedSources
	}
	if p.MergeStatus != nil {
		out.MergeStatus = *p.MergeStatus
	}
	if p.ClearMergedInto {
		out.MergedInto = nil
	} else if p.MergedInto != nil {
		out.MergedInto = p.MergedInto
	}
	return &out
}

// RecordFilter - условия выборки кандидатов из хранилища
type RecordFilter struct {
	OccurredAfter time.Time
	UnmergedOnly  bool
}

// RecordSort - порядок выборки
type RecordSort struct {
	Field string
	Desc  bool
}

// MergeStatusPtr возвращает указатель на статус
func MergeStatusPtr(s MergeStatus) *MergeStatus {
	return &s
}
