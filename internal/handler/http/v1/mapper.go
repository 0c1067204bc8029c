package v1

import (
	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

// DTOToRunOptions преобразует запрос запуска в параметры прохода
func DTOToRunOptions(dto RunDedupRequest) models.RunOptions {
	return models.RunOptions{
		DryRun:              dto.DryRun,
		ConfidenceThreshold: dto.ConfidenceThreshold,
		MaxRecords:          dto.MaxRecords,
	}
}

// ModelToRunSummaryResponse преобразует итоги прохода в DTO для ответа
func ModelToRunSummaryResponse(summary *models.RunSummary) *RunSummaryResponse {
	results := make([]MergeResultResponse, len(summary.Results))
	for i, r := range summary.Results {
		results[i] = MergeResultResponse{
			Kind:        string(r.Kind),
			Score:       r.Score,
			Record1ID:   r.Record1ID,
			Record2ID:   r.Record2ID,
			Success:     r.Success,
			PrimaryID:   optionalID(r.PrimaryID),
			SecondaryID: optionalID(r.SecondaryID),
			Error:       r.Error,
		}
	}

	return &RunSummaryResponse{
		RecordsAnalyzed:         summary.RecordsAnalyzed,
		SourceCount:             summary.SourceCount,
		PairsCompared:           summary.PairsCompared,
		PotentialMatchesFound:   summary.PotentialMatchesFound,
		HighConfidenceMatches:   summary.HighConfidenceMatches,
		MediumConfidenceMatches: summary.MediumConfidenceMatches,
		MergesPerformed:         summary.MergesPerformed,
		DryRun:                  summary.DryRun,
		Results:                 results,
		StartedAt:               summary.StartedAt,
		DurationMs:              summary.Duration.Milliseconds(),
	}
}

// ModelToIncidentRecordResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentRecordResponse(model *models.IncidentRecord) *IncidentRecordResponse {
	status := model.MergeStatus
	if model.IsUnmerged() {
		status = models.MergeStatusUnmerged
	}
	return &IncidentRecordResponse{
		ID:                  model.ID,
		Source:              model.Source,
		SourceReference:     model.SourceReference,
		OccurredAt:          model.OccurredAt,
		Title:               model.Title,
		Description:         model.Description,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		LocationName:        model.LocationName,
		VesselName:          model.VesselName,
		VesselType:          model.VesselType,
		VesselFlag:          model.VesselFlag,
		VesselIMO:           model.VesselIMO,
		IncidentType:        model.IncidentType,
		AttackMethod:        model.AttackMethod,
		Outcome:             model.Outcome,
		ResponseActions:     nonNil(model.ResponseActions),
		AuthoritiesNotified: nonNil(model.AuthoritiesNotified),
		MergeStatus:         string(status),
		MergedInto:          model.MergedInto,
		MergedSources:       nonNil(model.MergedSources),
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

func optionalID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
