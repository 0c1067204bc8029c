package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectQuery_FilterAndSort(t *testing.T) {
	after := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)
	filter := models.RecordFilter{OccurredAfter: after, UnmergedOnly: true}

	query, args, err := buildSelectQuery(filter, models.RecordSort{Field: "occurred_at", Desc: true}, 50, 100)

	require.NoError(t, err)
	assert.Contains(t, query, "WHERE COALESCE(occurred_at, created_at) >= $1 AND merge_status IS NULL")
	assert.Contains(t, query, "ORDER BY COALESCE(occurred_at, created_at) DESC, id DESC")
	assert.Contains(t, query, "LIMIT $2 OFFSET $3;")
	assert.Equal(t, []any{after, 50, 100}, args)
}

func TestBuildSelectQuery_NoFilter(t *testing.T) {
	query, args, err := buildSelectQuery(models.RecordFilter{}, models.RecordSort{Field: "created_at"}, 10, 0)

	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY created_at ASC, id ASC")
	assert.Contains(t, query, "LIMIT $1 OFFSET $2;")
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuildSelectQuery_Invalid(t *testing.T) {
	_, _, err := buildSelectQuery(models.RecordFilter{}, models.RecordSort{Field: "title; DROP TABLE"}, 10, 0)
	assert.ErrorContains(t, err, "unsupported sort field")

	_, _, err = buildSelectQuery(models.RecordFilter{}, models.RecordSort{}, 0, 0)
	assert.ErrorContains(t, err, "page size must be positive")
}

func TestPageTokens(t *testing.T) {
	offset, err := parsePageToken("")
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	offset, err = parsePageToken("200")
	require.NoError(t, err)
	assert.Equal(t, 200, offset)

	_, err = parsePageToken("-1")
	assert.Error(t, err)
	_, err = parsePageToken("abc")
	assert.Error(t, err)

	// полная страница - есть продолжение, неполная - последняя
	assert.Equal(t, "150", nextPageToken(100, 50, 50))
	assert.Equal(t, "", nextPageToken(100, 50, 20))
}

func TestBuildPatchQuery_FillAndCondition(t *testing.T) {
	id := uuid.New()
	patch := &models.RecordPatch{
		VesselIMO:       models.StringPtr("9321483"),
		ResponseActions: []string{"crew mustered in citadel"},
		MergeStatus:     models.MergeStatusPtr(models.MergeStatusMerged),
		RequireStatus:   models.MergeStatusPtr(models.MergeStatusUnmerged),
	}

	query, args := buildPatchQuery(id, patch)

	assert.Equal(t,
		"UPDATE incident_records SET vessel_imo = $1, response_actions = $2, merge_status = $3, updated_at = NOW()\n"+
			"WHERE id = $4 AND merge_status IS NULL;",
		query)
	assert.Equal(t, []any{"9321483", []string{"crew mustered in citadel"}, "merged", id}, args)
}

func TestBuildPatchQuery_MergedIntoWithStatusCondition(t *testing.T) {
	id := uuid.New()
	target := uuid.New()
	patch := &models.RecordPatch{
		MergeStatus:   models.MergeStatusPtr(models.MergeStatusMergedInto),
		MergedInto:    &target,
		RequireStatus: models.MergeStatusPtr(models.MergeStatusMerged),
	}

	query, args := buildPatchQuery(id, patch)

	assert.Equal(t,
		"UPDATE incident_records SET merge_status = $1, merged_into = $2, updated_at = NOW()\n"+
			"WHERE id = $3 AND merge_status = $4;",
		query)
	assert.Equal(t, []any{"merged_into", target, id, "merged"}, args)
}

func TestBuildPatchQuery_ResetToUnmerged(t *testing.T) {
	id := uuid.New()
	patch := &models.RecordPatch{MergeStatus: models.MergeStatusPtr(models.MergeStatusUnmerged)}

	query, args := buildPatchQuery(id, patch)

	assert.Equal(t, "UPDATE incident_records SET merge_status = NULL, updated_at = NOW()\nWHERE id = $1;", query)
	assert.Equal(t, []any{id}, args)
}

func TestBuildPatchQuery_RollbackClearsMergedInto(t *testing.T) {
	id := uuid.New()
	patch := &models.RecordPatch{
		MergeStatus:     models.MergeStatusPtr(models.MergeStatusUnmerged),
		ClearMergedInto: true,
		RequireStatus:   models.MergeStatusPtr(models.MergeStatusMergedInto),
	}

	query, args := buildPatchQuery(id, patch)

	assert.Equal(t,
		"UPDATE incident_records SET merge_status = NULL, merged_into = NULL, updated_at = NOW()\n"+
			"WHERE id = $1 AND merge_status = $2;",
		query)
	assert.Equal(t, []any{id, "merged_into"}, args)
}
