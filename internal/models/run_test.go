package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeResult_JSONOmitsUnsetIDs(t *testing.T) {
	candidate := MergeResult{
		Kind:      MergeResultCandidate,
		Score:     0.91,
		Record1ID: uuid.New(),
		Record2ID: uuid.New(),
	}

	data, err := json.Marshal(candidate)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, candidate.Record1ID.String(), fields["record1_id"])
	assert.Equal(t, candidate.Record2ID.String(), fields["record2_id"])
	assert.NotContains(t, fields, "primary_id")
	assert.NotContains(t, fields, "secondary_id")
	assert.NotContains(t, fields, "error")
}

func TestMergeResult_JSONKeepsExecutedIDs(t *testing.T) {
	executed := MergeResult{
		Kind:        MergeResultExecuted,
		Record1ID:   uuid.New(),
		Record2ID:   uuid.New(),
		Success:     true,
		PrimaryID:   uuid.New(),
		SecondaryID: uuid.New(),
	}

	data, err := json.Marshal(executed)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, executed.PrimaryID.String(), fields["primary_id"])
	assert.Equal(t, executed.SecondaryID.String(), fields["secondary_id"])
	assert.Equal(t, true, fields["success"])
}
