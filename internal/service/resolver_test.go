package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// buildChain создает цепочку из hops переходов merged_into; последняя запись - основная
func buildChain(hops int) []*models.IncidentRecord {
	chain := make([]*models.IncidentRecord, hops+1)
	for i := range chain {
		chain[i] = testRecord(models.SourceReCAAP)
	}
	for i := 0; i < hops; i++ {
		chain[i].MergeStatus = models.MergeStatusMergedInto
		chain[i].MergedInto = &chain[i+1].ID
	}
	chain[hops].MergeStatus = models.MergeStatusMerged
	return chain
}

func expectRecords(deps testDeps, records ...*models.IncidentRecord) {
	byID := make(map[uuid.UUID]*models.IncidentRecord, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	deps.store.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.IncidentRecord, error) {
			if r, ok := byID[id]; ok {
				return r, nil
			}
			return nil, errors.New("incident record not found")
		}).AnyTimes()
}

func TestResolvePrimary_UnmergedReturnsItself(t *testing.T) {
	svc, deps := newTestDedupService(t)
	record := testRecord(models.SourceUKMTO)
	deps.store.EXPECT().Get(gomock.Any(), record.ID).Return(record, nil).Times(1)

	resolved, err := svc.ResolvePrimary(context.Background(), record.ID)

	require.NoError(t, err)
	assert.Equal(t, record, resolved)
}

func TestResolvePrimary_FollowsChainWithinLimit(t *testing.T) {
	testCases := []struct {
		name string
		hops int
	}{
		{name: "single hop", hops: 1},
		{name: "exactly at limit", hops: MaxMergeChainDepth},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newTestDedupService(t)
			chain := buildChain(tc.hops)
			expectRecords(deps, chain...)

			resolved, err := svc.ResolvePrimary(context.Background(), chain[0].ID)

			require.NoError(t, err)
			assert.Equal(t, chain[tc.hops].ID, resolved.ID)
		})
	}
}

func TestResolvePrimary_ChainTooDeep(t *testing.T) {
	svc, deps := newTestDedupService(t)
	chain := buildChain(MaxMergeChainDepth + 1)
	expectRecords(deps, chain...)

	_, err := svc.ResolvePrimary(context.Background(), chain[0].ID)

	assert.ErrorIs(t, err, ErrMergeChainTooDeep)
}

func TestResolvePrimary_Cycle(t *testing.T) {
	svc, deps := newTestDedupService(t)
	a, b := testRecord(models.SourceReCAAP), testRecord(models.SourceUKMTO)
	a.MergeStatus, a.MergedInto = models.MergeStatusMergedInto, &b.ID
	b.MergeStatus, b.MergedInto = models.MergeStatusMergedInto, &a.ID
	expectRecords(deps, a, b)

	_, err := svc.ResolvePrimary(context.Background(), a.ID)

	assert.ErrorIs(t, err, ErrMergeChainTooDeep)
}

func TestResolvePrimary_BrokenChain(t *testing.T) {
	svc, deps := newTestDedupService(t)
	record := testRecord(models.SourceMDATGoG)
	record.MergeStatus = models.MergeStatusMergedInto
	expectRecords(deps, record)

	_, err := svc.ResolvePrimary(context.Background(), record.ID)

	assert.ErrorIs(t, err, ErrBrokenMergeChain)
}

func TestResolvePrimary_MissingTarget(t *testing.T) {
	svc, deps := newTestDedupService(t)
	missing := uuid.New()
	record := testRecord(models.SourceIMB)
	record.MergeStatus, record.MergedInto = models.MergeStatusMergedInto, &missing
	expectRecords(deps, record)

	_, err := svc.ResolvePrimary(context.Background(), record.ID)

	require.Error(t, err)
	assert.ErrorContains(t, err, missing.String())
}
