package dedup

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 14, 2, 30, 0, 0, time.UTC)

func newRecord(source string, occurred time.Time, lat, lon float64) *models.IncidentRecord {
	return &models.IncidentRecord{
		ID:         uuid.New(),
		Source:     source,
		OccurredAt: models.TimePtr(occurred),
		Latitude:   models.FloatPtr(lat),
		Longitude:  models.FloatPtr(lon),
		CreatedAt:  occurred,
	}
}

func TestScore_HighConfidenceOnIMOMatch(t *testing.T) {
	// Подготовка: ~3 мили друг от друга, 2 часа разницы, одинаковый ИМО
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.2500, 104.1000)
	a.Title = "Robbery on board tanker"
	a.VesselIMO = models.StringPtr("IMO 9123456")
	b := newRecord(models.SourceUKMTO, baseTime.Add(2*time.Hour), 1.2900, 104.1200)
	b.Title = "Suspicious approach"
	b.VesselIMO = models.StringPtr("9123456")

	// Действие
	result, err := scorer.Score(a, b)

	// Проверки
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Total, 0.8)
	assert.Equal(t, ConfidenceHigh, scorer.Classify(result.Total))
	assert.Equal(t, 1.0, result.Dimensions[DimensionVessel])
	assert.Less(t, HaversineNM(1.25, 104.1, 1.29, 104.12), 5.0)
}

func TestScore_OutsideTemporalWindowIsIncomparable(t *testing.T) {
	// Подготовка
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.25, 104.1)
	a.VesselIMO = models.StringPtr("9123456")
	b := newRecord(models.SourceIMB, baseTime.Add(10*24*time.Hour), 1.25, 104.1)
	b.VesselIMO = models.StringPtr("9123456")

	// Действие
	result, err := scorer.Score(a, b)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Total)
	assert.Equal(t, ConfidenceNone, scorer.Classify(result.Total))
}

func TestScore_IsSymmetric(t *testing.T) {
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceMDATGoG, baseTime, 3.9, 6.8)
	a.Title = "Armed pirates boarded product tanker off Bonny"
	a.Description = models.StringPtr("Eight armed pirates boarded, crew retreated to citadel")
	a.VesselName = models.StringPtr("M/T Ocean Pearl")
	a.VesselType = models.StringPtr("Product Tanker")
	b := newRecord(models.SourceIMB, baseTime.Add(-9*time.Hour), 4.1, 6.5)
	b.Title = "Product tanker boarded off Bonny Island"
	b.VesselName = models.StringPtr("OCEAN PERL")
	b.VesselType = models.StringPtr("product tanker")

	ab, err := scorer.Score(a, b)
	require.NoError(t, err)
	ba, err := scorer.Score(b, a)
	require.NoError(t, err)

	assert.Equal(t, ab.Total, ba.Total)
	assert.Equal(t, ab.Dimensions, ba.Dimensions)
}

func TestScore_MissingCoordinatesExcludesSpatial(t *testing.T) {
	// Подготовка
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.25, 104.1)
	a.VesselIMO = models.StringPtr("9123456")
	b := &models.IncidentRecord{
		ID:         uuid.New(),
		Source:     models.SourceUKMTO,
		OccurredAt: models.TimePtr(baseTime),
		VesselIMO:  models.StringPtr("9123456"),
	}

	// Действие
	result, err := scorer.Score(a, b)

	// Проверки: измерение исключено, а не посчитано как 0
	require.NoError(t, err)
	_, hasSpatial := result.Dimensions[DimensionSpatial]
	assert.False(t, hasSpatial)
	// (0.25*1 + 0.25*1 + 0.15*0) / 0.65
	assert.InDelta(t, 0.5/0.65, result.Total, 1e-9)
}

func TestScore_FarApartDoesNotMatchSpatially(t *testing.T) {
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.25, 104.1)
	b := newRecord(models.SourceUKMTO, baseTime, 12.5, 45.0)

	result, err := scorer.Score(a, b)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Dimensions[DimensionSpatial])
	assert.Less(t, result.Total, 0.6)
}

func TestScore_MissingTimestampContributesZero(t *testing.T) {
	// Подготовка
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.25, 104.1)
	a.VesselIMO = models.StringPtr("9123456")
	b := newRecord(models.SourceUKMTO, baseTime, 1.25, 104.1)
	b.VesselIMO = models.StringPtr("9123456")
	b.OccurredAt = nil

	// Действие
	result, err := scorer.Score(a, b)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Dimensions[DimensionTemporal])
	assert.Greater(t, result.Total, 0.0)
	assert.InDelta(t, 0.6, result.Total, 1e-9)
}

func TestScore_DifferentIMOIsNotTheSameVessel(t *testing.T) {
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 1.25, 104.1)
	a.VesselIMO = models.StringPtr("9123456")
	a.VesselName = models.StringPtr("Nord Star")
	b := newRecord(models.SourceUKMTO, baseTime, 1.25, 104.1)
	b.VesselIMO = models.StringPtr("9654321")
	b.VesselName = models.StringPtr("Nord Star")

	result, err := scorer.Score(a, b)

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Dimensions[DimensionVessel])
}

func TestScore_InvalidCoordinates(t *testing.T) {
	scorer := NewScorer(DefaultProfile())
	a := newRecord(models.SourceReCAAP, baseTime, 95, 104.1)
	b := newRecord(models.SourceUKMTO, baseTime, 1.25, 104.1)

	_, err := scorer.Score(a, b)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestVesselSimilarity(t *testing.T) {
	tests := []struct {
		name      string
		a, b      *models.IncidentRecord
		want      float64
		available bool
	}{
		{
			name:      "same name with prefix and punctuation",
			a:         &models.IncidentRecord{VesselName: models.StringPtr("M/V Nord-Star")},
			b:         &models.IncidentRecord{VesselName: models.StringPtr("nord star")},
			want:      0.9,
			available: true,
		},
		{
			name:      "truncated name",
			a:         &models.IncidentRecord{VesselName: models.StringPtr("Atlantic Glory")},
			b:         &models.IncidentRecord{VesselName: models.StringPtr("Glory")},
			want:      0.75,
			available: true,
		},
		{
			name:      "type only",
			a:         &models.IncidentRecord{VesselType: models.StringPtr("Bulk Carrier")},
			b:         &models.IncidentRecord{VesselType: models.StringPtr("bulk carrier")},
			want:      0.3,
			available: true,
		},
		{
			name:      "unrelated names",
			a:         &models.IncidentRecord{VesselName: models.StringPtr("Atlantic Glory")},
			b:         &models.IncidentRecord{VesselName: models.StringPtr("Pacific Dawn")},
			want:      0,
			available: true,
		},
		{
			name:      "nothing to compare",
			a:         &models.IncidentRecord{VesselName: models.StringPtr("Atlantic Glory")},
			b:         &models.IncidentRecord{},
			want:      0,
			available: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, available := vesselSimilarity(tt.a, tt.b)
			assert.Equal(t, tt.available, available)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestTextSimilarity(t *testing.T) {
	a := &models.IncidentRecord{Title: "Armed robbery on board bulk carrier at Dumai anchorage"}
	b := &models.IncidentRecord{Title: "Robbery onboard bulk carrier, Dumai anchorage"}
	c := &models.IncidentRecord{Title: "Suspicious approach by skiff in Bab el Mandeb"}

	assert.Greater(t, textSimilarity(a, b), textSimilarity(a, c))
	assert.Equal(t, 0.0, textSimilarity(&models.IncidentRecord{}, b))
}
