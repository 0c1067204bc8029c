package dedup

import (
	"errors"
	"fmt"
	"math"

	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

// Измерения сходства
const (
	DimensionTemporal = "temporal"
	DimensionSpatial  = "spatial"
	DimensionVessel   = "vessel"
	DimensionText     = "text"
)

const earthRadiusNM = 3440.065

// ErrInvalidRecord - запись нельзя сравнивать (например, координаты вне диапазона)
var ErrInvalidRecord = errors.New("invalid incident record")

// Confidence - уровень уверенности совпадения
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ScoreResult - итоговый балл и баллы по вычисленным измерениям.
// Total == 0 означает, что пара структурно несравнима.
type ScoreResult struct {
	Total      float64            `json:"total"`
	Dimensions map[string]float64 `json:"dimensions"`
}

// Scorer вычисляет сходство двух отчетов из разных источников.
// Не имеет изменяемого состояния и безопасен для конкурентного использования.
type Scorer struct {
	profile Profile
}

// NewScorer создает Scorer с заданным профилем
func NewScorer(profile Profile) *Scorer {
	return &Scorer{profile: profile}
}

// Classify относит балл к уровню уверенности
func (s *Scorer) Classify(total float64) Confidence {
	switch {
	case total >= s.profile.HighConfidence:
		return ConfidenceHigh
	case total >= s.profile.MediumConfidence:
		return ConfidenceMedium
	default:
		return ConfidenceNone
	}
}

// Score вычисляет взвешенное сходство. Результат не зависит от порядка аргументов.
func (s *Scorer) Score(a, b *models.IncidentRecord) (ScoreResult, error) {
	if err := validateRecord(a); err != nil {
		return ScoreResult{}, err
	}
	if err := validateRecord(b); err != nil {
		return ScoreResult{}, err
	}

	temporal, comparable := s.temporalScore(a, b)
	if !comparable {
		return ScoreResult{Total: 0, Dimensions: map[string]float64{DimensionTemporal: 0}}, nil
	}

	w := s.profile.Weights
	dims := map[string]float64{DimensionTemporal: temporal}
	weighted := w.Temporal * temporal
	weightSum := w.Temporal

	// пространственное измерение исключается, если у одной из записей нет координат
	if a.HasCoordinates() && b.HasCoordinates() {
		spatial := s.spatialScore(a, b)
		dims[DimensionSpatial] = spatial
		weighted += w.Spatial * spatial
		weightSum += w.Spatial
	}

	if vessel, ok := vesselSimilarity(a, b); ok {
		dims[DimensionVessel] = vessel
		weighted += w.Vessel * vessel
		weightSum += w.Vessel
	}

	text := textSimilarity(a, b)
	dims[DimensionText] = text
	weighted += w.Text * text
	weightSum += w.Text

	if weightSum == 0 {
		return ScoreResult{Total: 0, Dimensions: dims}, nil
	}

	total := weighted / weightSum
	switch {
	case total < 0:
		total = 0
	case total > 1:
		total = 1
	}
	return ScoreResult{Total: total, Dimensions: dims}, nil
}

// temporalScore линейно убывает от 1 до 0 на отрезке [0, TemporalCutoff].
// Второе значение false, если разница больше IncomparableAfter.
func (s *Scorer) temporalScore(a, b *models.IncidentRecord) (float64, bool) {
	if a.OccurredAt == nil || b.OccurredAt == nil || a.OccurredAt.IsZero() || b.OccurredAt.IsZero() {
		return 0, true
	}
	diff := a.OccurredAt.Sub(*b.OccurredAt)
	if diff < 0 {
		diff = -diff
	}
	if diff > s.profile.IncomparableAfter {
		return 0, false
	}
	if diff >= s.profile.TemporalCutoff {
		return 0, true
	}
	return 1 - float64(diff)/float64(s.profile.TemporalCutoff), true
}

func (s *Scorer) spatialScore(a, b *models.IncidentRecord) float64 {
	distance := HaversineNM(*a.Latitude, *a.Longitude, *b.Latitude, *b.Longitude)
	if distance >= s.profile.SpatialCutoffNM {
		return 0
	}
	return 1 - distance/s.profile.SpatialCutoffNM
}

// HaversineNM возвращает расстояние по большому кругу в морских милях
func HaversineNM(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	h := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	if h > 1 {
		h = 1
	}
	return 2 * earthRadiusNM * math.Asin(math.Sqrt(h))
}

func validateRecord(r *models.IncidentRecord) error {
	if r == nil {
		return fmt.Errorf("%w: nil record", ErrInvalidRecord)
	}
	if r.Latitude != nil && (math.IsNaN(*r.Latitude) || *r.Latitude < -90 || *r.Latitude > 90) {
		return fmt.Errorf("%w: record %s has latitude %v out of range", ErrInvalidRecord, r.ID, *r.Latitude)
	}
	if r.Longitude != nil && (math.IsNaN(*r.Longitude) || *r.Longitude < -180 || *r.Longitude > 180) {
		return fmt.Errorf("%w: record %s has longitude %v out of range", ErrInvalidRecord, r.ID, *r.Longitude)
	}
	return nil
}
