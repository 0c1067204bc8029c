package dedup

import (
	"fmt"
	"os"
	"time"

	"github.com/shenikar/maritime_incident_dedup/internal/models"
	"gopkg.in/yaml.v3"
)

// Weights - веса измерений сходства до нормировки
type Weights struct {
	Temporal float64 `yaml:"temporal"`
	Spatial  float64 `yaml:"spatial"`
	Vessel   float64 `yaml:"vessel"`
	Text     float64 `yaml:"text"`
}

// Profile - настраиваемые константы скоринга и выбора основной записи
type Profile struct {
	Weights Weights `yaml:"weights"`

	// TemporalCutoff - разница во времени, при которой временной балл падает до 0
	TemporalCutoff time.Duration `yaml:"temporal_cutoff"`
	// IncomparableAfter - разница во времени, после которой пара считается несравнимой (итог 0)
	IncomparableAfter time.Duration `yaml:"incomparable_after"`
	// SpatialCutoffNM - расстояние в морских милях, при котором пространственный балл равен 0
	SpatialCutoffNM float64 `yaml:"spatial_cutoff_nm"`

	HighConfidence   float64 `yaml:"high_confidence"`
	MediumConfidence float64 `yaml:"medium_confidence"`

	// SourcePriority - источники от самого подробного к наименее подробному
	SourcePriority []string `yaml:"source_priority"`
}

// DefaultProfile возвращает эмпирически подобранные значения по умолчанию
func DefaultProfile() Profile {
	return Profile{
		Weights: Weights{
			Temporal: 0.25,
			Spatial:  0.35,
			Vessel:   0.25,
			Text:     0.15,
		},
		TemporalCutoff:    72 * time.Hour,
		IncomparableAfter: 7 * 24 * time.Hour,
		SpatialCutoffNM:   100,
		HighConfidence:    0.8,
		MediumConfidence:  0.6,
		SourcePriority: []string{
			models.SourceReCAAP,
			models.SourceUKMTO,
			models.SourceMDATGoG,
			models.SourceIMB,
			models.SourceMICA,
		},
	}
}

// Validate проверяет корректность профиля
func (p Profile) Validate() error {
	w := p.Weights
	if w.Temporal < 0 || w.Spatial < 0 || w.Vessel < 0 || w.Text < 0 {
		return fmt.Errorf("weights must not be negative (got %+v)", w)
	}
	if w.Temporal+w.Spatial+w.Vessel+w.Text == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}
	if p.TemporalCutoff <= 0 {
		return fmt.Errorf("temporal_cutoff must be positive (got %v)", p.TemporalCutoff)
	}
	if p.IncomparableAfter < p.TemporalCutoff {
		return fmt.Errorf("incomparable_after (%v) must not be less than temporal_cutoff (%v)",
			p.IncomparableAfter, p.TemporalCutoff)
	}
	if p.SpatialCutoffNM <= 0 {
		return fmt.Errorf("spatial_cutoff_nm must be positive (got %.2f)", p.SpatialCutoffNM)
	}
	if p.MediumConfidence <= 0 || p.MediumConfidence > p.HighConfidence || p.HighConfidence > 1 {
		return fmt.Errorf("confidence bands must satisfy 0 < medium <= high <= 1 (got %.2f, %.2f)",
			p.MediumConfidence, p.HighConfidence)
	}
	return nil
}

// LoadProfile читает YAML-файл поверх профиля по умолчанию.
// Пустой путь возвращает профиль по умолчанию.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read scoring profile %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse scoring profile %s: %w", path, err)
	}
	if err := profile.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid scoring profile %s: %w", path, err)
	}
	return profile, nil
}
