package dedup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile_IsValid(t *testing.T) {
	require.NoError(t, DefaultProfile().Validate())
}

func TestLoadProfile_OverridesSubset(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := `
weights:
  temporal: 0.4
  spatial: 0.3
temporal_cutoff: 48h
source_priority: [ukmto, recaap]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Действие
	profile, err := LoadProfile(path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.4, profile.Weights.Temporal)
	assert.Equal(t, 0.3, profile.Weights.Spatial)
	assert.Equal(t, 0.25, profile.Weights.Vessel)
	assert.Equal(t, 48*time.Hour, profile.TemporalCutoff)
	assert.Equal(t, 7*24*time.Hour, profile.IncomparableAfter)
	assert.Equal(t, []string{"ukmto", "recaap"}, profile.SourcePriority)
}

func TestLoadProfile_EmptyPathReturnsDefaults(t *testing.T) {
	profile, err := LoadProfile("")

	require.NoError(t, err)
	assert.Equal(t, DefaultProfile(), profile)
}

func TestLoadProfile_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spatial_cutoff_nm: -5\n"), 0o600))

	_, err := LoadProfile(path)

	require.Error(t, err)
	assert.ErrorContains(t, err, "spatial_cutoff_nm must be positive")
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr string
	}{
		{"negative weight", func(p *Profile) { p.Weights.Text = -1 }, "must not be negative"},
		{"zero weights", func(p *Profile) { p.Weights = Weights{} }, "at least one weight"},
		{"zero cutoff", func(p *Profile) { p.TemporalCutoff = 0 }, "temporal_cutoff must be positive"},
		{"window shorter than cutoff", func(p *Profile) { p.IncomparableAfter = time.Hour }, "incomparable_after"},
		{"inverted bands", func(p *Profile) { p.MediumConfidence = 0.9 }, "confidence bands"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
