package dedup

import (
	"fmt"
	"strings"

	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

// MergeFields вычисляет поля, которые нужно записать в основную запись.
// Непустые поля основной записи не перезаписываются, списки объединяются,
// описание вторичной записи дописывается как дополнительный контекст.
// Повторное применение к уже обновленной записи дает пустой патч.
func MergeFields(primary, secondary *models.IncidentRecord) *models.RecordPatch {
	patch := &models.RecordPatch{}

	patch.LocationName = fillString(primary.LocationName, secondary.LocationName)
	patch.VesselName = fillString(primary.VesselName, secondary.VesselName)
	patch.VesselType = fillString(primary.VesselType, secondary.VesselType)
	patch.VesselFlag = fillString(primary.VesselFlag, secondary.VesselFlag)
	patch.VesselIMO = fillString(primary.VesselIMO, secondary.VesselIMO)
	patch.IncidentType = fillString(primary.IncidentType, secondary.IncidentType)
	patch.AttackMethod = fillString(primary.AttackMethod, secondary.AttackMethod)
	patch.Outcome = fillString(primary.Outcome, secondary.Outcome)

	// координаты переносятся только парой
	if !primary.HasCoordinates() && secondary.HasCoordinates() {
		patch.Latitude = models.FloatPtr(*secondary.Latitude)
		patch.Longitude = models.FloatPtr(*secondary.Longitude)
	}

	if primary.OccurredAt == nil && secondary.OccurredAt != nil {
		patch.OccurredAt = models.TimePtr(*secondary.OccurredAt)
	}

	patch.Description = mergeNarrative(primary.Description, secondary)

	patch.ResponseActions = unionIfChanged(primary.ResponseActions, secondary.ResponseActions)
	patch.AuthoritiesNotified = unionIfChanged(primary.AuthoritiesNotified, secondary.AuthoritiesNotified)

	primarySources := append([]string{primary.Source}, primary.MergedSources...)
	secondarySources := append([]string{secondary.Source}, secondary.MergedSources...)
	if merged := union(primarySources, secondarySources); !equalFold(merged, primary.MergedSources) {
		patch.MergedSources = merged
	}

	return patch
}

func fillString(primary, secondary *string) *string {
	if models.Present(primary) || !models.Present(secondary) {
		return nil
	}
	return models.StringPtr(strings.TrimSpace(*secondary))
}

// mergeNarrative дописывает описание вторичного источника, если его еще нет в основном
func mergeNarrative(primary *string, secondary *models.IncidentRecord) *string {
	if !models.Present(secondary.Description) {
		return nil
	}
	addition := strings.TrimSpace(*secondary.Description)
	if !models.Present(primary) {
		return models.StringPtr(addition)
	}

	current := strings.TrimSpace(*primary)
	if strings.Contains(normalizeText(current), normalizeText(addition)) {
		return nil
	}
	merged := fmt.Sprintf("%s\n\n[%s] %s", current, strings.ToUpper(secondary.Source), addition)
	return models.StringPtr(merged)
}

// union сохраняет порядок: сначала элементы основной записи, затем новые
func union(primary, secondary []string) []string {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	out := make([]string, 0, len(primary)+len(secondary))
	for _, list := range [][]string{primary, secondary} {
		for _, item := range list {
			trimmed := strings.TrimSpace(item)
			if trimmed == "" {
				continue
			}
			key := strings.ToLower(trimmed)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, trimmed)
		}
	}
	return out
}

func unionIfChanged(primary, secondary []string) []string {
	merged := union(primary, secondary)
	if equalFold(merged, primary) {
		return nil
	}
	return merged
}

func equalFold(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(strings.TrimSpace(a[i]), strings.TrimSpace(b[i])) {
			return false
		}
	}
	return true
}
