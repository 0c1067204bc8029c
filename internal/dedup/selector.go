package dedup

import (
	"strings"

	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

// Selector определяет, какая из двух записей остается основной
type Selector struct {
	priority map[string]int
}

// NewSelector создает Selector с порядком источников из профиля
func NewSelector(profile Profile) *Selector {
	priority := make(map[string]int, len(profile.SourcePriority))
	for i, source := range profile.SourcePriority {
		priority[strings.ToLower(source)] = i
	}
	return &Selector{priority: priority}
}

// SelectPrimary детерминированно выбирает основную и вторичную запись.
// Порядок правил: больше заполненных полей, более авторитетный источник,
// более ранняя запись, меньший идентификатор.
func (s *Selector) SelectPrimary(a, b *models.IncidentRecord) (primary, secondary *models.IncidentRecord) {
	if ra, rb := Richness(a), Richness(b); ra != rb {
		if ra > rb {
			return a, b
		}
		return b, a
	}

	if pa, pb := s.rank(a.Source), s.rank(b.Source); pa != pb {
		if pa < pb {
			return a, b
		}
		return b, a
	}

	if !a.CreatedAt.Equal(b.CreatedAt) {
		if a.CreatedAt.Before(b.CreatedAt) {
			return a, b
		}
		return b, a
	}

	if strings.Compare(a.ID.String(), b.ID.String()) <= 0 {
		return a, b
	}
	return b, a
}

// rank - позиция источника в списке приоритетов; неизвестные источники в конце
func (s *Selector) rank(source string) int {
	if r, ok := s.priority[strings.ToLower(source)]; ok {
		return r
	}
	return len(s.priority)
}

// Richness считает заполненные поля обогащения записи
func Richness(r *models.IncidentRecord) int {
	count := 0
	for _, field := range []*string{
		r.SourceReference,
		r.Description,
		r.LocationName,
		r.VesselName,
		r.VesselType,
		r.VesselFlag,
		r.VesselIMO,
		r.IncidentType,
		r.AttackMethod,
		r.Outcome,
	} {
		if models.Present(field) {
			count++
		}
	}
	if r.HasCoordinates() {
		count++
	}
	if r.OccurredAt != nil {
		count++
	}
	if len(r.ResponseActions) > 0 {
		count++
	}
	if len(r.AuthoritiesNotified) > 0 {
		count++
	}
	return count
}
