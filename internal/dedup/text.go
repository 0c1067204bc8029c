package dedup

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

// стоп-слова, которые встречаются почти в каждом отчете
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"on": {}, "at": {}, "by": {}, "for": {}, "with": {}, "from": {}, "was": {}, "were": {},
	"is": {}, "are": {}, "has": {}, "had": {}, "been": {}, "be": {}, "it": {}, "its": {},
	"vessel": {}, "ship": {}, "incident": {}, "reported": {}, "report": {},
}

var vesselPrefixes = []string{"m/v ", "m/t ", "mv ", "mt ", "ms ", "m.v. ", "m.t. "}

func normalizeText(input string) string {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(trimmed))
	lastSpace := false
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

func tokenize(text string) []string {
	normalized := normalizeText(text)
	if normalized == "" {
		return nil
	}

	parts := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if len([]rune(p)) <= 1 {
			continue
		}
		if _, ok := stopWords[p]; ok {
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

func tokenSet(text string) map[string]struct{} {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func trigramSet(text string) map[string]struct{} {
	normalized := normalizeText(text)
	if normalized == "" {
		return nil
	}

	runes := []rune(normalized)
	if len(runes) < 3 {
		return map[string]struct{}{string(runes): {}}
	}

	set := make(map[string]struct{}, len(runes)-2)
	for i := 0; i <= len(runes)-3; i++ {
		set[string(runes[i:i+3])] = struct{}{}
	}
	return set
}

func jaccard(left, right map[string]struct{}) float64 {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	intersection := 0
	for token := range left {
		if _, ok := right[token]; ok {
			intersection++
		}
	}
	if intersection == 0 {
		return 0
	}

	union := len(left) + len(right) - intersection
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// narrative склеивает заголовок и описание записи
func narrative(r *models.IncidentRecord) string {
	if models.Present(r.Description) {
		return r.Title + " " + *r.Description
	}
	return r.Title
}

// textSimilarity - лучшее из пересечения токенов полного текста и триграмм заголовков
func textSimilarity(a, b *models.IncidentRecord) float64 {
	tokens := jaccard(tokenSet(narrative(a)), tokenSet(narrative(b)))
	titles := jaccard(trigramSet(a.Title), trigramSet(b.Title))
	if titles > tokens {
		return titles
	}
	return tokens
}

// normalizeVesselName приводит имя судна к ключу сравнения:
// без префиксов типа судна, регистра, пробелов и пунктуации
func normalizeVesselName(name *string) string {
	if !models.Present(name) {
		return ""
	}
	lower := strings.ToLower(strings.TrimSpace(*name))
	for _, prefix := range vesselPrefixes {
		if strings.HasPrefix(lower, prefix) {
			lower = strings.TrimPrefix(lower, prefix)
			break
		}
	}

	var b strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeIMO оставляет только цифры; номер ИМО всегда из 7 цифр
func normalizeIMO(imo *string) string {
	if !models.Present(imo) {
		return ""
	}
	var b strings.Builder
	for _, r := range *imo {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() != 7 {
		return ""
	}
	return b.String()
}

func normalizeLabel(s *string) string {
	if !models.Present(s) {
		return ""
	}
	return normalizeText(*s)
}

// vesselNameSimilarity допускает опечатки и усечения названий
func vesselNameSimilarity(a, b string) float64 {
	if a == b {
		return 0.9
	}
	shorter, longer := a, b
	if len([]rune(shorter)) > len([]rune(longer)) {
		shorter, longer = longer, shorter
	}
	if len([]rune(shorter)) >= 4 && strings.Contains(longer, shorter) {
		return 0.75
	}

	maxLen := len([]rune(longer))
	if maxLen == 0 {
		return 0
	}
	similarity := 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
	if similarity < 0.75 {
		return 0
	}
	return 0.9 * similarity
}

// vesselSimilarity возвращает балл идентичности судна и признак того,
// что у обеих записей нашлось что сравнивать
func vesselSimilarity(a, b *models.IncidentRecord) (float64, bool) {
	imoA, imoB := normalizeIMO(a.VesselIMO), normalizeIMO(b.VesselIMO)
	if imoA != "" && imoB != "" {
		if imoA == imoB {
			return 1, true
		}
		return 0, true
	}

	score := 0.0
	available := false

	nameA, nameB := normalizeVesselName(a.VesselName), normalizeVesselName(b.VesselName)
	if nameA != "" && nameB != "" {
		available = true
		score = vesselNameSimilarity(nameA, nameB)
	}

	typeA, typeB := normalizeLabel(a.VesselType), normalizeLabel(b.VesselType)
	if typeA != "" && typeB != "" {
		typeMatch := typeA == typeB
		if !available {
			available = true
			if typeMatch {
				score = 0.3
			}
		} else if typeMatch && score > 0 {
			score += 0.1
		}
	}

	if score > 1 {
		score = 1
	}
	return score, available
}
