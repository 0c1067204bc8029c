package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/maritime_incident_dedup/internal/models"
)

const recordColumns = `
	id,
	source,
	source_reference,
	occurred_at,
	title,
	description,
	latitude,
	longitude,
	location_name,
	vessel_name,
	vessel_type,
	vessel_flag,
	vessel_imo,
	incident_type,
	attack_method,
	outcome,
	response_actions,
	authorities_notified,
	merge_status,
	merged_into,
	merged_sources,
	created_at,
	updated_at`

// sortColumns - допустимые поля сортировки. Записи без времени инцидента
// упорядочиваются по времени создания.
var sortColumns = map[string]string{
	"":            "COALESCE(occurred_at, created_at)",
	"occurred_at": "COALESCE(occurred_at, created_at)",
	"created_at":  "created_at",
	"updated_at":  "updated_at",
}

// buildSelectQuery собирает выборку одной страницы кандидатов
func buildSelectQuery(filter models.RecordFilter, order models.RecordSort, pageSize, offset int) (string, []any, error) {
	column, ok := sortColumns[order.Field]
	if !ok {
		return "", nil, fmt.Errorf("unsupported sort field %q", order.Field)
	}
	if pageSize <= 0 {
		return "", nil, fmt.Errorf("page size must be positive (got %d)", pageSize)
	}

	var (
		where []string
		args  []any
	)
	if !filter.OccurredAfter.IsZero() {
		args = append(args, filter.OccurredAfter)
		where = append(where, fmt.Sprintf("COALESCE(occurred_at, created_at) >= $%d", len(args)))
	}
	if filter.UnmergedOnly {
		where = append(where, "merge_status IS NULL")
	}

	var b strings.Builder
	b.WriteString("SELECT")
	b.WriteString(recordColumns)
	b.WriteString("\nFROM incident_records")
	if len(where) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	direction := "ASC"
	if order.Desc {
		direction = "DESC"
	}
	// id - вторичный ключ, чтобы страницы не пересекались при равных временах
	fmt.Fprintf(&b, "\nORDER BY %s %s, id %s", column, direction, direction)

	args = append(args, pageSize, offset)
	fmt.Fprintf(&b, "\nLIMIT $%d OFFSET $%d;", len(args)-1, len(args))
	return b.String(), args, nil
}

// parsePageToken разбирает токен страницы; пустой токен - первая страница
func parsePageToken(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid page token %q", token)
	}
	return offset, nil
}

// nextPageToken возвращает токен следующей страницы или "" на последней
func nextPageToken(offset, pageSize, fetched int) string {
	if fetched < pageSize {
		return ""
	}
	return strconv.Itoa(offset + fetched)
}

// buildPatchQuery собирает UPDATE только по заданным полям патча.
// RequireStatus превращается в условие на текущий merge_status.
func buildPatchQuery(id uuid.UUID, patch *models.RecordPatch) (string, []any) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Latitude != nil {
		set("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		set("longitude", *patch.Longitude)
	}
	if patch.LocationName != nil {
		set("location_name", *patch.LocationName)
	}
	if patch.OccurredAt != nil {
		set("occurred_at", *patch.OccurredAt)
	}
	if patch.VesselName != nil {
		set("vessel_name", *patch.VesselName)
	}
	if patch.VesselType != nil {
		set("vessel_type", *patch.VesselType)
	}
	if patch.VesselFlag != nil {
		set("vessel_flag", *patch.VesselFlag)
	}
	if patch.VesselIMO != nil {
		set("vessel_imo", *patch.VesselIMO)
	}
	if patch.IncidentType != nil {
		set("incident_type", *patch.IncidentType)
	}
	if patch.AttackMethod != nil {
		set("attack_method", *patch.AttackMethod)
	}
	if patch.Outcome != nil {
		set("outcome", *patch.Outcome)
	}
	if patch.ResponseActions != nil {
		set("response_actions", patch.ResponseActions)
	}
	if patch.AuthoritiesNotified != nil {
		set("authorities_notified", patch.AuthoritiesNotified)
	}
	if patch.MergedSources != nil {
		set("merged_sources", patch.MergedSources)
	}
	if patch.MergeStatus != nil {
		if *patch.MergeStatus == models.MergeStatusUnmerged {
			sets = append(sets, "merge_status = NULL")
		} else {
			set("merge_status", string(*patch.MergeStatus))
		}
	}
	if patch.ClearMergedInto {
		sets = append(sets, "merged_into = NULL")
	} else if patch.MergedInto != nil {
		set("merged_into", *patch.MergedInto)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE incident_records SET %s\nWHERE id = $%d", strings.Join(sets, ", "), len(args))

	if patch.RequireStatus != nil {
		if *patch.RequireStatus == models.MergeStatusUnmerged {
			query += " AND merge_status IS NULL"
		} else {
			args = append(args, string(*patch.RequireStatus))
			query += fmt.Sprintf(" AND merge_status = $%d", len(args))
		}
	}
	return query + ";", args
}
