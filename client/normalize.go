package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"evaluapp/models"
)

// RawExam is an examen record exactly as the API returns it, before any
// coercion. Ids are kept loosely typed because the API has been seen to send
// them as numbers, strings and worse.
type RawExam struct {
	ID          any    `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	StartDate   string `json:"fechaInicio"`
	EndDate     string `json:"fechaFin"`
	QuestionIDs []any  `json:"preguntasIds"`
	CreatorID   any    `json:"creadorId"`
	CreatorName string `json:"creadorNombre"`
}

// coerceID converts a loosely typed id value to an int. Numbers and numeric
// strings convert; everything else reports false. Callers normalize a failed
// conversion to 0 — data tolerance over strictness.
func coerceID(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
		return 0, false
	case string:
		s := strings.TrimSpace(t)
		if n, err := strconv.Atoi(s); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
		return 0, false
	case float64:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}

// idListCoercible reports whether every entry of a reference list converts
// to an int. A list with even one garbled entry is untrustworthy as a whole.
func idListCoercible(vs []any) bool {
	for _, v := range vs {
		if _, ok := coerceID(v); !ok {
			return false
		}
	}
	return true
}

// NormalizeExam repairs a partially formed examen record: a missing or null
// preguntasIds becomes an empty list, list entries that do not convert to an
// integer are dropped with a fault, a non-numeric id becomes 0. Normalizing
// an already normalized record changes nothing.
func NormalizeExam(raw RawExam) (models.Exam, []models.Fault) {
	var faults []models.Fault

	id, ok := coerceID(raw.ID)
	if !ok && raw.ID != nil {
		faults = append(faults, models.Fault{
			Kind:    models.FaultBadID,
			Message: fmt.Sprintf("exam id %v is not numeric, using 0", raw.ID),
		})
	}
	creatorID, _ := coerceID(raw.CreatorID)

	questionIDs := make([]int, 0, len(raw.QuestionIDs))
	for _, v := range raw.QuestionIDs {
		qid, ok := coerceID(v)
		if !ok {
			faults = append(faults, models.Fault{
				Kind:    models.FaultDroppedID,
				Message: fmt.Sprintf("exam %v: question reference %v is not numeric, dropped", raw.ID, v),
			})
			continue
		}
		questionIDs = append(questionIDs, qid)
	}

	return models.Exam{
		ID:          id,
		Title:       raw.Title,
		Description: raw.Description,
		StartDate:   raw.StartDate,
		EndDate:     raw.EndDate,
		QuestionIDs: questionIDs,
		CreatorID:   creatorID,
		CreatorName: raw.CreatorName,
	}, faults
}
