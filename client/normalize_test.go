package client

import (
	"encoding/json"
	"reflect"
	"testing"

	"evaluapp/models"
)

func TestCoerceID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
		ok   bool
	}{
		{"int", 7, 7, true},
		{"float", float64(7), 7, true},
		{"json number", json.Number("7"), 7, true},
		{"json float number", json.Number("7.0"), 7, true},
		{"numeric string", "7", 7, true},
		{"padded string", " 7 ", 7, true},
		{"float string", "7.0", 7, true},
		{"nil", nil, 0, false},
		{"word", "siete", 0, false},
		{"object", map[string]any{"id": 7}, 0, false},
		{"bool", true, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := coerceID(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("coerceID(%v) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestNormalizeExamNullList(t *testing.T) {
	exam, faults := NormalizeExam(RawExam{ID: json.Number("3"), Title: "A"})
	if exam.QuestionIDs == nil {
		t.Fatal("QuestionIDs must be an empty slice, not nil")
	}
	if len(faults) != 0 {
		t.Fatalf("faults = %v, want none", faults)
	}
}

func TestNormalizeExamDropsGarbledReferences(t *testing.T) {
	exam, faults := NormalizeExam(RawExam{
		ID:          json.Number("3"),
		QuestionIDs: []any{json.Number("1"), "x", json.Number("3")},
	})
	if !reflect.DeepEqual(exam.QuestionIDs, []int{1, 3}) {
		t.Fatalf("QuestionIDs = %v, want [1 3]", exam.QuestionIDs)
	}
	if len(faults) != 1 || faults[0].Kind != models.FaultDroppedID {
		t.Fatalf("faults = %v, want one dropped reference", faults)
	}
}

func TestNormalizeExamBadIDBecomesZero(t *testing.T) {
	exam, faults := NormalizeExam(RawExam{ID: "no-id", Title: "A"})
	if exam.ID != 0 {
		t.Fatalf("ID = %d, want 0", exam.ID)
	}
	if len(faults) != 1 || faults[0].Kind != models.FaultBadID {
		t.Fatalf("faults = %v, want one bad id fault", faults)
	}
}

func TestNormalizeExamIdempotent(t *testing.T) {
	first, _ := NormalizeExam(RawExam{
		ID:          "7",
		Title:       "A",
		QuestionIDs: []any{json.Number("1"), "bad", json.Number("2")},
		CreatorID:   json.Number("9"),
	})

	// feed the normalized record back through
	again := RawExam{
		ID:          first.ID,
		Title:       first.Title,
		Description: first.Description,
		StartDate:   first.StartDate,
		EndDate:     first.EndDate,
		CreatorID:   first.CreatorID,
		CreatorName: first.CreatorName,
	}
	for _, qid := range first.QuestionIDs {
		again.QuestionIDs = append(again.QuestionIDs, qid)
	}

	second, faults := NormalizeExam(again)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("normalization is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
	if len(faults) != 0 {
		t.Fatalf("renormalizing produced faults: %v", faults)
	}
}
