package client_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evaluapp/client"
	"evaluapp/models"
)

func newTestClient(handler http.HandlerFunc) (*client.Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return client.New(srv.URL, 5*time.Second), srv
}

func TestListExamsNullBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("null"))
	})
	defer srv.Close()

	exams, faults, err := c.ListExams()
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if exams == nil {
		t.Fatal("exams must be an empty slice, not nil")
	}
	if len(exams) != 0 || len(faults) != 0 {
		t.Fatalf("got %d exams, %d faults; want 0, 0", len(exams), len(faults))
	}
}

func TestListExamsCoercesIDs(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": "7", "titulo": "A", "preguntasIds": [1, "2"]},
			{"id": {"oops": true}, "titulo": "B"}
		]`))
	})
	defer srv.Close()

	exams, faults, err := c.ListExams()
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if exams[0].ID != 7 {
		t.Fatalf("exams[0].ID = %d, want 7 (numeric string coerced)", exams[0].ID)
	}
	if len(exams[0].QuestionIDs) != 2 || exams[0].QuestionIDs[0] != 1 || exams[0].QuestionIDs[1] != 2 {
		t.Fatalf("questionIDs = %v, want [1 2]", exams[0].QuestionIDs)
	}
	if exams[1].ID != 0 {
		t.Fatalf("exams[1].ID = %d, want 0 (unconvertible id)", exams[1].ID)
	}
	if len(faults) == 0 {
		t.Fatal("the unconvertible id must be recorded as a fault")
	}
}

func TestListExamsNullQuestionIDs(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 3, "titulo": "A", "preguntasIds": null}]`))
	})
	defer srv.Close()

	exams, _, err := c.ListExams()
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if exams[0].QuestionIDs == nil {
		t.Fatal("questionIDs must be an empty slice, not nil")
	}
	if len(exams[0].QuestionIDs) != 0 {
		t.Fatalf("questionIDs = %v, want []", exams[0].QuestionIDs)
	}
}

func TestListExamsBadElementEmptiesWholeList(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 3, "titulo": "A", "preguntasIds": [1, "x", 3]}]`))
	})
	defer srv.Close()

	exams, faults, err := c.ListExams()
	if err != nil {
		t.Fatalf("ListExams: %v", err)
	}
	if len(exams[0].QuestionIDs) != 0 {
		t.Fatalf("questionIDs = %v, want whole list emptied", exams[0].QuestionIDs)
	}
	if len(faults) == 0 {
		t.Fatal("emptying the list must be recorded as a fault")
	}
}

func TestHTTPErrorExtractsJSONMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom", "detail": "the database is on fire"}`))
	})
	defer srv.Close()

	_, _, err := c.ListExams()
	var herr *client.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if herr.StatusCode != 500 || herr.Message != "boom" || herr.Detail != "the database is on fire" {
		t.Fatalf("got %+v", herr)
	}
}

func TestHTTPErrorTruncatesRawBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 300)))
	})
	defer srv.Close()

	_, _, err := c.ListExams()
	var herr *client.HTTPError
	if !errors.As(err, &herr) {
		t.Fatalf("err = %v, want HTTPError", err)
	}
	if len(herr.Message) != 200 {
		t.Fatalf("message length = %d, want 200", len(herr.Message))
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := client.New(url, time.Second)
	_, _, err := c.ListExams()
	var nerr *client.NetworkError
	if !errors.As(err, &nerr) {
		t.Fatalf("err = %v, want NetworkError", err)
	}
}

func TestSubmitResultBody(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.RawMessage
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 55, "examenId": 5}`))
	})
	defer srv.Close()

	result, err := c.SubmitResult(5, map[int]int{1: 10})
	if err != nil {
		t.Fatalf("SubmitResult: %v", err)
	}
	if gotPath != "/resultados" {
		t.Fatalf("path = %q, want /resultados", gotPath)
	}
	if string(gotBody["examenId"]) != "5" {
		t.Fatalf("examenId = %s, want 5", gotBody["examenId"])
	}
	if string(gotBody["respuestas"]) != `{"1":10}` {
		t.Fatalf("respuestas = %s, want {\"1\":10}", gotBody["respuestas"])
	}
	if result.ID != 55 || result.ExamID != 5 {
		t.Fatalf("result = %+v", result)
	}
}

func TestSubmitResultPropagatesFailure(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "no"}`))
	})
	defer srv.Close()

	if _, err := c.SubmitResult(5, map[int]int{1: 10}); err == nil {
		t.Fatal("write failures must propagate")
	}
}

func TestCreateExamPostsPayload(t *testing.T) {
	var gotBody client.CreateExamPayload
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/examenes" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 42, "titulo": "Math"}`))
	})
	defer srv.Close()

	exam, err := c.CreateExam(client.CreateExamPayload{
		Title:       "Math",
		StartDate:   "2025-03-01",
		EndDate:     "2025-03-02",
		QuestionIDs: []int{1, 2},
		CreatorID:   9,
	})
	if err != nil {
		t.Fatalf("CreateExam: %v", err)
	}
	if gotBody.Title != "Math" || gotBody.CreatorID != 9 {
		t.Fatalf("payload = %+v", gotBody)
	}
	if exam.ID != 42 {
		t.Fatalf("exam id = %d, want 42", exam.ID)
	}
}

func TestListOptionsQuery(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/opciones" || r.URL.Query().Get("pregunta_id") != "3" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`[{"id": 30, "textoOpcion": "yes", "esCorrecta": true}]`))
	})
	defer srv.Close()

	options, _, err := c.ListOptions(3)
	if err != nil {
		t.Fatalf("ListOptions: %v", err)
	}
	want := models.Option{ID: 30, Text: "yes", IsCorrect: true, QuestionID: 3}
	if len(options) != 1 || options[0] != want {
		t.Fatalf("options = %+v, want %+v", options, want)
	}
}
