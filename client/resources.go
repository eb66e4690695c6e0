package client

import (
	"fmt"
	"strconv"

	"evaluapp/models"
)

type rawQuestion struct {
	ID   any    `json:"id"`
	Text string `json:"textoPregunta"`
	Type string `json:"tipo"`
	Exam *struct {
		ID    any    `json:"id"`
		Title string `json:"titulo"`
	} `json:"examen"`
}

type rawOption struct {
	ID         any    `json:"id"`
	Text       string `json:"textoOpcion"`
	IsCorrect  bool   `json:"esCorrecta"`
	QuestionID any    `json:"preguntaId"`
}

type rawResult struct {
	ID      any            `json:"id"`
	ExamID  any            `json:"examenId"`
	Score   float64        `json:"puntaje"`
	Date    string         `json:"fecha"`
	Answers map[string]any `json:"respuestas"`
	Exam    *struct {
		ID    any    `json:"id"`
		Title string `json:"titulo"`
	} `json:"examen"`
	User *struct {
		ID    any    `json:"id"`
		Email string `json:"email"`
	} `json:"usuario"`
}

type rawUser struct {
	ID    any    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type rawProfile struct {
	ID    any    `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// CreateExamPayload is the POST /examenes body. Dates are ISO dates.
type CreateExamPayload struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	StartDate   string `json:"fechaInicio"`
	EndDate     string `json:"fechaFin"`
	QuestionIDs []int  `json:"preguntasIds"`
	CreatorID   int    `json:"creadorId"`
}

// ListExams fetches /examenes and normalizes every record. The returned
// slice is never nil, even when the API answers with a null body.
func (c *Client) ListExams() ([]models.Exam, []models.Fault, error) {
	var raws []RawExam
	if err := c.getJSON("/examenes", &raws); err != nil {
		return nil, nil, err
	}

	exams := make([]models.Exam, 0, len(raws))
	var faults []models.Fault
	for _, raw := range raws {
		// A reference list with any non-numeric entry is emptied as a
		// whole rather than partially trusted (fail-safe, not fail-fast).
		if !idListCoercible(raw.QuestionIDs) {
			faults = append(faults, models.Fault{
				Kind:    models.FaultDroppedID,
				Message: fmt.Sprintf("exam %v: preguntasIds contains non-numeric entries, list emptied", raw.ID),
			})
			raw.QuestionIDs = nil
		}
		exam, fs := NormalizeExam(raw)
		exams = append(exams, exam)
		faults = append(faults, fs...)
	}
	return exams, faults, nil
}

// ListQuestions fetches /preguntas.
func (c *Client) ListQuestions() ([]models.Question, []models.Fault, error) {
	var raws []rawQuestion
	if err := c.getJSON("/preguntas", &raws); err != nil {
		return nil, nil, err
	}

	questions := make([]models.Question, 0, len(raws))
	var faults []models.Fault
	for _, raw := range raws {
		id, ok := coerceID(raw.ID)
		if !ok && raw.ID != nil {
			faults = append(faults, models.Fault{
				Kind:    models.FaultBadID,
				Message: fmt.Sprintf("question id %v is not numeric, using 0", raw.ID),
			})
		}
		q := models.Question{ID: id, Text: raw.Text, Type: raw.Type}
		if raw.Exam != nil {
			examID, _ := coerceID(raw.Exam.ID)
			q.Exam = &models.ExamRef{ID: examID, Title: raw.Exam.Title}
		}
		questions = append(questions, q)
	}
	return questions, faults, nil
}

// ListOptions fetches the options of one question.
func (c *Client) ListOptions(questionID int) ([]models.Option, []models.Fault, error) {
	var raws []rawOption
	path := fmt.Sprintf("/opciones?pregunta_id=%d", questionID)
	if err := c.getJSON(path, &raws); err != nil {
		return nil, nil, err
	}

	options := make([]models.Option, 0, len(raws))
	var faults []models.Fault
	for _, raw := range raws {
		id, ok := coerceID(raw.ID)
		if !ok && raw.ID != nil {
			faults = append(faults, models.Fault{
				Kind:       models.FaultBadID,
				QuestionID: questionID,
				Message:    fmt.Sprintf("option id %v is not numeric, using 0", raw.ID),
			})
		}
		qid, _ := coerceID(raw.QuestionID)
		if qid == 0 {
			qid = questionID
		}
		options = append(options, models.Option{
			ID:         id,
			Text:       raw.Text,
			IsCorrect:  raw.IsCorrect,
			QuestionID: qid,
		})
	}
	return options, faults, nil
}

// ListResults fetches /resultados for the reports.
func (c *Client) ListResults() ([]models.Result, []models.Fault, error) {
	var raws []rawResult
	if err := c.getJSON("/resultados", &raws); err != nil {
		return nil, nil, err
	}

	results := make([]models.Result, 0, len(raws))
	var faults []models.Fault
	for _, raw := range raws {
		id, ok := coerceID(raw.ID)
		if !ok && raw.ID != nil {
			faults = append(faults, models.Fault{
				Kind:    models.FaultBadID,
				Message: fmt.Sprintf("result id %v is not numeric, using 0", raw.ID),
			})
		}
		examID, _ := coerceID(raw.ExamID)
		r := models.Result{
			ID:     id,
			ExamID: examID,
			Score:  raw.Score,
			Date:   raw.Date,
		}
		if len(raw.Answers) > 0 {
			r.Answers = make(map[int]int, len(raw.Answers))
			for k, v := range raw.Answers {
				qid, err := strconv.Atoi(k)
				if err != nil {
					continue
				}
				optID, _ := coerceID(v)
				r.Answers[qid] = optID
			}
		}
		if raw.Exam != nil {
			refID, _ := coerceID(raw.Exam.ID)
			r.Exam = &models.ExamRef{ID: refID, Title: raw.Exam.Title}
		}
		if raw.User != nil {
			refID, _ := coerceID(raw.User.ID)
			r.User = &models.UserRef{ID: refID, Email: raw.User.Email}
		}
		results = append(results, r)
	}
	return results, faults, nil
}

// ListUsers fetches /admin/users for the user report.
func (c *Client) ListUsers() ([]models.User, []models.Fault, error) {
	var raws []rawUser
	if err := c.getJSON("/admin/users", &raws); err != nil {
		return nil, nil, err
	}

	users := make([]models.User, 0, len(raws))
	var faults []models.Fault
	for _, raw := range raws {
		id, ok := coerceID(raw.ID)
		if !ok && raw.ID != nil {
			faults = append(faults, models.Fault{
				Kind:    models.FaultBadID,
				Message: fmt.Sprintf("user id %v is not numeric, using 0", raw.ID),
			})
		}
		users = append(users, models.User{ID: id, Name: raw.Name, Email: raw.Email, Role: raw.Role})
	}
	return users, faults, nil
}

// TeacherProfile fetches /teacher/profile. The first record's id is the
// conventional default author for exam creation.
func (c *Client) TeacherProfile() ([]models.Profile, error) {
	var raws []rawProfile
	if err := c.getJSON("/teacher/profile", &raws); err != nil {
		return nil, err
	}

	profiles := make([]models.Profile, 0, len(raws))
	for _, raw := range raws {
		id, _ := coerceID(raw.ID)
		profiles = append(profiles, models.Profile{ID: id, Name: raw.Name, Email: raw.Email})
	}
	return profiles, nil
}

// CreateExam posts a new exam definition. Write failures always propagate.
func (c *Client) CreateExam(p CreateExamPayload) (models.Exam, error) {
	var raw RawExam
	if err := c.postJSON("/examenes", p, &raw); err != nil {
		return models.Exam{}, err
	}
	exam, _ := NormalizeExam(raw)
	return exam, nil
}

// SubmitResult posts the answer set for one exam attempt. Write failures
// always propagate; they are never swallowed or retried.
func (c *Client) SubmitResult(examID int, answers map[int]int) (models.Result, error) {
	payload := models.Result{ExamID: examID, Answers: answers}
	var raw rawResult
	if err := c.postJSON("/resultados", payload, &raw); err != nil {
		return models.Result{}, err
	}
	id, _ := coerceID(raw.ID)
	createdExamID, _ := coerceID(raw.ExamID)
	if createdExamID == 0 {
		createdExamID = examID
	}
	return models.Result{ID: id, ExamID: createdExamID, Score: raw.Score, Date: raw.Date, Answers: answers}, nil
}
