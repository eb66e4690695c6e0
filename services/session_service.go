package services

import (
	"fmt"

	"evaluapp/models"
)

// Session status values. A session moves
// answering -> completed | failed; failed may resume to answering.
// no_questions is terminal.
const (
	StatusAnswering   = "answering"
	StatusNoQuestions = "no_questions"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
)

// SessionQuestion is one question of the session with its fetched options.
// Options are cached here so a failed submit can be retried without hitting
// /opciones again. A question that yielded no options stays visible but is
// not answerable.
type SessionQuestion struct {
	Question   models.Question `json:"question"`
	Options    []models.Option `json:"options,omitempty"`
	Answerable bool            `json:"answerable"`
}

// SessionState is everything one exam-taking session holds. It is owned by a
// single user context and serializes to JSON for the session store.
type SessionState struct {
	Exam      models.Exam       `json:"exam"`
	Questions []SessionQuestion `json:"questions,omitempty"`
	Answers   map[int]int       `json:"answers"`
	Faults    []models.Fault    `json:"faults,omitempty"`
	Status    string            `json:"status"`
	// LastError holds the last submit failure so the answering page can show
	// it next to the retry button.
	LastError string `json:"lastError,omitempty"`
}

// SessionService drives the exam-taking flow: list exams, load a session,
// collect answers, submit. All calls are synchronous and nothing is retried
// implicitly.
type SessionService struct {
	api API
}

func NewSessionService(api API) *SessionService {
	return &SessionService{api: api}
}

// ListExams returns the selectable exams. Callers on the read path degrade
// an error to an empty list plus a surfaced message.
func (s *SessionService) ListExams() ([]models.Exam, []models.Fault, error) {
	return s.api.ListExams()
}

// Start loads the chosen exam into a fresh session. Questions referenced by
// the exam but absent from /preguntas are skipped with a fault; a question
// whose option fetch fails or comes back empty is kept for display but
// excluded from answer collection. If nothing resolvable remains the session
// ends in no_questions without a single option fetch.
func (s *SessionService) Start(examID int) (*SessionState, error) {
	exams, faults, err := s.api.ListExams()
	if err != nil {
		return nil, err
	}

	var exam *models.Exam
	for i := range exams {
		if exams[i].ID == examID {
			exam = &exams[i]
			break
		}
	}
	if exam == nil {
		return nil, &ValidationError{Message: fmt.Sprintf("exam %d not found", examID)}
	}

	state := &SessionState{
		Exam:    *exam,
		Answers: map[int]int{},
		Faults:  faults,
	}

	if len(exam.QuestionIDs) == 0 {
		state.Status = StatusNoQuestions
		return state, nil
	}

	questions, qfaults, err := s.api.ListQuestions()
	if err != nil {
		return nil, err
	}
	state.Faults = append(state.Faults, qfaults...)

	byID := make(map[int]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	// Resolve in the exam's order; a dangling reference skips that question
	// only, never the whole flow.
	resolved := make([]models.Question, 0, len(exam.QuestionIDs))
	for _, qid := range exam.QuestionIDs {
		q, ok := byID[qid]
		if !ok {
			state.Faults = append(state.Faults, models.Fault{
				Kind:       models.FaultNotFound,
				QuestionID: qid,
				Message:    fmt.Sprintf("question %d not found", qid),
			})
			continue
		}
		resolved = append(resolved, q)
	}

	if len(resolved) == 0 {
		state.Status = StatusNoQuestions
		return state, nil
	}

	// One option fetch per question; an empty or failing set excludes that
	// question from answer collection without aborting its siblings.
	for _, q := range resolved {
		sq := SessionQuestion{Question: q}
		options, ofaults, err := s.api.ListOptions(q.ID)
		if err != nil {
			state.Faults = append(state.Faults, models.Fault{
				Kind:       models.FaultNoOptions,
				QuestionID: q.ID,
				Message:    fmt.Sprintf("options for question %d unavailable: %v", q.ID, err),
			})
		} else {
			state.Faults = append(state.Faults, ofaults...)
			if len(options) == 0 {
				state.Faults = append(state.Faults, models.Fault{
					Kind:       models.FaultNoOptions,
					QuestionID: q.ID,
					Message:    fmt.Sprintf("no options found for question %q", q.Text),
				})
			} else {
				sq.Options = options
				sq.Answerable = true
			}
		}
		state.Questions = append(state.Questions, sq)
	}

	state.Status = StatusAnswering
	return state, nil
}

// Answer records the single chosen option for a question. Re-answering
// overwrites the previous choice.
func (s *SessionService) Answer(state *SessionState, questionID, optionID int) error {
	if state.Status != StatusAnswering {
		return &ValidationError{Message: "session is not accepting answers"}
	}
	for _, sq := range state.Questions {
		if sq.Question.ID != questionID {
			continue
		}
		if !sq.Answerable {
			return &ValidationError{Message: fmt.Sprintf("question %d has no options and cannot be answered", questionID)}
		}
		for _, opt := range sq.Options {
			if opt.ID == optionID {
				state.Answers[questionID] = optionID
				return nil
			}
		}
		return &ValidationError{Message: fmt.Sprintf("option %d does not belong to question %d", optionID, questionID)}
	}
	return &ValidationError{Message: fmt.Sprintf("question %d is not part of this session", questionID)}
}

// Submit sends the collected answers. An empty answer set is rejected
// locally without touching the network and the session stays in answering.
// On a server failure the session moves to failed but keeps its cached
// questions and options so Resume plus a second Submit needs no refetch.
func (s *SessionService) Submit(state *SessionState) (models.Result, error) {
	if state.Status != StatusAnswering && state.Status != StatusFailed {
		return models.Result{}, &ValidationError{Message: "session is not ready to submit"}
	}
	if len(state.Answers) == 0 {
		return models.Result{}, &ValidationError{Message: "no questions answered"}
	}

	result, err := s.api.SubmitResult(state.Exam.ID, state.Answers)
	if err != nil {
		state.Status = StatusFailed
		state.LastError = err.Error()
		return models.Result{}, err
	}

	state.Status = StatusCompleted
	state.LastError = ""
	return result, nil
}

// Resume returns a failed session to answering so the user can retry.
func (s *SessionService) Resume(state *SessionState) {
	if state.Status == StatusFailed {
		state.Status = StatusAnswering
	}
}
