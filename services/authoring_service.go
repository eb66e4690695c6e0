package services

import (
	"fmt"
	"strings"
	"time"

	"evaluapp/client"
	"evaluapp/models"
)

const isoDate = "2006-01-02"

// AuthoringService validates and submits new exam definitions.
type AuthoringService struct {
	api API
	// defaultCreatorID is used when neither the request nor /teacher/profile
	// yields an author. Configurable because the id is a deployment detail,
	// not a constant.
	defaultCreatorID int
}

func NewAuthoringService(api API, defaultCreatorID int) *AuthoringService {
	return &AuthoringService{api: api, defaultCreatorID: defaultCreatorID}
}

// CreateExamRequest is the authoring form input. CreatorID 0 means unknown;
// it is resolved via /teacher/profile and then the configured default.
type CreateExamRequest struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	QuestionIDs []int
	CreatorID   int
}

// Questions returns the known question list for the authoring form.
func (s *AuthoringService) Questions() ([]models.Question, []models.Fault, error) {
	return s.api.ListQuestions()
}

// CreateExam validates fail-fast in a fixed order (title, date window,
// selection) and then submits. Selected ids missing from the known question
// list are dropped with a per-id fault; creation only aborts when no valid
// id remains. The returned faults are reported even on success.
func (s *AuthoringService) CreateExam(req CreateExamRequest) (models.Exam, []models.Fault, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Exam{}, nil, &ValidationError{Message: "title must not be empty"}
	}
	if !req.EndDate.After(req.StartDate) {
		return models.Exam{}, nil, &ValidationError{Message: "end date must be after start date"}
	}
	if len(req.QuestionIDs) == 0 {
		return models.Exam{}, nil, &ValidationError{Message: "select at least one question"}
	}

	questions, _, err := s.api.ListQuestions()
	if err != nil {
		// Cannot validate the selection blind; creation is a write and must
		// not proceed on guesswork.
		return models.Exam{}, nil, err
	}
	known := make(map[int]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	var faults []models.Fault
	keep := make([]int, 0, len(req.QuestionIDs))
	for _, id := range req.QuestionIDs {
		if !known[id] {
			faults = append(faults, models.Fault{
				Kind:       models.FaultUnknownQuestion,
				QuestionID: id,
				Message:    fmt.Sprintf("question %d does not exist and was left out", id),
			})
			continue
		}
		keep = append(keep, id)
	}
	if len(keep) == 0 {
		return models.Exam{}, faults, &ValidationError{Message: "none of the selected questions exist"}
	}

	payload := client.CreateExamPayload{
		Title:       title,
		Description: req.Description,
		StartDate:   req.StartDate.Format(isoDate),
		EndDate:     req.EndDate.Format(isoDate),
		QuestionIDs: keep,
		CreatorID:   s.resolveCreator(req.CreatorID),
	}

	exam, err := s.api.CreateExam(payload)
	if err != nil {
		return models.Exam{}, faults, err
	}
	return exam, faults, nil
}

// resolveCreator: an explicit id wins, then the first /teacher/profile
// record, then the configured default. Creation is never blocked on a
// missing author.
func (s *AuthoringService) resolveCreator(explicit int) int {
	if explicit != 0 {
		return explicit
	}
	if profiles, err := s.api.TeacherProfile(); err == nil && len(profiles) > 0 && profiles[0].ID != 0 {
		return profiles[0].ID
	}
	return s.defaultCreatorID
}
