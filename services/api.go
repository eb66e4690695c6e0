package services

import (
	"evaluapp/client"
	"evaluapp/models"
)

// API is the slice of the remote exam API the flows depend on.
// *client.Client satisfies it; tests plug in an in-memory fake.
type API interface {
	ListExams() ([]models.Exam, []models.Fault, error)
	ListQuestions() ([]models.Question, []models.Fault, error)
	ListOptions(questionID int) ([]models.Option, []models.Fault, error)
	ListResults() ([]models.Result, []models.Fault, error)
	ListUsers() ([]models.User, []models.Fault, error)
	TeacherProfile() ([]models.Profile, error)
	CreateExam(p client.CreateExamPayload) (models.Exam, error)
	SubmitResult(examID int, answers map[int]int) (models.Result, error)
}

// ValidationError is a locally detected input problem. It is raised before
// any network call is made and never reaches the API.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
