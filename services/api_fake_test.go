package services_test

import (
	"evaluapp/client"
	"evaluapp/models"
)

type submission struct {
	examID  int
	answers map[int]int
}

// fakeAPI is an in-memory stand-in for the remote exam API. Call counters
// let tests assert that flows stay off the network when they must.
type fakeAPI struct {
	exams     []models.Exam
	questions []models.Question
	options   map[int][]models.Option
	results   []models.Result
	users     []models.User
	profiles  []models.Profile

	examErr     error
	questionErr error
	optionErr   map[int]error
	resultErr   error
	profileErr  error
	submitErr   error
	createErr   error

	examCalls   int
	optionCalls int
	submitCalls int
	createCalls int

	submitted []submission
	created   []client.CreateExamPayload
}

func (f *fakeAPI) ListExams() ([]models.Exam, []models.Fault, error) {
	f.examCalls++
	if f.examErr != nil {
		return nil, nil, f.examErr
	}
	return f.exams, nil, nil
}

func (f *fakeAPI) ListQuestions() ([]models.Question, []models.Fault, error) {
	if f.questionErr != nil {
		return nil, nil, f.questionErr
	}
	return f.questions, nil, nil
}

func (f *fakeAPI) ListOptions(questionID int) ([]models.Option, []models.Fault, error) {
	f.optionCalls++
	if err := f.optionErr[questionID]; err != nil {
		return nil, nil, err
	}
	return f.options[questionID], nil, nil
}

func (f *fakeAPI) ListResults() ([]models.Result, []models.Fault, error) {
	if f.resultErr != nil {
		return nil, nil, f.resultErr
	}
	return f.results, nil, nil
}

func (f *fakeAPI) ListUsers() ([]models.User, []models.Fault, error) {
	return f.users, nil, nil
}

func (f *fakeAPI) TeacherProfile() ([]models.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profiles, nil
}

func (f *fakeAPI) CreateExam(p client.CreateExamPayload) (models.Exam, error) {
	f.createCalls++
	if f.createErr != nil {
		return models.Exam{}, f.createErr
	}
	f.created = append(f.created, p)
	return models.Exam{ID: 42, Title: p.Title, QuestionIDs: p.QuestionIDs, CreatorID: p.CreatorID}, nil
}

func (f *fakeAPI) SubmitResult(examID int, answers map[int]int) (models.Result, error) {
	f.submitCalls++
	if f.submitErr != nil {
		return models.Result{}, f.submitErr
	}
	copied := make(map[int]int, len(answers))
	for k, v := range answers {
		copied[k] = v
	}
	f.submitted = append(f.submitted, submission{examID: examID, answers: copied})
	return models.Result{ID: 100, ExamID: examID, Answers: copied}, nil
}
