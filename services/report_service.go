package services

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"

	"evaluapp/models"
)

// ReportService aggregates the remote collections into the summaries the
// results page and the reporting CLI print. Pure read-only consumer.
type ReportService struct {
	api API
}

func NewReportService(api API) *ReportService {
	return &ReportService{api: api}
}

// Counts backs the home page metrics. Each collection degrades to zero on a
// read failure; the messages are surfaced next to the metrics.
type Counts struct {
	Exams     int
	Questions int
	Results   int
	Errors    []string
}

func (s *ReportService) Counts() Counts {
	var c Counts
	if exams, _, err := s.api.ListExams(); err != nil {
		c.Errors = append(c.Errors, err.Error())
	} else {
		c.Exams = len(exams)
	}
	if questions, _, err := s.api.ListQuestions(); err != nil {
		c.Errors = append(c.Errors, err.Error())
	} else {
		c.Questions = len(questions)
	}
	if results, _, err := s.api.ListResults(); err != nil {
		c.Errors = append(c.Errors, err.Error())
	} else {
		c.Results = len(results)
	}
	return c
}

// ResultsSummary aggregates /resultados.
type ResultsSummary struct {
	Count      int
	MeanByExam map[string]float64
	MeanByUser map[string]float64
	BestUser   string
	BestMean   float64
	WorstUser  string
	WorstMean  float64
	Mean       float64
	Median     float64
	Min        float64
	Max        float64
}

func (s *ReportService) Results() (*ResultsSummary, []models.Result, error) {
	results, _, err := s.api.ListResults()
	if err != nil {
		return nil, nil, err
	}

	summary := &ResultsSummary{
		Count:      len(results),
		MeanByExam: map[string]float64{},
		MeanByUser: map[string]float64{},
	}
	if len(results) == 0 {
		return summary, results, nil
	}

	scores := make([]float64, 0, len(results))
	byExam := map[string][]float64{}
	byUser := map[string][]float64{}
	for _, r := range results {
		scores = append(scores, r.Score)
		examTitle := "(unknown exam)"
		if r.Exam != nil && r.Exam.Title != "" {
			examTitle = r.Exam.Title
		}
		byExam[examTitle] = append(byExam[examTitle], r.Score)
		userEmail := "(unknown user)"
		if r.User != nil && r.User.Email != "" {
			userEmail = r.User.Email
		}
		byUser[userEmail] = append(byUser[userEmail], r.Score)
	}

	for title, vals := range byExam {
		summary.MeanByExam[title] = mean(vals)
	}
	for email, vals := range byUser {
		m := mean(vals)
		summary.MeanByUser[email] = m
		if summary.BestUser == "" || m > summary.BestMean {
			summary.BestUser, summary.BestMean = email, m
		}
		if summary.WorstUser == "" || m < summary.WorstMean {
			summary.WorstUser, summary.WorstMean = email, m
		}
	}

	summary.Mean = mean(scores)
	summary.Median, _ = stats.Median(scores)
	summary.Min, _ = stats.Min(scores)
	summary.Max, _ = stats.Max(scores)
	return summary, results, nil
}

// ExamRow is one exam with its computed duration.
type ExamRow struct {
	Exam        models.Exam
	DurationMin float64
	HasDuration bool
}

type ExamsSummary struct {
	Rows      []ExamRow
	ByCreator map[string]int
}

func (s *ReportService) Exams() (*ExamsSummary, []models.Fault, error) {
	exams, faults, err := s.api.ListExams()
	if err != nil {
		return nil, nil, err
	}

	summary := &ExamsSummary{ByCreator: map[string]int{}}
	for _, e := range exams {
		row := ExamRow{Exam: e}
		if start, ok := parseAPITime(e.StartDate); ok {
			if end, ok := parseAPITime(e.EndDate); ok {
				row.DurationMin = end.Sub(start).Minutes()
				row.HasDuration = true
			}
		}
		summary.Rows = append(summary.Rows, row)
		if e.CreatorName != "" {
			summary.ByCreator[e.CreatorName]++
		}
	}
	return summary, faults, nil
}

type QuestionsSummary struct {
	Questions []models.Question
	PerExam   map[string]int
}

func (s *ReportService) Questions() (*QuestionsSummary, []models.Fault, error) {
	questions, faults, err := s.api.ListQuestions()
	if err != nil {
		return nil, nil, err
	}

	summary := &QuestionsSummary{Questions: questions, PerExam: map[string]int{}}
	for _, q := range questions {
		title := "(unassigned)"
		if q.Exam != nil && q.Exam.Title != "" {
			title = q.Exam.Title
		}
		summary.PerExam[title]++
	}
	return summary, faults, nil
}

// OptionRow pairs an option with the question it was fetched for.
type OptionRow struct {
	Option       models.Option
	QuestionID   int
	QuestionText string
}

// OptionsAudit lists option counts per question and flags questions whose
// correct-option count is not exactly one. Data-quality listing only; the
// session flow never enforces it.
type OptionsAudit struct {
	Rows          []OptionRow
	PerQuestion   map[int]int
	CorrectCount  map[int]int
	Misconfigured []int
}

func (s *ReportService) Options() (*OptionsAudit, []models.Fault, error) {
	questions, faults, err := s.api.ListQuestions()
	if err != nil {
		return nil, nil, err
	}

	audit := &OptionsAudit{
		PerQuestion:  map[int]int{},
		CorrectCount: map[int]int{},
	}
	for _, q := range questions {
		options, ofaults, err := s.api.ListOptions(q.ID)
		if err != nil {
			// one broken question must not sink the whole audit
			faults = append(faults, models.Fault{
				Kind:       models.FaultNoOptions,
				QuestionID: q.ID,
				Message:    err.Error(),
			})
			continue
		}
		faults = append(faults, ofaults...)
		audit.PerQuestion[q.ID] = len(options)
		for _, opt := range options {
			audit.Rows = append(audit.Rows, OptionRow{Option: opt, QuestionID: q.ID, QuestionText: q.Text})
			if opt.IsCorrect {
				audit.CorrectCount[q.ID]++
			}
		}
		if audit.CorrectCount[q.ID] != 1 {
			audit.Misconfigured = append(audit.Misconfigured, q.ID)
		}
	}
	sort.Ints(audit.Misconfigured)
	return audit, faults, nil
}

type UsersSummary struct {
	Total         int
	ByRole        map[string]int
	PercentByRole map[string]float64
}

func (s *ReportService) Users() (*UsersSummary, []models.Fault, error) {
	users, faults, err := s.api.ListUsers()
	if err != nil {
		return nil, nil, err
	}

	summary := &UsersSummary{
		Total:         len(users),
		ByRole:        map[string]int{},
		PercentByRole: map[string]float64{},
	}
	for _, u := range users {
		role := u.Role
		if role == "" {
			role = "(none)"
		}
		summary.ByRole[role]++
	}
	for role, n := range summary.ByRole {
		summary.PercentByRole[role] = float64(n) / float64(summary.Total) * 100
	}
	return summary, faults, nil
}

func mean(vals []float64) float64 {
	m, err := stats.Mean(vals)
	if err != nil {
		return 0
	}
	return m
}

// parseAPITime accepts the date formats the API has been seen to emit.
func parseAPITime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
