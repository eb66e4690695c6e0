package models

type Question struct {
	ID   int    `json:"id"`
	Text string `json:"textoPregunta"`
	Type string `json:"tipo,omitempty"`

	// Exam is present on /preguntas responses and used by the reports.
	Exam *ExamRef `json:"examen,omitempty"`
}
