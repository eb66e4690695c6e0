package models

// Result is one recorded exam attempt. On submit only ExamID and Answers are
// sent; the report endpoints return it enriched with score and references.
// Answers maps question id to the chosen option id (JSON object keys are the
// question ids as strings).
type Result struct {
	ID      int         `json:"id,omitempty"`
	ExamID  int         `json:"examenId"`
	Answers map[int]int `json:"respuestas,omitempty"`
	Score   float64     `json:"puntaje,omitempty"`
	Date    string      `json:"fecha,omitempty"`
	Exam    *ExamRef    `json:"examen,omitempty"`
	User    *UserRef    `json:"usuario,omitempty"`
}

type UserRef struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
