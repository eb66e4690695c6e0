package models

// Exam mirrors an examen record of the remote API. Dates travel as ISO
// strings and are parsed only where a report needs them.
type Exam struct {
	ID          int    `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
	StartDate   string `json:"fechaInicio"`
	EndDate     string `json:"fechaFin"`
	QuestionIDs []int  `json:"preguntasIds"`
	CreatorID   int    `json:"creadorId,omitempty"`
	CreatorName string `json:"creadorNombre,omitempty"`
}

// ExamRef is the nested exam reference some records carry.
type ExamRef struct {
	ID    int    `json:"id"`
	Title string `json:"titulo"`
}
