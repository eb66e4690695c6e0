package models

type Option struct {
	ID         int    `json:"id"`
	Text       string `json:"textoOpcion"`
	IsCorrect  bool   `json:"esCorrecta"`
	QuestionID int    `json:"preguntaId,omitempty"`
}
