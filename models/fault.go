package models

// Fault kinds.
const (
	FaultBadID           = "bad_id"
	FaultDroppedID       = "dropped_question_id"
	FaultNotFound        = "question_not_found"
	FaultNoOptions       = "no_options"
	FaultUnknownQuestion = "unknown_question"
)

// Fault is a recorded, non-aborting data or validation problem. Faults are
// collected and shown to the user; they never abort the surrounding
// operation.
type Fault struct {
	Kind       string `json:"kind"`
	QuestionID int    `json:"preguntaId,omitempty"`
	Message    string `json:"message"`
}

func (f Fault) String() string { return f.Message }
