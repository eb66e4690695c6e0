package models

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Profile is one record of /teacher/profile; the first record's id is the
// fallback author for exam creation.
type Profile struct {
	ID    int    `json:"id"`
	Name  string `json:"nombre,omitempty"`
	Email string `json:"email,omitempty"`
}
