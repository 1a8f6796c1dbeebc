package models

// Activity represents an extracurricular offering at the school. The name is
// the primary key; there is no surrogate id. Participant emails live in their
// own table keyed by activity name and are projected separately.
type Activity struct {
	Name            string `json:"name" db:"name"`
	Description     string `json:"description" db:"description"`
	Schedule        string `json:"schedule" db:"schedule"`
	MaxParticipants int    `json:"max_participants" db:"max_participants"`
}
