package dto

// ActivityDetail is the per-activity projection returned by the activities
// endpoints: metadata plus the flat list of registered participant emails.
type ActivityDetail struct {
	Description     string   `json:"description" example:"Learn strategies and compete in chess tournaments"`
	Schedule        string   `json:"schedule" example:"Fridays, 3:30 PM - 5:00 PM"`
	MaxParticipants int      `json:"max_participants" example:"12"`
	Participants    []string `json:"participants"`
}

// ActivityMap maps activity names to their details. This mirrors the shape
// the web frontend consumes; key order carries no meaning.
type ActivityMap map[string]*ActivityDetail
