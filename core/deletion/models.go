package deletion

import "time"

// Request is a pending course-deletion request awaiting an admin decision.
// CourseTitle is a snapshot taken when the request is created; it is never
// re-synced with the course afterwards.
type Request struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	RequestedBy string    `json:"requested_by"`
	RequestedAt time.Time `json:"requested_at"` // UTC
	Reason      string    `json:"reason,omitempty"`
}
