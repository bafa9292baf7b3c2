package course

import (
	"encoding/json"
	"fmt"
)

// Status is the closed set of lifecycle states a Course moves through.
// The zero value is StatusDraft.
type Status uint8

const (
	StatusDraft Status = iota
	StatusUnderReview
	StatusPublished
	StatusPendingDeletion
)

var (
	statusNames = map[Status]string{
		StatusDraft:           "Draft",
		StatusUnderReview:     "Under Review",
		StatusPublished:       "Published",
		StatusPendingDeletion: "Pending Deletion",
	}
	statusKinds = map[Status]string{
		StatusDraft:           "draft",
		StatusUnderReview:     "under_review",
		StatusPublished:       "published",
		StatusPendingDeletion: "pending_deletion",
	}

	// reviewTransitions is the explicit old-status -> new-status table for
	// SetReviewStatus. Self-transitions are allowed so that repeated admin
	// actions stay idempotent. StatusPendingDeletion never appears: a course
	// only enters or leaves it through the deletion request queue.
	reviewTransitions = map[Status][]Status{
		StatusDraft:       {StatusDraft, StatusUnderReview},
		StatusUnderReview: {StatusUnderReview, StatusPublished, StatusDraft},
		StatusPublished:   {StatusPublished, StatusUnderReview},
	}
)

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Kind is the snake-cased status name, used as the activity-log kind tag.
func (s Status) Kind() string {
	return statusKinds[s]
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

// CanReviewTransition reports whether SetReviewStatus may move a course
// from s to target.
func (s Status) CanReviewTransition(target Status) bool {
	for _, allowed := range reviewTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) MarshalJSON() ([]byte, error) {
	kind, ok := statusKinds[s]
	if !ok {
		return nil, fmt.Errorf("course: unknown status %d", uint8(s))
	}
	return json.Marshal(kind)
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus maps a snake-cased status name back to its Status.
func ParseStatus(s string) (Status, error) {
	for status, kind := range statusKinds {
		if s == kind {
			return status, nil
		}
	}
	return StatusDraft, fmt.Errorf("course: unknown status %q", s)
}
