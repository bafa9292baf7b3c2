package course

import (
	"time"

	"github.com/darasahq/darasa/core"
)

// Course is the canonical catalog record. The store owns its lifetime;
// other components hold it by id only.
type Course struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Instructor   string    `json:"instructor"`
	Price        float64   `json:"price"`
	Level        string    `json:"level"`
	Category     string    `json:"category"`
	Duration     string    `json:"duration"`
	Language     string    `json:"language"`
	Rating       float64   `json:"rating"` // 0 when unreviewed, else 0.0-5.0
	StudentCount int       `json:"student_count"`
	Revenue      float64   `json:"revenue"`
	LastUpdated  time.Time `json:"last_updated"` // UTC; refreshed on every mutation
	Status       Status    `json:"status"`

	// DeletionRequested mirrors the deletion queue: it is true iff the course
	// is PendingDeletion and a live request references it.
	DeletionRequested   bool   `json:"deletion_requested"`
	DeletionRequestedBy string `json:"deletion_requested_by,omitempty"`
}

// NewCourse contains information needed to create a new Course.
//
// Validation is a caller concern: the store accepts whatever it is given,
// and UI forms are expected to call Validate before invoking Create.
type NewCourse struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Instructor  string  `json:"instructor"`
	Price       float64 `json:"price" validate:"gte=0"`
	Level       string  `json:"level"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Language    string  `json:"language"`
	Status      Status  `json:"status"` // zero value is Draft
}

func (nc *NewCourse) Validate(svc *Service) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Instructor = core.CleanString(nc.Instructor)

	if err := core.Validate.Struct(nc); err != nil {
		return core.TranslateValidationErrors(err)
	}
	return svc.CheckTitleSimilarity(nc.Title)
}

// UpdateCourse defines what information may be provided to modify an existing
// Course. Nil fields are left untouched.
type UpdateCourse struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Instructor   *string  `json:"instructor"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	Level        *string  `json:"level"`
	Category     *string  `json:"category"`
	Duration     *string  `json:"duration"`
	Language     *string  `json:"language"`
	Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	StudentCount *int     `json:"student_count" validate:"omitempty,gte=0"`
	Revenue      *float64 `json:"revenue" validate:"omitempty,gte=0"`

	Status              *Status `json:"status"`
	DeletionRequested   *bool   `json:"deletion_requested"`
	DeletionRequestedBy *string `json:"deletion_requested_by"`
}

func (uc *UpdateCourse) Validate(origCrs Course, svc *Service) error {
	if uc.Title != nil {
		title := core.CleanString(*uc.Title)
		if title == "" {
			title = origCrs.Title
		}
		uc.Title = &title
	}
	if err := core.Validate.Struct(uc); err != nil {
		return core.TranslateValidationErrors(err)
	}
	if uc.Title != nil && *uc.Title != origCrs.Title {
		return svc.CheckTitleSimilarity(*uc.Title, origCrs)
	}
	return nil
}

// QueryFilter narrows Filter results. Fields combine conjunctively:
// Search does a case-insensitive match on Title or Description.
type QueryFilter struct {
	Search string  `query:"search"`
	Status *Status `query:"status"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Status == nil
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}

// Review priorities, derived for display on the admin review dashboard.
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// ReviewItem is the projection of an UnderReview course consumed by the
// admin review dashboard. It is derived, never stored.
type ReviewItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Instructor  string    `json:"instructor"`
	SubmittedAt time.Time `json:"submitted_at"`
	Priority    string    `json:"priority"`
}

func newReviewItem(crs Course) ReviewItem {
	priority := PriorityNormal
	if crs.StudentCount > 0 {
		// resubmission of a course with live enrollments
		priority = PriorityHigh
	}
	return ReviewItem{
		ID:          crs.ID,
		Title:       crs.Title,
		Instructor:  crs.Instructor,
		SubmittedAt: crs.LastUpdated,
		Priority:    priority,
	}
}
