package course

import (
	"errors"
	"fmt"
	"time"

	"github.com/darasahq/darasa/core"
	"github.com/darasahq/darasa/core/activity"
)

var (
	// errors
	ErrNotFound          = errors.New("course not found")
	ErrTitleExists       = errors.New("a course with a similar title already exists")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

type (
	Repository interface {
		// CreateCourse assigns the next unique id; ids are never reused
		// within the repository's lifetime.
		CreateCourse(crs Course) (Course, error)
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		// FilterCourses applies AND operation on available QueryFilter fields.
		// QueryFilter.Search does a case-insensitive match on Course.Title or
		// Course.Description. Results keep insertion order.
		FilterCourses(filter QueryFilter) ([]Course, error)
		// UpdateCourse merges set fields and stamps LastUpdated with updatedAt.
		UpdateCourse(id int, uc UpdateCourse, updatedAt time.Time) (Course, error)
		DeleteCourse(id int) error
	}

	Service struct {
		repo Repository
		log  *activity.Log
	}
)

func NewService(repo Repository, log *activity.Log) *Service {
	return &Service{repo: repo, log: log}
}

// CheckTitleSimilarity reports a validation error when an existing course's
// title is a near-duplicate of title. Courses in exclCourses are skipped
// (typically the course being updated).
func (svc *Service) CheckTitleSimilarity(title string, exclCourses ...Course) error {
	existing, err := svc.repo.QueryAllCourses()
	if err != nil {
		return err
	}
	if titleTooSimilar(title, existing, exclCourses) {
		return core.NewValidationError(ErrTitleExists, core.FieldError{Field: "title", Error: ErrTitleExists.Error()})
	}
	return nil
}

func (svc *Service) Create(nc NewCourse, actor string) (Course, error) {
	crs := Course{
		Title:       nc.Title,
		Description: nc.Description,
		Instructor:  nc.Instructor,
		Price:       nc.Price,
		Level:       nc.Level,
		Category:    nc.Category,
		Duration:    nc.Duration,
		Language:    nc.Language,
		Status:      nc.Status,
		LastUpdated: time.Now().UTC(),
	}
	crs, err := svc.repo.CreateCourse(crs)
	if err != nil {
		return Course{}, err
	}
	svc.log.Append(fmt.Sprintf("Created new course: %s", crs.Title), actor, activity.KindCreated)
	return crs, nil
}

// Update merges set fields into the matching course and refreshes LastUpdated.
// An unknown id is a silent no-op: callers needing confirmation should call
// GetByID first.
func (svc *Service) Update(id int, uc UpdateCourse) error {
	if _, err := svc.repo.UpdateCourse(id, uc, time.Now().UTC()); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// SetReviewStatus moves a course through the review lifecycle. Transitions
// are validated against the status table; PendingDeletion is out of reach
// here. An unknown id is a silent no-op.
func (svc *Service) SetReviewStatus(id int, status Status, actor string) error {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if !crs.Status.CanReviewTransition(status) {
		return ErrInvalidTransition
	}
	if _, err := svc.repo.UpdateCourse(id, UpdateCourse{Status: &status}, time.Now().UTC()); err != nil {
		return err
	}
	svc.log.Append(fmt.Sprintf("%s course: %s", status, crs.Title), actor, activity.Kind(status.Kind()))
	return nil
}

// Delete removes the course unconditionally. An unknown id is a silent no-op.
func (svc *Service) Delete(id int, actor string) error {
	crs, err := svc.repo.GetCourseByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if err := svc.repo.DeleteCourse(id); err != nil {
		return err
	}
	svc.log.Append(fmt.Sprintf("Directly deleted course: %s", crs.Title), actor, activity.KindDeleted)
	return nil
}

func (svc *Service) GetByID(id int) (Course, error) {
	return svc.repo.GetCourseByID(id)
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

func (svc *Service) Filter(filter QueryFilter) ([]Course, error) {
	filter.Clean()
	return svc.repo.FilterCourses(filter)
}

// PendingReviews is the derived review queue: every UnderReview course,
// projected for the admin dashboard. It is recomputed on each call so it can
// never drift from the underlying statuses.
func (svc *Service) PendingReviews() ([]ReviewItem, error) {
	status := StatusUnderReview
	courses, err := svc.repo.FilterCourses(QueryFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	items := make([]ReviewItem, 0, len(courses))
	for _, crs := range courses {
		items = append(items, newReviewItem(crs))
	}
	return items, nil
}
