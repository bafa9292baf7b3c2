package testutil

import (
	"testing"
	"time"

	"github.com/darasahq/darasa/core/course"
)

// CreateCourse inserts a course directly through the repository, bypassing the
// service so tests control every field and no activity entry is emitted.
func CreateCourse(
	t *testing.T,
	repo course.Repository,
	title, instructor string,
	status course.Status,
	lastUpdated ...time.Time,
) course.Course {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(lastUpdated) > 0 {
		tstamp = lastUpdated[0].UTC()
	}
	crs, err := repo.CreateCourse(course.Course{
		Title:       title,
		Instructor:  instructor,
		Status:      status,
		LastUpdated: tstamp,
	})
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}
