package course_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/darasahq/darasa/core/activity"
	"github.com/darasahq/darasa/core/course"
	inmemdb "github.com/darasahq/darasa/storage/database/inmem"
	testutil "github.com/darasahq/darasa/tests"
)

func setup(t *testing.T) (*course.Service, course.Repository, *activity.Log) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := inmemdb.NewCourseRepository(db)
	log := activity.NewLog(10)
	return course.NewService(repo, log), repo, log
}

func Test_Service_Create(t *testing.T) {
	svc, _, log := setup(t)

	crs1, err := svc.Create(course.NewCourse{Title: "A", Instructor: "sarah", Price: 49.99}, "sarah")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	crs2, err := svc.Create(course.NewCourse{Title: "B"}, "sarah")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if crs1.ID != 1 {
		t.Errorf("first id = %d; want 1", crs1.ID)
	}
	if crs2.ID <= crs1.ID {
		t.Errorf("ids not increasing: %d then %d", crs1.ID, crs2.ID)
	}
	if crs1.Status != course.StatusDraft {
		t.Errorf("status = %v; want Draft", crs1.Status)
	}
	if crs1.Rating != 0 || crs1.StudentCount != 0 || crs1.Revenue != 0 {
		t.Errorf("defaults not zero: rating=%v students=%v revenue=%v", crs1.Rating, crs1.StudentCount, crs1.Revenue)
	}
	if crs1.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}

	got, err := svc.GetByID(crs1.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Title != "A" || got.Instructor != "sarah" || got.Price != 49.99 {
		t.Errorf("GetByID() = %+v; want created fields back", got)
	}

	entries := log.List()
	if len(entries) != 2 {
		t.Fatalf("log len = %d; want 2", len(entries))
	}
	if entries[0].Action != "Created new course: B" {
		t.Errorf("log action = %q; want %q", entries[0].Action, "Created new course: B")
	}
	if entries[0].Kind != activity.KindCreated || entries[0].Actor != "sarah" {
		t.Errorf("log entry = %+v; want kind=created actor=sarah", entries[0])
	}
}

func Test_Service_Create_idNeverReused(t *testing.T) {
	svc, _, _ := setup(t)

	_, _ = svc.Create(course.NewCourse{Title: "A"}, "admin")
	crs2, _ := svc.Create(course.NewCourse{Title: "B"}, "admin")
	if err := svc.Delete(crs2.ID, "admin"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	crs3, err := svc.Create(course.NewCourse{Title: "C"}, "admin")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if crs3.ID <= crs2.ID {
		t.Errorf("id %d reused after deleting %d", crs3.ID, crs2.ID)
	}
}

func Test_Service_Update(t *testing.T) {
	svc, repo, log := setup(t)
	old := time.Now().UTC().Add(-24 * time.Hour)
	crs := testutil.CreateCourse(t, repo, "Go Basics", "sarah", course.StatusDraft, old)

	desc := "An introduction to Go."
	if err := svc.Update(crs.ID, course.UpdateCourse{Description: &desc}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	got, _ := svc.GetByID(crs.ID)
	if got.Description != desc {
		t.Errorf("Description = %q; want %q", got.Description, desc)
	}
	if got.Title != "Go Basics" {
		t.Errorf("Title = %q; want unchanged", got.Title)
	}
	if !got.LastUpdated.After(old) {
		t.Error("LastUpdated not refreshed")
	}

	// an empty partial still refreshes LastUpdated
	before := got.LastUpdated
	time.Sleep(time.Millisecond)
	if err := svc.Update(crs.ID, course.UpdateCourse{}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	got, _ = svc.GetByID(crs.ID)
	if !got.LastUpdated.After(before) {
		t.Error("LastUpdated not refreshed on empty partial")
	}

	// unknown id is a silent no-op
	if err := svc.Update(999, course.UpdateCourse{Description: &desc}); err != nil {
		t.Errorf("Update(unknown) = %v; want nil", err)
	}
	if log.Len() != 0 {
		t.Errorf("log len = %d; updates must not log", log.Len())
	}
}

func Test_Service_SetReviewStatus(t *testing.T) {
	svc, repo, log := setup(t)
	crs := testutil.CreateCourse(t, repo, "Go Basics", "sarah", course.StatusUnderReview)

	if err := svc.SetReviewStatus(crs.ID, course.StatusPublished, "admin"); err != nil {
		t.Fatalf("SetReviewStatus() failed: %v", err)
	}
	got, _ := svc.GetByID(crs.ID)
	if got.Status != course.StatusPublished {
		t.Fatalf("status = %v; want Published", got.Status)
	}

	entries := log.List()
	if len(entries) != 1 {
		t.Fatalf("log len = %d; want 1", len(entries))
	}
	if entries[0].Action != "Published course: Go Basics" {
		t.Errorf("log action = %q; want %q", entries[0].Action, "Published course: Go Basics")
	}
	if entries[0].Kind != activity.Kind("published") {
		t.Errorf("log kind = %q; want published", entries[0].Kind)
	}

	// idempotence: same final state, only the log grows
	if err := svc.SetReviewStatus(crs.ID, course.StatusPublished, "admin"); err != nil {
		t.Fatalf("SetReviewStatus() failed: %v", err)
	}
	again, _ := svc.GetByID(crs.ID)
	if again.Status != course.StatusPublished {
		t.Errorf("status = %v; want Published", again.Status)
	}
	if log.Len() != 2 {
		t.Errorf("log len = %d; want 2", log.Len())
	}
}

func Test_Service_SetReviewStatus_invalid(t *testing.T) {
	svc, repo, log := setup(t)
	draft := testutil.CreateCourse(t, repo, "Draft Course", "sarah", course.StatusDraft)
	pending := testutil.CreateCourse(t, repo, "Doomed Course", "sarah", course.StatusPendingDeletion)

	if err := svc.SetReviewStatus(draft.ID, course.StatusPublished, "admin"); !errors.Is(err, course.ErrInvalidTransition) {
		t.Errorf("draft -> published error = %v; want ErrInvalidTransition", err)
	}
	if err := svc.SetReviewStatus(pending.ID, course.StatusPublished, "admin"); !errors.Is(err, course.ErrInvalidTransition) {
		t.Errorf("pending deletion -> published error = %v; want ErrInvalidTransition", err)
	}

	// unknown id is a silent no-op
	if err := svc.SetReviewStatus(999, course.StatusPublished, "admin"); err != nil {
		t.Errorf("SetReviewStatus(unknown) = %v; want nil", err)
	}
	if log.Len() != 0 {
		t.Errorf("log len = %d; want 0", log.Len())
	}
}

func Test_Service_Delete(t *testing.T) {
	svc, repo, log := setup(t)
	crs := testutil.CreateCourse(t, repo, "Go Basics", "sarah", course.StatusPublished)

	if err := svc.Delete(crs.ID, "admin"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(crs.ID); !errors.Is(err, course.ErrNotFound) {
		t.Errorf("GetByID() error = %v; want ErrNotFound", err)
	}

	entries := log.List()
	if len(entries) != 1 {
		t.Fatalf("log len = %d; want 1", len(entries))
	}
	if entries[0].Action != "Directly deleted course: Go Basics" || entries[0].Kind != activity.KindDeleted {
		t.Errorf("log entry = %+v; want directly-deleted entry", entries[0])
	}

	// unknown id is a silent no-op
	if err := svc.Delete(999, "admin"); err != nil {
		t.Errorf("Delete(unknown) = %v; want nil", err)
	}
	if log.Len() != 1 {
		t.Errorf("log len = %d; want 1", log.Len())
	}
}

func Test_Service_Filter(t *testing.T) {
	svc, repo, _ := setup(t)
	goBasics := testutil.CreateCourse(t, repo, "Go Basics", "sarah", course.StatusPublished)
	advGo := testutil.CreateCourse(t, repo, "Advanced Go", "miguel", course.StatusDraft)
	python := testutil.CreateCourse(t, repo, "Python for Data", "amina", course.StatusPublished)

	ids := func(courses []course.Course) []int {
		out := make([]int, 0, len(courses))
		for _, crs := range courses {
			out = append(out, crs.ID)
		}
		return out
	}
	published := course.StatusPublished

	tests := []struct {
		name   string
		filter course.QueryFilter
		want   []int
	}{
		{name: "empty filter keeps insertion order", filter: course.QueryFilter{}, want: []int{goBasics.ID, advGo.ID, python.ID}},
		{name: "search", filter: course.QueryFilter{Search: "go"}, want: []int{goBasics.ID, advGo.ID}},
		{name: "search (unknown)", filter: course.QueryFilter{Search: "rust"}, want: []int{}},
		{name: "status", filter: course.QueryFilter{Status: &published}, want: []int{goBasics.ID, python.ID}},
		{name: "search and status", filter: course.QueryFilter{Search: "go", Status: &published}, want: []int{goBasics.ID}},
		{name: "search trimmed", filter: course.QueryFilter{Search: "  go  "}, want: []int{goBasics.ID, advGo.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Filter(tt.filter)
			if err != nil {
				t.Fatalf("Filter() failed: %v", err)
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func Test_Service_PendingReviews(t *testing.T) {
	svc, _, _ := setup(t)

	crs1, _ := svc.Create(course.NewCourse{Title: "A", Instructor: "sarah"}, "sarah")
	crs2, _ := svc.Create(course.NewCourse{Title: "B"}, "sarah")
	if crs1.ID != 1 || crs2.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", crs1.ID, crs2.ID)
	}

	if err := svc.SetReviewStatus(crs1.ID, course.StatusUnderReview, "sarah"); err != nil {
		t.Fatalf("SetReviewStatus() failed: %v", err)
	}
	items, err := svc.PendingReviews()
	if err != nil {
		t.Fatalf("PendingReviews() failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != crs1.ID {
		t.Fatalf("PendingReviews() = %+v; want exactly course %d", items, crs1.ID)
	}
	if items[0].Title != "A" || items[0].Instructor != "sarah" {
		t.Errorf("projection = %+v; want title/instructor filled", items[0])
	}
	if items[0].SubmittedAt.IsZero() {
		t.Error("SubmittedAt not set")
	}
	if items[0].Priority != course.PriorityNormal {
		t.Errorf("priority = %q; want normal", items[0].Priority)
	}

	// approving removes the course from the derived queue, no separate call needed
	if err := svc.SetReviewStatus(crs1.ID, course.StatusPublished, "admin"); err != nil {
		t.Fatalf("SetReviewStatus() failed: %v", err)
	}
	items, _ = svc.PendingReviews()
	if len(items) != 0 {
		t.Errorf("PendingReviews() = %+v; want empty", items)
	}
}

func Test_Service_PendingReviews_priority(t *testing.T) {
	svc, repo, _ := setup(t)
	crs := testutil.CreateCourse(t, repo, "Live Course", "sarah", course.StatusUnderReview)

	students := 120
	if err := svc.Update(crs.ID, course.UpdateCourse{StudentCount: &students}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	items, err := svc.PendingReviews()
	if err != nil {
		t.Fatalf("PendingReviews() failed: %v", err)
	}
	if len(items) != 1 || items[0].Priority != course.PriorityHigh {
		t.Errorf("PendingReviews() = %+v; want one high-priority item", items)
	}
}
