package inmemdb

import (
	"strings"
	"time"

	"github.com/darasahq/darasa/core/course"
)

type courseRepository struct {
	db *courseTable
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) query() []course.Course {
	courses := make([]course.Course, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		courses = append(courses, *repo.db.table[id])
	}
	return courses
}

func (repo *courseRepository) CreateCourse(crs course.Course) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	crs.ID = repo.db.nextID()
	repo.db.lastID = crs.ID
	repo.db.table[crs.ID] = &crs
	repo.db.order = append(repo.db.order, crs.ID)
	return crs, nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *courseRepository) GetCourseByID(id int) (course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if crs, ok := repo.db.table[id]; ok {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if filter.IsEmpty() {
		return repo.query(), nil
	}

	search := strings.ToLower(filter.Search)
	courses := make([]course.Course, 0, len(repo.db.order))
	for _, crs := range repo.query() {
		if search != "" &&
			!strings.Contains(strings.ToLower(crs.Title), search) &&
			!strings.Contains(strings.ToLower(crs.Description), search) {
			continue
		}
		if filter.Status != nil && crs.Status != *filter.Status {
			continue
		}
		courses = append(courses, crs)
	}
	return courses, nil
}

func (repo *courseRepository) UpdateCourse(id int, uc course.UpdateCourse, updatedAt time.Time) (course.Course, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	crs, ok := repo.db.table[id]
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	if uc.Title != nil {
		crs.Title = *uc.Title
	}
	if uc.Description != nil {
		crs.Description = *uc.Description
	}
	if uc.Instructor != nil {
		crs.Instructor = *uc.Instructor
	}
	if uc.Price != nil {
		crs.Price = *uc.Price
	}
	if uc.Level != nil {
		crs.Level = *uc.Level
	}
	if uc.Category != nil {
		crs.Category = *uc.Category
	}
	if uc.Duration != nil {
		crs.Duration = *uc.Duration
	}
	if uc.Language != nil {
		crs.Language = *uc.Language
	}
	if uc.Rating != nil {
		crs.Rating = *uc.Rating
	}
	if uc.StudentCount != nil {
		crs.StudentCount = *uc.StudentCount
	}
	if uc.Revenue != nil {
		crs.Revenue = *uc.Revenue
	}
	if uc.Status != nil {
		crs.Status = *uc.Status
	}
	if uc.DeletionRequested != nil {
		crs.DeletionRequested = *uc.DeletionRequested
	}
	if uc.DeletionRequestedBy != nil {
		crs.DeletionRequestedBy = *uc.DeletionRequestedBy
	}
	crs.LastUpdated = updatedAt

	return *crs, nil
}

func (repo *courseRepository) DeleteCourse(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return course.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
