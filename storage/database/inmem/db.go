package inmemdb

import (
	"sync"

	"github.com/darasahq/darasa/core/course"
	"github.com/darasahq/darasa/core/deletion"
)

type (
	DB struct {
		course   *courseTable
		deletion *requestTable
	}

	courseTable struct {
		sync.RWMutex
		table  map[int]*course.Course
		order  []int // insertion order of live rows
		lastID int   // high-water mark; ids are never reused
	}

	requestTable struct {
		sync.RWMutex
		table  map[int]*deletion.Request
		order  []int
		lastID int
	}
)

// Open sets up the in-memory tables, optionally restoring an initial course
// set (the injected load capability of the startup sequence).
func Open(seed ...course.Course) (*DB, error) {
	db := &DB{
		course:   &courseTable{table: make(map[int]*course.Course)},
		deletion: &requestTable{table: make(map[int]*deletion.Request)},
	}
	for _, crs := range seed {
		crs := crs
		if crs.ID <= 0 {
			crs.ID = db.course.nextID()
		}
		db.course.table[crs.ID] = &crs
		db.course.order = append(db.course.order, crs.ID)
		if crs.ID > db.course.lastID {
			db.course.lastID = crs.ID
		}
	}
	return db, nil
}

// nextID implements max(existing ids, 0) + 1 with a high-water mark so that
// deleting the highest course can never cause its id to be handed out again.
func (t *courseTable) nextID() int {
	max := t.lastID
	for id := range t.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (t *requestTable) nextID() int {
	max := t.lastID
	for id := range t.table {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func removeID(order []int, id int) []int {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
