package inmemdb

import (
	"github.com/darasahq/darasa/core/deletion"
)

type requestRepository struct {
	db *requestTable
}

func NewRequestRepository(db *DB) deletion.Repository {
	return &requestRepository{db: db.deletion}
}

func (repo *requestRepository) CreateRequest(req deletion.Request) (deletion.Request, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	req.ID = repo.db.nextID()
	repo.db.lastID = req.ID
	repo.db.table[req.ID] = &req
	repo.db.order = append(repo.db.order, req.ID)
	return req, nil
}

func (repo *requestRepository) QueryAllRequests() ([]deletion.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	requests := make([]deletion.Request, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		requests = append(requests, *repo.db.table[id])
	}
	return requests, nil
}

func (repo *requestRepository) GetRequestByID(id int) (deletion.Request, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if req, ok := repo.db.table[id]; ok {
		return *req, nil
	}
	return deletion.Request{}, deletion.ErrNotFound
}

func (repo *requestRepository) DeleteRequest(id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return deletion.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
