package rest

import (
	"context"
	"slices"
	"sync"

	"github.com/rpattn/hrapi/internal/criteria"
	"github.com/rpattn/hrapi/internal/domain"
	"github.com/rpattn/hrapi/internal/repository"
)

// memStore is an in-memory repository that records the last query it saw.
type memStore[E any, C criteria.Criteria] struct {
	mu       sync.Mutex
	items    map[int64]E
	nextID   int64
	getID    func(E) int64
	setID    func(*E, int64)
	findErr  error
	criteria []C
	pages    []domain.Page
}

func newMemStore[E any, C criteria.Criteria](getID func(E) int64, setID func(*E, int64)) *memStore[E, C] {
	return &memStore[E, C]{items: map[int64]E{}, getID: getID, setID: setID}
}

func (s *memStore[E, C]) Create(_ context.Context, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.setID(&e, s.nextID)
	s.items[s.nextID] = e
	return e, nil
}

func (s *memStore[E, C]) Update(_ context.Context, e E) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[s.getID(e)]; !ok {
		return e, repository.ErrNotFound
	}
	s.items[s.getID(e)] = e
	return e, nil
}

func (s *memStore[E, C]) GetByID(_ context.Context, id int64) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return e, repository.ErrNotFound
	}
	return e, nil
}

func (s *memStore[E, C]) sorted() []E {
	ids := make([]int64, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]E, len(ids))
	for i, id := range ids {
		out[i] = s.items[id]
	}
	return out
}

func (s *memStore[E, C]) FindByCriteria(_ context.Context, c C, page domain.Page) ([]E, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = append(s.criteria, c)
	s.pages = append(s.pages, page)
	if s.findErr != nil {
		return nil, 0, s.findErr
	}
	all := s.sorted()
	if page.Size == 0 {
		return all, int64(len(all)), nil
	}
	start := min(page.Offset(), len(all))
	end := min(start+page.Size, len(all))
	return all[start:end], int64(len(all)), nil
}

func (s *memStore[E, C]) CountByCriteria(_ context.Context, c C) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = append(s.criteria, c)
	return int64(len(s.items)), nil
}

func (s *memStore[E, C]) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memStore[E, C]) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	return ok, nil
}

func (s *memStore[E, C]) lastCriteria() C {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria[len(s.criteria)-1]
}

type jobStore struct {
	*memStore[domain.Job, *criteria.JobCriteria]
	taskCalls [][]int64
	tasks     map[int64][]domain.Task
}

func (s *jobStore) TasksByJobIDs(_ context.Context, ids []int64) (map[int64][]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskCalls = append(s.taskCalls, ids)
	return s.tasks, nil
}

type fixture struct {
	regions      *memStore[domain.Region, *criteria.RegionCriteria]
	departments  *memStore[domain.Department, *criteria.DepartmentCriteria]
	jobs         *jobStore
	jobHistories *memStore[domain.JobHistory, *criteria.JobHistoryCriteria]
	stores       Stores
}

func newFixture() *fixture {
	f := &fixture{
		regions: newMemStore[domain.Region, *criteria.RegionCriteria](
			func(e domain.Region) int64 { return e.ID }, func(e *domain.Region, id int64) { e.ID = id }),
		departments: newMemStore[domain.Department, *criteria.DepartmentCriteria](
			func(e domain.Department) int64 { return e.ID }, func(e *domain.Department, id int64) { e.ID = id }),
		jobs: &jobStore{memStore: newMemStore[domain.Job, *criteria.JobCriteria](
			func(e domain.Job) int64 { return e.ID }, func(e *domain.Job, id int64) { e.ID = id })},
		jobHistories: newMemStore[domain.JobHistory, *criteria.JobHistoryCriteria](
			func(e domain.JobHistory) int64 { return e.ID }, func(e *domain.JobHistory, id int64) { e.ID = id }),
	}
	f.stores = Stores{
		Regions: f.regions,
		Countries: newMemStore[domain.Country, *criteria.CountryCriteria](
			func(e domain.Country) int64 { return e.ID }, func(e *domain.Country, id int64) { e.ID = id }),
		Locations: newMemStore[domain.Location, *criteria.LocationCriteria](
			func(e domain.Location) int64 { return e.ID }, func(e *domain.Location, id int64) { e.ID = id }),
		Departments: f.departments,
		Tasks: newMemStore[domain.Task, *criteria.TaskCriteria](
			func(e domain.Task) int64 { return e.ID }, func(e *domain.Task, id int64) { e.ID = id }),
		Employees: newMemStore[domain.Employee, *criteria.EmployeeCriteria](
			func(e domain.Employee) int64 { return e.ID }, func(e *domain.Employee, id int64) { e.ID = id }),
		Jobs:         f.jobs,
		JobHistories: f.jobHistories,
	}
	return f
}
