// Package inmemory implements the domain repositories over plain maps. It
// backs service and router tests that need the full stack without a database.
package inmemory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"taskflow-api/internal/domain"
)

type UserStore struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]domain.User)}
}

func (s *UserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return errDuplicate
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *UserStore) List(_ context.Context, offset, limit int, sortBy, sortOrder string) ([]domain.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		less := all[i].CreatedAt.Before(all[j].CreatedAt)
		if sortBy == "name" {
			less = all[i].Name < all[j].Name
		}
		if sortBy == "email" {
			less = all[i].Email < all[j].Email
		}
		if strings.EqualFold(sortOrder, "DESC") {
			return !less
		}
		return less
	})
	return page(all, offset, limit), int64(len(all)), nil
}

func (s *UserStore) Search(_ context.Context, q domain.UserSearch) ([]domain.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.User
	for _, u := range s.users {
		if q.Query == "" || strings.Contains(u.Email, q.Query) || strings.Contains(u.Name, q.Query) {
			out = append(out, u)
		}
	}
	return page(out, q.Offset, q.Limit), int64(len(out)), nil
}

func (s *UserStore) Update(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, existing := range s.users {
		if id != u.ID && existing.Email == u.Email {
			return errDuplicate
		}
	}
	u.UpdatedAt = time.Now()
	s.users[u.ID] = *u
	return nil
}

func (s *UserStore) SoftDelete(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

type TaskStore struct {
	mu    sync.Mutex
	tasks map[string]domain.Task
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[string]domain.Task)}
}

// Seed inserts a task without touching its timestamps.
func (s *TaskStore) Seed(t domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = t
}

func (s *TaskStore) Create(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}
	s.tasks[t.ID] = *t
	return nil
}

func (s *TaskStore) FindByID(_ context.Context, id, ownerID string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok && t.UserID == ownerID {
		return &t, nil
	}
	return nil, nil
}

func (s *TaskStore) ListByOwner(_ context.Context, ownerID string, offset, limit int, sortBy, sortOrder string) ([]domain.Task, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var owned []domain.Task
	for _, t := range s.tasks {
		if t.UserID == ownerID {
			owned = append(owned, t)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		less := owned[i].CreatedAt.Before(owned[j].CreatedAt)
		if sortBy == "title" {
			less = owned[i].Title < owned[j].Title
		}
		if strings.EqualFold(sortOrder, "DESC") {
			return !less
		}
		return less
	})
	return page(owned, offset, limit), int64(len(owned)), nil
}

func (s *TaskStore) Update(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.UpdatedAt = time.Now()
	s.tasks[t.ID] = *t
	return nil
}

func (s *TaskStore) Delete(_ context.Context, id, ownerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok && t.UserID == ownerID {
		delete(s.tasks, id)
		return 1, nil
	}
	return 0, nil
}

func (s *TaskStore) CreatedBetween(_ context.Context, ownerID string, start, end time.Time) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Task
	for _, t := range s.tasks {
		if t.UserID != ownerID {
			continue
		}
		if t.CreatedAt.Before(start) || t.CreatedAt.After(end) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *TaskStore) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.tasks {
		if t.UserID == ownerID {
			n++
		}
	}
	return n, nil
}

func (s *TaskStore) CountByOwnerAndStatus(_ context.Context, ownerID, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.tasks {
		if t.UserID == ownerID && t.Status == status {
			n++
		}
	}
	return n, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

type dupError struct{}

func (dupError) Error() string { return "duplicate key value violates unique constraint" }

var errDuplicate = dupError{}
