package handlers

import (
	"context"
	"sort"
	"time"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// In-memory stores backing the handler tests.

type fakeTaskStore struct {
	nextID int64
	tasks  map[int64]*domain.Task
}

func newFakeTaskStore() *fakeTaskStore {
	return &fakeTaskStore{tasks: make(map[int64]*domain.Task)}
}

func (s *fakeTaskStore) List(_ context.Context, userID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	ids := make([]int64, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	res := []*domain.Task{}
	for _, id := range ids {
		t := s.tasks[id]
		if t.UserID != userID {
			continue
		}
		if filter == domain.FilterPending && t.Completed {
			continue
		}
		if filter == domain.FilterCompleted && !t.Completed {
			continue
		}
		cp := *t
		res = append(res, &cp)
	}
	return res, nil
}

func (s *fakeTaskStore) Create(_ context.Context, t *domain.Task) error {
	s.nextID++
	t.ID = s.nextID
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) GetByOwner(_ context.Context, id int64, userID string) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	cp := *t
	return &cp, nil
}

func (s *fakeTaskStore) Update(_ context.Context, t *domain.Task) error {
	existing, ok := s.tasks[t.ID]
	if !ok || existing.UserID != t.UserID {
		return repository.ErrTaskNotFound
	}
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s *fakeTaskStore) Delete(_ context.Context, id int64, userID string) error {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return repository.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *fakeTaskStore) ToggleCompleted(_ context.Context, id int64, userID string, now time.Time) (*domain.Task, error) {
	t, ok := s.tasks[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	t.Completed = !t.Completed
	t.UpdatedAt = now
	cp := *t
	return &cp, nil
}

type fakeUserStore struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return repository.ErrEmailTaken
	}
	cp := *u
	s.byID[u.ID] = &cp
	s.byEmail[u.Email] = &cp
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}
