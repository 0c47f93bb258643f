package store

import (
	"context"
	"sort"
	"sync"

	"roster/models"
)

// MemoryStore is a mutex-guarded in-memory UserStore with the same uniqueness
// and ordering semantics as PostgresStore. Used by tests and local tooling.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		users:  make(map[int64]models.User),
	}
}

func (s *MemoryStore) Create(ctx context.Context, user *models.User) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return 0, ErrUsernameTaken
		}
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return 0, ErrEmailTaken
		}
	}

	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return user.ID, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	for id, existing := range s.users {
		if id == user.ID {
			continue
		}
		if existing.Username == user.Username {
			return ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}

	current.FullName = user.FullName
	current.Age = user.Age
	current.Location = user.Location
	current.Username = user.Username
	current.Email = user.Email
	s.users[user.ID] = current
	return nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].DateAdded.Equal(users[j].DateAdded) {
			return users[i].DateAdded.Before(users[j].DateAdded)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}
