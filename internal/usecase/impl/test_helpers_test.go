package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"pos/internal/domain/entity"
	"pos/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryUserRepository is an in-memory UserRepository enforcing unique emails
// the way the users table constraint does.
type memoryUserRepository struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*entity.User
	now     func() time.Time
	findErr error
	// hideOnFind makes FindByEmail miss existing rows, simulating a concurrent
	// registration that commits between the check and the insert.
	hideOnFind bool
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byID: make(map[uuid.UUID]*entity.User),
		now:  time.Now,
	}
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.hideOnFind {
		return nil, repository.ErrUserNotFound
	}

	for _, user := range r.byID {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	now := r.now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	clone := *user
	r.byID[user.ID] = &clone

	return nil
}

func (r *memoryUserRepository) setActive(id uuid.UUID, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		user.IsActive = active
	}
}

func (r *memoryUserRepository) delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
}

func (r *memoryUserRepository) stored(email string) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byID {
		if user.Email == email {
			return user
		}
	}

	return nil
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
