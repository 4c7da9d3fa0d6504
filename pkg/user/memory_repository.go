package user

import (
	"context"
	"sync"
	"time"

	"snackstock-api/entities"

	"gorm.io/gorm"
)

// memoryUserRepository is the in-memory adapter behind UserRepository,
// interchangeable with the postgres one (DB_DRIVER: memory) and used by the
// package tests.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	copied := *user
	r.users[user.ID.String()] = &copied
	return nil
}

func (r *memoryUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.users[user.ID.String()]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.UpdatedAt = time.Now()
	// Counters are owned by IncrementCounter; a full-row save must not
	// clobber increments that raced in between.
	user.TotalProductsAdded = stored.TotalProductsAdded
	user.TotalProductsConsumed = stored.TotalProductsConsumed
	user.TotalProductsWasted = stored.TotalProductsWasted
	copied := *user
	r.users[user.ID.String()] = &copied
	return nil
}

func (r *memoryUserRepository) IncrementCounter(_ context.Context, userID string, counter string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	switch counter {
	case CounterProductsAdded:
		user.TotalProductsAdded++
	case CounterProductsConsumed:
		user.TotalProductsConsumed++
	case CounterProductsWasted:
		user.TotalProductsWasted++
	}
	return nil
}
