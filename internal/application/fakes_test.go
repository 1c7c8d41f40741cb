package application_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cnic-auth/backend/internal/domain/entity"
	"github.com/cnic-auth/backend/internal/domain/repository"
)

// In-memory fakes backing the service tests.

type memoryUserRepo struct {
	mu     sync.Mutex
	users  []entity.User
	nextID int64
}

func (m *memoryUserRepo) Create(u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.Email == u.Email || e.CNIC == u.CNIC {
			return repository.ErrDuplicateUser
		}
	}
	m.nextID++
	u.ID = m.nextID
	u.UserID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users = append(m.users, *u)
	return nil
}

func (m *memoryUserRepo) GetByCNIC(cnic string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.CNIC == cnic {
			u := e
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepo) GetByID(userID string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.users {
		if e.UserID == userID {
			u := e
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memoryUserRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type memoryBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newMemoryBlacklist() *memoryBlacklist {
	return &memoryBlacklist{revoked: make(map[string]time.Time)}
}

func (b *memoryBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (b *memoryBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[jti]
	return ok && time.Now().Before(exp), nil
}

// brokenBlacklist simulates a revocation-store outage.
type brokenBlacklist struct{}

var errBlacklistDown = errors.New("blacklist down")

func (brokenBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	return errBlacklistDown
}

func (brokenBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	return false, nil
}
