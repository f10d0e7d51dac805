package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

type memoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	now      func() time.Time
	snapshot *domain.DashboardSnapshot
	savedAt  time.Time
}

// NewMemoryStore cria um store em memória; ttl <= 0 mantém o snapshot indefinidamente
func NewMemoryStore(ttl time.Duration) SnapshotStore {
	return &memoryStore{ttl: ttl, now: time.Now}
}

func (s *memoryStore) Save(_ context.Context, snapshot *domain.DashboardSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.savedAt = s.now()
	return nil
}

func (s *memoryStore) Latest(_ context.Context) (*domain.DashboardSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, nil
	}
	if s.ttl > 0 && s.now().Sub(s.savedAt) > s.ttl {
		return nil, nil
	}
	return s.snapshot, nil
}

type memoryLocker struct {
	mu     sync.Mutex
	locked bool
}

// NewMemoryLocker cria um lock local ao processo
func NewMemoryLocker() Locker {
	return &memoryLocker{}
}

func (l *memoryLocker) Obtain(_ context.Context, _ time.Duration) (func(context.Context) error, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.locked {
		return nil, ErrLockNotObtained
	}
	l.locked = true

	return func(context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.locked = false
		return nil
	}, nil
}
