// Package cache guarda o último snapshot calculado do painel
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

const (
	latestSnapshotKey = "dashboard:snapshot:latest"
	snapshotLockKey   = "lock:dashboard:snapshot"
)

// ErrLockNotObtained indica que outra instância já está calculando o snapshot
var ErrLockNotObtained = errors.New("lock do snapshot já está em uso")

//go:generate mockgen -source=cache.go -destination=mocks/cache.go -package=mocks
type SnapshotStore interface {
	Save(ctx context.Context, snapshot *domain.DashboardSnapshot) error
	// Latest retorna nil, nil quando não há snapshot válido
	Latest(ctx context.Context) (*domain.DashboardSnapshot, error)
}

// Locker serializa a geração de snapshots entre instâncias
type Locker interface {
	Obtain(ctx context.Context, ttl time.Duration) (release func(context.Context) error, err error)
}
