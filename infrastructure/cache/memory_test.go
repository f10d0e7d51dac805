package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.August, 4, 10, 0, 0, 0, time.UTC)

	store := NewMemoryStore(time.Hour).(*memoryStore)
	store.now = func() time.Time { return now }

	latest, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	snapshot := &domain.DashboardSnapshot{ID: "snap_abc", CreatedAt: now}
	require.NoError(t, store.Save(ctx, snapshot))

	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "snap_abc", latest.ID)

	now = now.Add(2 * time.Hour)
	latest, err = store.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest, "snapshot expirado não deve ser retornado")
}

func TestMemoryLocker(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	release, err := locker.Obtain(ctx, time.Minute)
	require.NoError(t, err)

	_, err = locker.Obtain(ctx, time.Minute)
	assert.ErrorIs(t, err, ErrLockNotObtained)

	require.NoError(t, release(ctx))

	release, err = locker.Obtain(ctx, time.Minute)
	require.NoError(t, err)
	require.NoError(t, release(ctx))
}
