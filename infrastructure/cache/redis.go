package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewRedisClient conecta ao Redis e valida a conexão com um PING
func NewRedisClient(ctx context.Context, cfg config.Cache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("erro ao conectar ao Redis em %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

type redisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) SnapshotStore {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Save(ctx context.Context, snapshot *domain.DashboardSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("erro ao serializar snapshot: %w", err)
	}

	if err := s.client.Set(ctx, latestSnapshotKey, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar snapshot no Redis: %w", err)
	}

	return nil
}

func (s *redisStore) Latest(ctx context.Context) (*domain.DashboardSnapshot, error) {
	payload, err := s.client.Get(ctx, latestSnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler snapshot do Redis: %w", err)
	}

	var snapshot domain.DashboardSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("erro ao decodificar snapshot: %w", err)
	}

	return &snapshot, nil
}

type redisLocker struct {
	client *redislock.Client
}

// NewRedisLocker usa redislock para que só uma instância gere o snapshot por vez
func NewRedisLocker(client redis.UniversalClient) Locker {
	return &redisLocker{client: redislock.New(client)}
}

func (l *redisLocker) Obtain(ctx context.Context, ttl time.Duration) (func(context.Context) error, error) {
	lock, err := l.client.Obtain(ctx, snapshotLockKey, ttl, nil)
	if err == redislock.ErrNotObtained {
		return nil, ErrLockNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao obter lock do snapshot: %w", err)
	}

	return lock.Release, nil
}
