package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
	"github.com/vfg2006/inventory-dashboard-api/pkg/utils"
)

const (
	snapshotJobName = "snapshot"
	snapshotTimeout = time.Minute
	snapshotLockTTL = 2 * time.Minute
)

// ErrSyncInProgress indica que já existe um snapshot sendo gerado neste processo
var ErrSyncInProgress = errors.New("geração de snapshot já em andamento")

// DashboardSnapshotSyncConfig representa a configuração do agendador de snapshots
type DashboardSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DashboardSnapshotSyncService calcula periodicamente o resumo do painel e o guarda no cache
type DashboardSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              DashboardSnapshotSyncConfig
	dashboard           dashboarding.Dashboarder
	store               cache.SnapshotStore
	locker              cache.Locker
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSnapshotID      string
	lastError           string
}

func NewDashboardSnapshotSyncService(
	dashboard dashboarding.Dashboarder,
	store cache.SnapshotStore,
	locker cache.Locker,
	cfg config.SnapshotSync,
) *DashboardSnapshotSyncService {
	syncConfig := DashboardSnapshotSyncConfig{
		CronSchedule: cfg.CronSchedule,
		SyncEnabled:  cfg.Enabled,
	}

	log.L.WithFields(log.Fields{
		"job":           snapshotJobName,
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots do painel carregada")

	return &DashboardSnapshotSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		dashboard: dashboard,
		store:     store,
		locker:    locker,
		now:       time.Now,
	}
}

// Start agenda o job; desabilitado por configuração não faz nada
func (s *DashboardSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Snapshots do painel desabilitados por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.runScheduled)
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots do painel: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("job", snapshotJobName).Infof("Agendador de snapshots iniciado (%s)", s.config.CronSchedule)

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de snapshots do painel")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardSnapshotSyncService) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()

	ctx, _ = log.WithCorrelationID(ctx)

	if _, err := s.RunSnapshot(ctx); err != nil {
		if errors.Is(err, ErrSyncInProgress) || errors.Is(err, cache.ErrLockNotObtained) {
			log.ForContext(ctx).WithField("job", snapshotJobName).Info("Snapshot já em andamento, ignorando execução")
			return
		}
		log.ForContext(ctx).WithError(err).Error("Erro ao gerar snapshot do painel")
	}
}

// RunSnapshot gera e grava um snapshot. Execuções sobrepostas retornam ErrSyncInProgress
func (s *DashboardSnapshotSyncService) RunSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return nil, ErrSyncInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	snapshot, err := s.runLocked(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastSnapshotID = snapshot.ID
		s.lastSyncCompletedAt = s.now()
	}
	s.syncMutex.Unlock()

	return snapshot, err
}

func (s *DashboardSnapshotSyncService) runLocked(ctx context.Context) (*domain.DashboardSnapshot, error) {
	release, err := s.locker.Obtain(ctx, snapshotLockTTL)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := release(context.Background()); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao liberar lock do snapshot")
		}
	}()

	snapshot, err := s.buildSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("erro ao gravar snapshot %s: %w", snapshot.ID, err)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"job":         snapshotJobName,
		"snapshot_id": snapshot.ID,
		"period":      snapshot.Summary.CurrentPeriod.Period,
	})
	for _, entry := range snapshot.Summary.CriticalStock.Items {
		logger.WithField("product", entry.ProductName).Warnf("Estoque crítico: %s", entry.Message)
	}
	logger.Info("Snapshot do painel gravado")

	return snapshot, nil
}

func (s *DashboardSnapshotSyncService) buildSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	summary, err := s.dashboard.GetSummary(ctx, domain.DashboardFilters{})
	if err != nil {
		return nil, err
	}

	id, err := utils.GeneratePrefixedID("snap")
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do snapshot: %w", err)
	}

	return &domain.DashboardSnapshot{
		ID:        id,
		Summary:   summary,
		CreatedAt: s.now(),
	}, nil
}

// LatestSnapshot devolve o snapshot em cache. Sem cache, gera um na hora
func (s *DashboardSnapshotSyncService) LatestSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error) {
	snapshot, err := s.store.Latest(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao ler snapshot do cache, recalculando")
	}
	if snapshot != nil {
		return snapshot, nil
	}

	snapshot, err = s.RunSnapshot(ctx)
	if errors.Is(err, ErrSyncInProgress) || errors.Is(err, cache.ErrLockNotObtained) {
		// Outro processo está gravando; responde com um cálculo avulso
		return s.buildSnapshot(ctx)
	}

	return snapshot, err
}

// TriggerManualSync dispara uma geração em background
func (s *DashboardSnapshotSyncService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return ErrSyncInProgress
	}

	log.L.WithField("job", snapshotJobName).Info("Iniciando snapshot manual do painel")
	go s.runScheduled()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_snapshot_id":       s.lastSnapshotID,
		"last_error":             s.lastError,
	}
}
