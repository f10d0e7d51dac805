package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/cache"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/internal/api"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

// repositories agrupa as fontes de dados escolhidas pela configuração
type repositories struct {
	stock     repository.StockItemRepository
	shipments repository.ShipmentRepository
	sales     repository.SalesRepository
	users     repository.UserRepository
}

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	// Valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, closeRepos := newRepositories(ctx, cfg)
	defer closeRepos()

	store, locker, closeCache := newSnapshotCache(ctx, cfg.Cache)
	defer closeCache()

	authenticator := authenticating.NewService(repos.users, cfg.Auth)
	dashboard := dashboarding.NewService(repos.stock, repos.shipments, repos.sales, cfg.Dashboard)
	reporter := reporting.NewService(dashboard)

	snapshotSyncService := scheduler.NewDashboardSnapshotSyncService(dashboard, store, locker, cfg.SnapshotSync)
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do painel")
	} else {
		logrus.Info("Agendador de snapshots do painel iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboard, reporter, authenticator, snapshotSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource permite encontrar o .env ao rodar com go run de qualquer diretório
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	if err := os.Chdir(path.Dir(file)); err != nil {
		logrus.WithError(err).Debug("Não foi possível mudar para o diretório do binário")
	}
}

func newRepositories(ctx context.Context, cfg *config.Config) (repositories, func()) {
	switch cfg.DataSource.Driver {
	case config.DataSourcePostgres:
		conn := pgconn(ctx, cfg.Database)
		logrus.Info("Fonte de dados: PostgreSQL")

		return repositories{
			stock:     repository.NewStockItemRepository(conn),
			shipments: repository.NewShipmentRepository(conn),
			sales:     repository.NewSalesRepository(conn),
			users:     repository.NewUserRepository(conn),
		}, func() { conn.Close() }

	default:
		users, err := fixture.NewUserRepository(cfg.Auth.SeedPassword)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao criar usuários padrão")
		}
		logrus.Info("Fonte de dados: dados fixos em memória")

		return repositories{
			stock:     fixture.NewStockItemRepository(),
			shipments: fixture.NewShipmentRepository(),
			sales:     fixture.NewSalesRepository(),
			users:     users,
		}, func() {}
	}
}

func newSnapshotCache(ctx context.Context, cfg config.Cache) (cache.SnapshotStore, cache.Locker, func()) {
	if cfg.Driver != config.CacheDriverRedis {
		logrus.Info("Cache de snapshots: memória")
		return cache.NewMemoryStore(cfg.SnapshotTTL), cache.NewMemoryLocker(), func() {}
	}

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
	}
	logrus.WithField("address", cfg.RedisAddr).Info("Cache de snapshots: Redis")

	return cache.NewRedisStore(client, cfg.SnapshotTTL), cache.NewRedisLocker(client), func() {
		if err := client.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com Redis")
		}
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
