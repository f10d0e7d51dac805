package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceFixture  = "fixture"
	DataSourcePostgres = "postgres"

	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	DataSource   DataSource   `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Cache        Cache        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// DataSource define de onde vêm estoque, remessas e vendas
type DataSource struct {
	Driver string `mapstructure:"data_source"` // fixture ou postgres
}

type Auth struct {
	SecretKey    string        `mapstructure:"secret_key"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
	SeedPassword string        `mapstructure:"seed_user_password"`
}

type Dashboard struct {
	CurrentPeriod string `mapstructure:"dashboard_current_period"`
	TopProducts   int    `mapstructure:"dashboard_top_products"`
	Currency      string `mapstructure:"dashboard_currency"`
}

type SnapshotSync struct {
	CronSchedule string `mapstructure:"snapshot_sync_cron"`
	Enabled      bool   `mapstructure:"snapshot_sync_enabled"`
}

type Cache struct {
	Driver        string        `mapstructure:"cache_driver"` // memory ou redis
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	SnapshotTTL   time.Duration `mapstructure:"snapshot_ttl"`
}

func SetDefaults() {
	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "debug")
	v.SetDefault("APP_ENV", "development")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/inventory?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("DATA_SOURCE", DataSourceFixture) // Dados fixos em memória

	v.SetDefault("SECRET_KEY", "your_secret_key")
	v.SetDefault("AUTH_TOKEN_TTL", "24h")
	v.SetDefault("SEED_USER_PASSWORD", "Donezo@2025")

	v.SetDefault("DASHBOARD_CURRENT_PERIOD", "Июль 2025")
	v.SetDefault("DASHBOARD_TOP_PRODUCTS", 5)
	v.SetDefault("DASHBOARD_CURRENCY", "KZT")

	v.SetDefault("SNAPSHOT_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	v.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	v.SetDefault("CACHE_DRIVER", CacheDriverMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("SNAPSHOT_TTL", "1h")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return load(viper.GetViper())
}

// load decodifica a configuração de uma instância do viper já preparada
func load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	switch c.DataSource.Driver {
	case DataSourceFixture, DataSourcePostgres:
	default:
		return fmt.Errorf("DATA_SOURCE inválido: %q (use %s ou %s)", c.DataSource.Driver, DataSourceFixture, DataSourcePostgres)
	}

	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("CACHE_DRIVER inválido: %q (use %s ou %s)", c.Cache.Driver, CacheDriverMemory, CacheDriverRedis)
	}

	if c.Dashboard.TopProducts <= 0 {
		return fmt.Errorf("DASHBOARD_TOP_PRODUCTS deve ser maior que zero")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
