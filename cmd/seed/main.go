package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

var (
	dsn      string
	reset    bool
	password string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Cria o schema do painel e carrega os dados fixos no PostgreSQL",
	Long: `Cria as tabelas lidas pela fonte de dados postgres e insere o mesmo
conjunto de estoque, remessas, vendas e usuários da fonte fixture, para que as
duas fontes produzam os mesmos indicadores.`,
	SilenceUsage: true,
	RunE:         runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&dsn, "dsn", "", "String de conexão PostgreSQL (padrão: DATABASE_URL da configuração)")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "Remove as tabelas antes de criar")
	rootCmd.Flags().StringVar(&password, "password", "", "Senha dos usuários semeados (padrão: SEED_USER_PASSWORD)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Tempo máximo da operação")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log.Setup(cfg.App.LogLevel)

	if dsn != "" {
		cfg.Database.DSN = dsn
	}
	if password == "" {
		password = cfg.Auth.SeedPassword
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	defer conn.Close()

	startTime := time.Now()
	logrus.WithField("reset", reset).Info("Iniciando carga dos dados do painel")

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return newSeeder(tx, password).Run(ctx, reset)
	})
	if err != nil {
		logrus.WithError(err).Error("Carga interrompida, transação desfeita")
		return err
	}

	logrus.Infof("Carga concluída em %v", time.Since(startTime))
	return nil
}
