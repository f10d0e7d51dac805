package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var roles = []struct {
	ID   int
	Name string
}{
	{1, "Директор"},
	{2, "Менеджер"},
	{3, "Упаковщик"},
	{4, "Курьер"},
}

type seeder struct {
	db       postgres.Queryer
	password string
}

func newSeeder(db postgres.Queryer, password string) *seeder {
	return &seeder{db: db, password: password}
}

// Run cria o schema e insere os dados fixos. Linhas já existentes são mantidas
func (s *seeder) Run(ctx context.Context, reset bool) error {
	if reset {
		logrus.Warn("Removendo tabelas existentes")
		if _, err := s.db.ExecContext(ctx, postgres.DropSchema); err != nil {
			return fmt.Errorf("erro ao remover schema: %w", err)
		}
	}

	if _, err := s.db.ExecContext(ctx, postgres.Schema); err != nil {
		return fmt.Errorf("erro ao criar schema: %w", err)
	}

	steps := []struct {
		name string
		fn   func(context.Context) (int, error)
	}{
		{"roles", s.insertRoles},
		{"users", s.insertUsers},
		{"stock_items", s.insertStockItems},
		{"in_transit_shipments", s.insertShipments},
		{"sales_points", s.insertSalesPoints},
	}

	for _, step := range steps {
		startTime := time.Now()
		count, err := step.fn(ctx)
		if err != nil {
			return fmt.Errorf("erro ao inserir %s: %w", step.name, err)
		}
		logrus.WithFields(logrus.Fields{
			"table": step.name,
			"rows":  count,
		}).Infof("Inserção concluída em %v", time.Since(startTime))
	}

	return nil
}

func (s *seeder) exec(ctx context.Context, builder squirrel.Sqlizer) error {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = s.db.ExecContext(ctx, sqlQuery, args...)
	return err
}

func (s *seeder) insertRoles(ctx context.Context) (int, error) {
	builder := squirrel.Insert("roles").
		Columns("id", "name").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, role := range roles {
		builder = builder.Values(role.ID, role.Name)
	}

	return len(roles), s.exec(ctx, builder)
}

func (s *seeder) insertUsers(ctx context.Context) (int, error) {
	if s.password == "" {
		return 0, fmt.Errorf("senha dos usuários não informada")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("erro ao gerar hash da senha: %w", err)
	}

	users := fixture.Users()
	builder := squirrel.Insert("users").
		Columns("id", "name", "lastname", "email", "password_hash", "active", "role_id", "created_at", "updated_at").
		Suffix("ON CONFLICT (email) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, user := range users {
		builder = builder.Values(user.ID, user.Name, user.Lastname, user.Email, string(hash), user.Active, user.RoleID, user.CreatedAt, user.UpdatedAt)
	}

	if err := s.exec(ctx, builder); err != nil {
		return 0, err
	}

	// IDs explícitos não avançam a sequence do SERIAL
	_, err = s.db.ExecContext(ctx, `SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`)
	return len(users), err
}

func (s *seeder) insertStockItems(ctx context.Context) (int, error) {
	items := fixture.StockItems()
	builder := squirrel.Insert("stock_items").
		Columns("id", "position", "product_name", "quantity", "cost_price", "selling_price", "critical_stock").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for i, item := range items {
		builder = builder.Values(item.ID, i+1, item.ProductName, item.Quantity, item.CostPrice, item.SellingPrice, item.CriticalStock)
	}

	return len(items), s.exec(ctx, builder)
}

func (s *seeder) insertShipments(ctx context.Context) (int, error) {
	shipments := fixture.InTransitShipments()
	builder := squirrel.Insert("in_transit_shipments").
		Columns("id", "position", "product_name", "quantity", "expected_arrival", "supplier", "cost_per_item", "status").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for i, shipment := range shipments {
		builder = builder.Values(shipment.ID, i+1, shipment.ProductName, shipment.Quantity, shipment.ExpectedArrival, shipment.Supplier, shipment.CostPerItem, string(shipment.Status))
	}

	return len(shipments), s.exec(ctx, builder)
}

func (s *seeder) insertSalesPoints(ctx context.Context) (int, error) {
	builder := squirrel.Insert("sales_points").
		Columns("id", "granularity", "position", "period", "revenue", "profit").
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	count := 0
	for _, granularity := range []domain.SalesGranularity{domain.SalesGranularityMonthly, domain.SalesGranularityWeekly} {
		for i, point := range fixture.SalesPoints(granularity) {
			// ID estável para que a carga possa ser repetida sem duplicar linhas
			id := fmt.Sprintf("%s-%02d", granularity, i+1)
			builder = builder.Values(id, string(granularity), i+1, point.Period, point.Revenue, point.Profit)
			count++
		}
	}

	return count, s.exec(ctx, builder)
}
