package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

const (
	salesPointsTable = "sales_points"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks
type SalesRepository interface {
	ListSalesPoints(ctx context.Context, granularity domain.SalesGranularity) ([]*domain.SalesPoint, error)
}

type salesRepository struct {
	conn postgres.Queryer
}

func NewSalesRepository(conn postgres.Queryer) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// ListSalesPoints retorna a série na ordem cronológica de cadastro
func (r *salesRepository) ListSalesPoints(ctx context.Context, granularity domain.SalesGranularity) ([]*domain.SalesPoint, error) {
	queryBuilder := squirrel.
		Select("period", "revenue", "profit").
		From(salesPointsTable).
		Where(squirrel.Eq{"granularity": string(granularity)}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de vendas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas %s: %w", granularity, err)
	}
	defer rows.Close()

	points := make([]*domain.SalesPoint, 0)
	for rows.Next() {
		var point domain.SalesPoint
		if err := rows.Scan(&point.Period, &point.Revenue, &point.Profit); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		points = append(points, &point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	return points, nil
}
