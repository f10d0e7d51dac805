// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

const (
	stockItemsTable = "stock_items"
)

//go:generate mockgen -source=stock_item.go -destination=mocks/stock_item.go -package=mocks
type StockItemRepository interface {
	ListStockItems(ctx context.Context) ([]*domain.StockItem, error)
}

type stockItemRepository struct {
	conn postgres.Queryer
}

func NewStockItemRepository(conn postgres.Queryer) StockItemRepository {
	return &stockItemRepository{
		conn: conn,
	}
}

// ListStockItems retorna o estoque na ordem de cadastro
func (r *stockItemRepository) ListStockItems(ctx context.Context) ([]*domain.StockItem, error) {
	queryBuilder := squirrel.
		Select("id", "product_name", "quantity", "cost_price", "selling_price", "critical_stock").
		From(stockItemsTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de estoque: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.StockItem, 0)
	for rows.Next() {
		var item domain.StockItem
		if err := rows.Scan(
			&item.ID,
			&item.ProductName,
			&item.Quantity,
			&item.CostPrice,
			&item.SellingPrice,
			&item.CriticalStock,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler item de estoque: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar estoque: %w", err)
	}

	return items, nil
}
