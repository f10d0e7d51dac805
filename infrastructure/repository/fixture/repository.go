package fixture

import (
	"context"

	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

type stockItemRepository struct{}

func NewStockItemRepository() repository.StockItemRepository {
	return stockItemRepository{}
}

func (stockItemRepository) ListStockItems(ctx context.Context) ([]*domain.StockItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return StockItems(), nil
}

type shipmentRepository struct{}

func NewShipmentRepository() repository.ShipmentRepository {
	return shipmentRepository{}
}

func (shipmentRepository) ListInTransit(ctx context.Context) ([]*domain.InTransitShipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return InTransitShipments(), nil
}

type salesRepository struct{}

func NewSalesRepository() repository.SalesRepository {
	return salesRepository{}
}

func (salesRepository) ListSalesPoints(ctx context.Context, granularity domain.SalesGranularity) ([]*domain.SalesPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SalesPoints(granularity), nil
}
