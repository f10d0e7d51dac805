package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

const (
	inTransitShipmentsTable = "in_transit_shipments"
)

//go:generate mockgen -source=shipment.go -destination=mocks/shipment.go -package=mocks
type ShipmentRepository interface {
	ListInTransit(ctx context.Context) ([]*domain.InTransitShipment, error)
}

type shipmentRepository struct {
	conn postgres.Queryer
}

func NewShipmentRepository(conn postgres.Queryer) ShipmentRepository {
	return &shipmentRepository{
		conn: conn,
	}
}

func (r *shipmentRepository) ListInTransit(ctx context.Context) ([]*domain.InTransitShipment, error) {
	queryBuilder := squirrel.
		Select("id", "product_name", "quantity", "expected_arrival", "supplier", "cost_per_item", "status").
		From(inTransitShipmentsTable).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query de remessas: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar remessas em trânsito: %w", err)
	}
	defer rows.Close()

	shipments := make([]*domain.InTransitShipment, 0)
	for rows.Next() {
		var (
			shipment domain.InTransitShipment
			status   string
		)
		if err := rows.Scan(
			&shipment.ID,
			&shipment.ProductName,
			&shipment.Quantity,
			&shipment.ExpectedArrival,
			&shipment.Supplier,
			&shipment.CostPerItem,
			&status,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler remessa: %w", err)
		}
		shipment.Status = domain.ShipmentStatus(status)
		shipments = append(shipments, &shipment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar remessas: %w", err)
	}

	return shipments, nil
}
