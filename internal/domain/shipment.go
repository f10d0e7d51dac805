package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShipmentStatus string

// Conjunto aberto: o fornecedor pode informar outros status
const (
	ShipmentStatusInTransit ShipmentStatus = "In Transit"
	ShipmentStatusCustoms   ShipmentStatus = "Customs"
)

// InTransitShipment representa uma remessa a caminho do armazém
type InTransitShipment struct {
	ID              string          `json:"id"`
	ProductName     string          `json:"product_name"`
	Quantity        int             `json:"quantity"`
	ExpectedArrival time.Time       `json:"expected_arrival"`
	Supplier        string          `json:"supplier"`
	CostPerItem     decimal.Decimal `json:"cost_per_item"`
	Status          ShipmentStatus  `json:"status"`
}

func (s *InTransitShipment) TotalCost() decimal.Decimal {
	return s.CostPerItem.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// InTransitSummary agrega as remessas em trânsito
type InTransitSummary struct {
	Count         int                  `json:"count"`
	TotalQuantity int                  `json:"total_quantity"`
	TotalCost     decimal.Decimal      `json:"total_cost"`
	Shipments     []*InTransitShipment `json:"shipments"`
}
