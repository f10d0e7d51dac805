// Package fixture fornece os dados fixos do painel e repositórios em memória sobre eles.
// Cada função devolve uma cópia nova, então quem chama pode alterar o resultado à vontade
package fixture

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

const defaultCriticalStock = 5

func StockItems() []*domain.StockItem {
	return []*domain.StockItem{
		stockItem("prod1", "Стул Luxstone", 41, "9000", "30554.88"),
		stockItem("prod2", "Парта Luma", 25, "26000", "55000"),
		stockItem("prod3", "Проектор Lumi 1000", 13, "80000", "198000"),
		stockItem("prod4", "Пианино Lapiano", 7, "135000", "256842.86"),
		stockItem("prod5", "Кровать Twin", 8, "77000", "180000"),
		stockItem("prod6", "Набор Luma", 4, "70000", "99000"),
		stockItem("prod7", "Стул Luxstone 06", 11, "16000", "61818.18"),
	}
}

func InTransitShipments() []*domain.InTransitShipment {
	return []*domain.InTransitShipment{
		shipment("transit1", "Lumi1000", 100, date(2024, time.August, 20), "Shenzhen Lanbian Technology", "78000", domain.ShipmentStatusInTransit),
		shipment("transit2", "Пианино Leni", 20, date(2024, time.September, 5), "Quanzhou Xionghai Electronic Technology", "120000", domain.ShipmentStatusCustoms),
		shipment("transit3", "Экран проектор", 50, date(2024, time.September, 15), "Shenzhen Future Information Technology", "15000", domain.ShipmentStatusInTransit),
		shipment("transit4", "Десткие кресла", 30, date(2024, time.August, 25), "Xinxiang Linshan Trading", "20000", domain.ShipmentStatusInTransit),
	}
}

func MonthlySales() []*domain.SalesPoint {
	return []*domain.SalesPoint{
		salesPoint("Июнь 2025", "5092300", "890508.99"),
		salesPoint("Июль 2025", "6494350", "1914122.5"),
	}
}

func WeeklySales() []*domain.SalesPoint {
	return []*domain.SalesPoint{
		salesPoint("Июл 29", "150000", "30000"),
		salesPoint("Июл 30", "200000", "45000"),
		salesPoint("Июл 31", "180000", "35000"),
		salesPoint("Авг 01", "250000", "60000"),
		salesPoint("Авг 02", "190000", "40000"),
		salesPoint("Авг 03", "300000", "75000"),
		salesPoint("Авг 04", "220000", "50000"),
	}
}

// SalesPoints devolve a série da granularidade pedida; granularidade desconhecida gera série vazia
func SalesPoints(granularity domain.SalesGranularity) []*domain.SalesPoint {
	switch granularity {
	case domain.SalesGranularityMonthly:
		return MonthlySales()
	case domain.SalesGranularityWeekly:
		return WeeklySales()
	default:
		return []*domain.SalesPoint{}
	}
}

func stockItem(id, name string, quantity int, cost, selling string) *domain.StockItem {
	return &domain.StockItem{
		ID:            id,
		ProductName:   name,
		Quantity:      quantity,
		CostPrice:     decimal.RequireFromString(cost),
		SellingPrice:  decimal.RequireFromString(selling),
		CriticalStock: defaultCriticalStock,
	}
}

func shipment(id, name string, quantity int, arrival time.Time, supplier, cost string, status domain.ShipmentStatus) *domain.InTransitShipment {
	return &domain.InTransitShipment{
		ID:              id,
		ProductName:     name,
		Quantity:        quantity,
		ExpectedArrival: arrival,
		Supplier:        supplier,
		CostPerItem:     decimal.RequireFromString(cost),
		Status:          status,
	}
}

func salesPoint(period, revenue, profit string) *domain.SalesPoint {
	return &domain.SalesPoint{
		Period:  period,
		Revenue: decimal.RequireFromString(revenue),
		Profit:  decimal.RequireFromString(profit),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
