package dashboarding

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/utils"
)

// DefaultTopProducts é o tamanho do ranking quando nenhum limite válido é informado
const DefaultTopProducts = 5

// TotalStockValue soma quantidade × preço de custo de todos os itens
func TotalStockValue(items []*domain.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item == nil {
			continue
		}
		total = total.Add(item.StockValue())
	}
	return total
}

// PotentialStockRevenue soma quantidade × preço de venda de todos os itens
func PotentialStockRevenue(items []*domain.StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item == nil {
			continue
		}
		total = total.Add(item.PotentialRevenue())
	}
	return total
}

// CriticalStockItems filtra, na ordem de entrada, os itens abaixo do limite crítico
func CriticalStockItems(items []*domain.StockItem) []*domain.StockItem {
	critical := make([]*domain.StockItem, 0)
	for _, item := range items {
		if item != nil && item.IsCritical() {
			critical = append(critical, item)
		}
	}
	return critical
}

func CriticalStockCount(items []*domain.StockItem) int {
	return len(CriticalStockItems(items))
}

// BuildCriticalStockAlert monta a lista de alertas exibida abaixo dos gráficos
func BuildCriticalStockAlert(items []*domain.StockItem) domain.CriticalStockAlert {
	critical := CriticalStockItems(items)

	entries := make([]domain.CriticalStockEntry, 0, len(critical))
	for _, item := range critical {
		entries = append(entries, domain.CriticalStockEntry{
			ID:            item.ID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			CriticalStock: item.CriticalStock,
			Message:       fmt.Sprintf("%s: %d шт. (критический: %d шт.)", item.ProductName, item.Quantity, item.CriticalStock),
		})
	}

	return domain.CriticalStockAlert{Count: len(entries), Items: entries}
}

// TopByQuantity ordena por quantidade em estoque (decrescente) e trunca em n.
// Empates mantêm a ordem de entrada. n <= 0 usa DefaultTopProducts
func TopByQuantity(items []*domain.StockItem, n int) []domain.TopProduct {
	if n <= 0 {
		n = DefaultTopProducts
	}

	sorted := make([]*domain.StockItem, 0, len(items))
	for _, item := range items {
		if item != nil {
			sorted = append(sorted, item)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}

	top := make([]domain.TopProduct, 0, len(sorted))
	for i, item := range sorted {
		top = append(top, domain.TopProduct{
			Rank:        i + 1,
			ID:          item.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}
	return top
}

// FindPeriodSales busca o período pelo rótulo exato. Sem correspondência, receita e lucro são zero
func FindPeriodSales(points []*domain.SalesPoint, label string) domain.PeriodSales {
	for _, point := range points {
		if point != nil && point.Period == label {
			return domain.PeriodSales{
				Period:  point.Period,
				Revenue: point.Revenue,
				Profit:  point.Profit,
				Found:   true,
			}
		}
	}

	return domain.PeriodSales{
		Period:  label,
		Revenue: decimal.Zero,
		Profit:  decimal.Zero,
	}
}

// MonthOverMonth compara o período com a linha imediatamente anterior da série.
// Retorna nil se o período não existe; sem linha anterior a tendência é flat com variação zero
func MonthOverMonth(points []*domain.SalesPoint, label string) *domain.SalesTrend {
	idx := -1
	for i, point := range points {
		if point != nil && point.Period == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	trend := &domain.SalesTrend{
		Period:               label,
		RevenueChange:        decimal.Zero,
		RevenueChangePercent: decimal.Zero,
		ProfitChange:         decimal.Zero,
		Direction:            domain.TrendFlat,
	}

	var previous *domain.SalesPoint
	for i := idx - 1; i >= 0; i-- {
		if points[i] != nil {
			previous = points[i]
			break
		}
	}
	if previous == nil {
		return trend
	}

	current := points[idx]
	trend.PreviousPeriod = previous.Period
	trend.RevenueChange = current.Revenue.Sub(previous.Revenue)
	trend.RevenueChangePercent = utils.PercentChange(current.Revenue, previous.Revenue)
	trend.ProfitChange = current.Profit.Sub(previous.Profit)

	switch trend.RevenueChange.Sign() {
	case 1:
		trend.Direction = domain.TrendUp
	case -1:
		trend.Direction = domain.TrendDown
	}

	return trend
}

// SummarizeInTransit conta as remessas e soma quantidade e custo total
func SummarizeInTransit(shipments []*domain.InTransitShipment) domain.InTransitSummary {
	summary := domain.InTransitSummary{
		TotalCost: decimal.Zero,
		Shipments: make([]*domain.InTransitShipment, 0, len(shipments)),
	}

	for _, shipment := range shipments {
		if shipment == nil {
			continue
		}
		summary.Count++
		summary.TotalQuantity += shipment.Quantity
		summary.TotalCost = summary.TotalCost.Add(shipment.TotalCost())
		summary.Shipments = append(summary.Shipments, shipment)
	}

	return summary
}
