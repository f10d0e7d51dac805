package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DashboardFilters struct {
	Period string // Rótulo do período corrente; vazio usa o padrão da configuração
	Limit  int    // Tamanho do top de produtos; <= 0 usa o padrão da configuração
}

// TopProduct é um item do ranking de produtos por quantidade em estoque
type TopProduct struct {
	Rank        int    `json:"rank"`
	ID          string `json:"id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type CriticalStockEntry struct {
	ID            string `json:"id"`
	ProductName   string `json:"product_name"`
	Quantity      int    `json:"quantity"`
	CriticalStock int    `json:"critical_stock"`
	Message       string `json:"message"`
}

type CriticalStockAlert struct {
	Count int                  `json:"count"`
	Items []CriticalStockEntry `json:"items"`
}

// DashboardSummary reúne todos os indicadores exibidos no painel
type DashboardSummary struct {
	Currency              string             `json:"currency"`
	CurrentPeriod         PeriodSales        `json:"current_period"`
	Trend                 *SalesTrend        `json:"trend,omitempty"`
	ItemsInTransit        int                `json:"items_in_transit"`
	InTransitCost         decimal.Decimal    `json:"in_transit_cost"`
	CriticalStockCount    int                `json:"critical_stock_count"`
	TotalStockValue       decimal.Decimal    `json:"total_stock_value"`
	PotentialStockRevenue decimal.Decimal    `json:"potential_stock_revenue"`
	TopProducts           []TopProduct       `json:"top_products"`
	MonthlySales          []*SalesPoint      `json:"monthly_sales"`
	WeeklySales           []*SalesPoint      `json:"weekly_sales"`
	CriticalStock         CriticalStockAlert `json:"critical_stock"`
	GeneratedAt           time.Time          `json:"generated_at"`
}

// DashboardSnapshot é um resumo calculado pelo agendador e armazenado em cache
type DashboardSnapshot struct {
	ID        string            `json:"id"`
	Summary   *DashboardSummary `json:"summary"`
	CreatedAt time.Time         `json:"created_at"`
}
