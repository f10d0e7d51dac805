package dashboarding

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "esperado %s, obtido %s", want, got)
}

func TestTotalStockValue(t *testing.T) {
	assertDecimal(t, "4076000", TotalStockValue(fixture.StockItems()))
	assertDecimal(t, "0", TotalStockValue(nil))
}

func TestPotentialStockRevenue(t *testing.T) {
	assertDecimal(t, "9515650.08", PotentialStockRevenue(fixture.StockItems()))
}

func TestCriticalStock(t *testing.T) {
	tests := []struct {
		name      string
		items     []*domain.StockItem
		wantCount int
		wantIDs   []string
	}{
		{
			name:      "Fixture tem apenas Набор Luma abaixo do limite",
			items:     fixture.StockItems(),
			wantCount: 1,
			wantIDs:   []string{"prod6"},
		},
		{
			name: "Quantidade igual ao limite não é crítica",
			items: []*domain.StockItem{
				{ID: "a", Quantity: 5, CriticalStock: 5},
				{ID: "b", Quantity: 0, CriticalStock: 1},
			},
			wantCount: 1,
			wantIDs:   []string{"b"},
		},
		{
			name:      "Coleção vazia",
			items:     []*domain.StockItem{},
			wantCount: 0,
			wantIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCount, CriticalStockCount(tt.items))

			alert := BuildCriticalStockAlert(tt.items)
			ids := make([]string, 0, len(alert.Items))
			for _, entry := range alert.Items {
				ids = append(ids, entry.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantCount, alert.Count)
		})
	}
}

func TestCriticalStockAlertMessage(t *testing.T) {
	alert := BuildCriticalStockAlert(fixture.StockItems())

	require.Len(t, alert.Items, 1)
	assert.Equal(t, "Набор Luma: 4 шт. (критический: 5 шт.)", alert.Items[0].Message)
}

func TestTopByQuantity(t *testing.T) {
	tests := []struct {
		name    string
		items   []*domain.StockItem
		n       int
		wantIDs []string
	}{
		{
			name:    "Top 5 da fixture",
			items:   fixture.StockItems(),
			n:       5,
			wantIDs: []string{"prod1", "prod2", "prod3", "prod7", "prod5"},
		},
		{
			name:    "Limite zero usa o padrão",
			items:   fixture.StockItems(),
			n:       0,
			wantIDs: []string{"prod1", "prod2", "prod3", "prod7", "prod5"},
		},
		{
			name:    "Limite maior que a coleção retorna tudo",
			items:   fixture.StockItems(),
			n:       50,
			wantIDs: []string{"prod1", "prod2", "prod3", "prod7", "prod5", "prod4", "prod6"},
		},
		{
			name: "Empates mantêm a ordem de entrada",
			items: []*domain.StockItem{
				{ID: "a", Quantity: 5},
				{ID: "b", Quantity: 7},
				{ID: "c", Quantity: 5},
			},
			n:       3,
			wantIDs: []string{"b", "a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := TopByQuantity(tt.items, tt.n)

			ids := make([]string, 0, len(top))
			for i, product := range top {
				assert.Equal(t, i+1, product.Rank)
				ids = append(ids, product.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTopByQuantityDoesNotReorderInput(t *testing.T) {
	items := fixture.StockItems()
	TopByQuantity(items, 3)

	assert.Equal(t, "prod1", items[0].ID)
	assert.Equal(t, "prod6", items[5].ID)
}

func TestFindPeriodSales(t *testing.T) {
	monthly := fixture.MonthlySales()

	july := FindPeriodSales(monthly, "Июль 2025")
	assert.True(t, july.Found)
	assertDecimal(t, "6494350", july.Revenue)
	assertDecimal(t, "1914122.5", july.Profit)

	missing := FindPeriodSales(monthly, "Август 2025")
	assert.False(t, missing.Found)
	assert.Equal(t, "Август 2025", missing.Period)
	assertDecimal(t, "0", missing.Revenue)
	assertDecimal(t, "0", missing.Profit)

	partial := FindPeriodSales(monthly, "Июль")
	assert.False(t, partial.Found, "a busca exige correspondência exata")
}

func TestMonthOverMonth(t *testing.T) {
	monthly := fixture.MonthlySales()

	july := MonthOverMonth(monthly, "Июль 2025")
	require.NotNil(t, july)
	assert.Equal(t, "Июнь 2025", july.PreviousPeriod)
	assert.Equal(t, domain.TrendUp, july.Direction)
	assertDecimal(t, "1402050", july.RevenueChange)
	assertDecimal(t, "27.53", july.RevenueChangePercent)
	assertDecimal(t, "1023613.51", july.ProfitChange)

	june := MonthOverMonth(monthly, "Июнь 2025")
	require.NotNil(t, june)
	assert.Empty(t, june.PreviousPeriod)
	assert.Equal(t, domain.TrendFlat, june.Direction)
	assertDecimal(t, "0", june.RevenueChange)

	assert.Nil(t, MonthOverMonth(monthly, "Август 2025"))

	down := MonthOverMonth([]*domain.SalesPoint{
		{Period: "A", Revenue: dec("100"), Profit: dec("10")},
		{Period: "B", Revenue: dec("50"), Profit: dec("5")},
	}, "B")
	require.NotNil(t, down)
	assert.Equal(t, domain.TrendDown, down.Direction)
	assertDecimal(t, "-50", down.RevenueChangePercent)
}

func TestSummarizeInTransit(t *testing.T) {
	summary := SummarizeInTransit(fixture.InTransitShipments())

	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, 200, summary.TotalQuantity)
	assertDecimal(t, "11550000", summary.TotalCost)
	assert.Len(t, summary.Shipments, 4)

	empty := SummarizeInTransit(nil)
	assert.Zero(t, empty.Count)
	assertDecimal(t, "0", empty.TotalCost)
	assert.NotNil(t, empty.Shipments)
}
