package dashboarding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testDashboardConfig = config.Dashboard{
	CurrentPeriod: "Июль 2025",
	TopProducts:   5,
	Currency:      "KZT",
}

type serviceMocks struct {
	stock    *mocks.MockStockItemRepository
	shipment *mocks.MockShipmentRepository
	sales    *mocks.MockSalesRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		stock:    mocks.NewMockStockItemRepository(ctrl),
		shipment: mocks.NewMockShipmentRepository(ctrl),
		sales:    mocks.NewMockSalesRepository(ctrl),
	}

	service := NewService(m.stock, m.shipment, m.sales, testDashboardConfig)
	service.now = func() time.Time { return time.Date(2025, time.August, 4, 12, 0, 0, 0, time.UTC) }

	return service, m
}

func expectFixtures(m serviceMocks) {
	m.stock.EXPECT().ListStockItems(gomock.Any()).Return(fixture.StockItems(), nil)
	m.shipment.EXPECT().ListInTransit(gomock.Any()).Return(fixture.InTransitShipments(), nil)
	m.sales.EXPECT().ListSalesPoints(gomock.Any(), domain.SalesGranularityMonthly).Return(fixture.MonthlySales(), nil)
	m.sales.EXPECT().ListSalesPoints(gomock.Any(), domain.SalesGranularityWeekly).Return(fixture.WeeklySales(), nil)
}

func TestService_GetSummary(t *testing.T) {
	tests := []struct {
		name     string
		filters  domain.DashboardFilters
		setup    func(m serviceMocks)
		wantErr  bool
		validate func(t *testing.T, summary *domain.DashboardSummary, err error)
	}{
		{
			name:    "Resumo com período padrão",
			filters: domain.DashboardFilters{},
			setup:   expectFixtures,
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.Equal(t, "KZT", summary.Currency)
				assert.Equal(t, "Июль 2025", summary.CurrentPeriod.Period)
				assertDecimal(t, "6494350", summary.CurrentPeriod.Revenue)
				assertDecimal(t, "1914122.5", summary.CurrentPeriod.Profit)
				assert.Equal(t, 4, summary.ItemsInTransit)
				assertDecimal(t, "11550000", summary.InTransitCost)
				assert.Equal(t, 1, summary.CriticalStockCount)
				assertDecimal(t, "4076000", summary.TotalStockValue)
				assert.Len(t, summary.TopProducts, 5)
				assert.Len(t, summary.MonthlySales, 2)
				assert.Len(t, summary.WeeklySales, 7)
				require.NotNil(t, summary.Trend)
				assert.Equal(t, domain.TrendUp, summary.Trend.Direction)
				assert.Equal(t, 2025, summary.GeneratedAt.Year())
			},
		},
		{
			name:    "Período sem vendas e limite customizado",
			filters: domain.DashboardFilters{Period: "Август 2025", Limit: 2},
			setup:   expectFixtures,
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.False(t, summary.CurrentPeriod.Found)
				assertDecimal(t, "0", summary.CurrentPeriod.Revenue)
				assert.Nil(t, summary.Trend)
				require.Len(t, summary.TopProducts, 2)
				assert.Equal(t, "prod2", summary.TopProducts[1].ID)
			},
		},
		{
			name:    "Falha na fonte de estoque",
			filters: domain.DashboardFilters{},
			setup: func(m serviceMocks) {
				m.stock.EXPECT().ListStockItems(gomock.Any()).Return(nil, errors.New("conexão recusada"))
				m.shipment.EXPECT().ListInTransit(gomock.Any()).Return(fixture.InTransitShipments(), nil)
				m.sales.EXPECT().ListSalesPoints(gomock.Any(), gomock.Any()).Return(fixture.MonthlySales(), nil).Times(2)
			},
			wantErr: true,
			validate: func(t *testing.T, summary *domain.DashboardSummary, err error) {
				assert.ErrorIs(t, err, ErrDataSourceUnavailable)

				var dashErr *DashboardError
				require.ErrorAs(t, err, &dashErr)
				assert.Equal(t, apiErrors.ErrDataSourceUnavail, dashErr.Code)
				assert.Equal(t, collectionStock, dashErr.Collection)
				assert.Contains(t, err.Error(), "conexão recusada")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestService(t)
			tt.setup(m)

			summary, err := service.GetSummary(context.Background(), tt.filters)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, summary)
			} else {
				require.NoError(t, err)
				require.NotNil(t, summary)
			}
			tt.validate(t, summary, err)
		})
	}
}

func TestService_GetTopProducts(t *testing.T) {
	service, m := newTestService(t)
	m.stock.EXPECT().ListStockItems(gomock.Any()).Return(fixture.StockItems(), nil).Times(2)

	top, err := service.GetTopProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, top, 5)

	top, err = service.GetTopProducts(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Стул Luxstone", top[0].ProductName)
}

func TestService_GetCriticalStock(t *testing.T) {
	service, m := newTestService(t)
	m.stock.EXPECT().ListStockItems(gomock.Any()).Return(fixture.StockItems(), nil)

	alert, err := service.GetCriticalStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, alert.Count)
}

func TestService_GetInTransit(t *testing.T) {
	service, m := newTestService(t)
	m.shipment.EXPECT().ListInTransit(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := service.GetInTransit(context.Background())
	assert.ErrorIs(t, err, ErrDataSourceUnavailable)
}

func TestService_ListSales(t *testing.T) {
	service, m := newTestService(t)
	m.sales.EXPECT().ListSalesPoints(gomock.Any(), domain.SalesGranularityWeekly).Return(fixture.WeeklySales(), nil)

	points, err := service.ListSales(context.Background(), domain.SalesGranularityWeekly)
	require.NoError(t, err)
	assert.Len(t, points, 7)

	_, err = service.ListSales(context.Background(), domain.SalesGranularity("daily"))
	assert.ErrorIs(t, err, ErrUnknownGranularity)
}

func TestService_GetPeriodSales(t *testing.T) {
	service, m := newTestService(t)
	m.sales.EXPECT().ListSalesPoints(gomock.Any(), domain.SalesGranularityMonthly).Return(fixture.MonthlySales(), nil).Times(2)

	current, err := service.GetPeriodSales(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, current.Found)
	assertDecimal(t, "6494350", current.Revenue)

	missing, err := service.GetPeriodSales(context.Background(), "Май 2025")
	require.NoError(t, err)
	assert.False(t, missing.Found)
	assertDecimal(t, "0", missing.Profit)
}
