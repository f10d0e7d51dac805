package reporting

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/fixture"
	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var testDashboardConfig = config.Dashboard{CurrentPeriod: "Июль 2025", TopProducts: 5, Currency: "KZT"}

func newFixtureReporter() *Service {
	dashboard := dashboarding.NewService(
		fixture.NewStockItemRepository(),
		fixture.NewShipmentRepository(),
		fixture.NewSalesRepository(),
		testDashboardConfig,
	)
	return NewService(dashboard)
}

func TestService_DashboardWorkbook(t *testing.T) {
	content, err := newFixtureReporter().DashboardWorkbook(context.Background(), domain.DashboardFilters{})
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetInventory, SheetInTransit, SheetMonthly, SheetWeekly}, f.GetSheetList())

	tests := []struct {
		sheet    string
		wantRows int
		cells    map[string]string
	}{
		{
			sheet:    SheetSummary,
			wantRows: 10,
			cells: map[string]string{
				"B2": "Июль 2025",
				"B3": "6494350",
				"B5": "4",
				"B7": "1",
				"B8": "4076000",
			},
		},
		{
			sheet:    SheetInventory,
			wantRows: 8,
			cells: map[string]string{
				"A1": "ID",
				"B2": "Стул Luxstone",
				"C2": "41",
				"E2": "30554.88",
				"G7": "280000",
			},
		},
		{
			sheet:    SheetInTransit,
			wantRows: 5,
			cells: map[string]string{
				"B3": "Пианино Leni",
				"D3": "2024-09-05",
				"G3": "Customs",
				"H2": "7800000",
			},
		},
		{
			sheet:    SheetMonthly,
			wantRows: 3,
			cells:    map[string]string{"A3": "Июль 2025", "C2": "890508.99"},
		},
		{
			sheet:    SheetWeekly,
			wantRows: 8,
			cells:    map[string]string{"A8": "Авг 04", "B8": "220000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.sheet, func(t *testing.T) {
			rows, err := f.GetRows(tt.sheet)
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)

			for cell, want := range tt.cells {
				got, err := f.GetCellValue(tt.sheet, cell)
				require.NoError(t, err)
				assert.Equal(t, want, got, "célula %s", cell)
			}
		})
	}
}

func TestService_DashboardWorkbookPropagatesDataSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	stockRepo := mocks.NewMockStockItemRepository(ctrl)
	shipmentRepo := mocks.NewMockShipmentRepository(ctrl)
	salesRepo := mocks.NewMockSalesRepository(ctrl)

	stockRepo.EXPECT().ListStockItems(gomock.Any()).Return(nil, errors.New("banco fora do ar"))
	shipmentRepo.EXPECT().ListInTransit(gomock.Any()).Return(fixture.InTransitShipments(), nil)
	salesRepo.EXPECT().ListSalesPoints(gomock.Any(), gomock.Any()).Return(fixture.MonthlySales(), nil).Times(2)

	reporter := NewService(dashboarding.NewService(stockRepo, shipmentRepo, salesRepo, testDashboardConfig))

	content, err := reporter.DashboardWorkbook(context.Background(), domain.DashboardFilters{})
	assert.Nil(t, content)
	assert.ErrorIs(t, err, dashboarding.ErrDataSourceUnavailable)
}
