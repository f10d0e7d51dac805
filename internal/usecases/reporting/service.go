// Package reporting exporta os dados do painel em planilha xlsx
package reporting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary   = "Сводка"
	SheetInventory = "Склад"
	SheetInTransit = "В пути"
	SheetMonthly   = "Продажи по месяцам"
	SheetWeekly    = "Продажи по неделям"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Reporter interface {
	// DashboardWorkbook gera a planilha completa e devolve o arquivo xlsx em bytes
	DashboardWorkbook(ctx context.Context, filters domain.DashboardFilters) ([]byte, error)
}

type Service struct {
	dashboard dashboarding.Dashboarder
}

func NewService(dashboard dashboarding.Dashboarder) *Service {
	return &Service{dashboard: dashboard}
}

func (s *Service) DashboardWorkbook(ctx context.Context, filters domain.DashboardFilters) ([]byte, error) {
	summary, err := s.dashboard.GetSummary(ctx, filters)
	if err != nil {
		return nil, err
	}

	items, err := s.dashboard.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	inTransit, err := s.dashboard.GetInTransit(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &workbook{file: f}
	if err := w.init(); err != nil {
		return nil, err
	}

	w.writeSummary(summary)
	w.writeInventory(items)
	w.writeInTransit(inTransit)
	w.writeSales(SheetMonthly, summary.MonthlySales)
	w.writeSales(SheetWeekly, summary.WeeklySales)

	if w.err != nil {
		return nil, fmt.Errorf("erro ao montar planilha: %w", w.err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar planilha: %w", err)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"period": summary.CurrentPeriod.Period,
		"bytes":  buf.Len(),
	}).Info("reporting: planilha do painel gerada")

	return buf.Bytes(), nil
}

// workbook acumula o primeiro erro e ignora as escritas seguintes
type workbook struct {
	file        *excelize.File
	headerStyle int
	err         error
}

func (w *workbook) init() error {
	if err := w.file.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("erro ao renomear aba: %w", err)
	}

	for _, sheet := range []string{SheetInventory, SheetInTransit, SheetMonthly, SheetWeekly} {
		if _, err := w.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("erro ao criar aba %s: %w", sheet, err)
		}
	}

	style, err := w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("erro ao criar estilo: %w", err)
	}
	w.headerStyle = style

	return nil
}

func (w *workbook) setRow(sheet string, row int, values ...any) {
	if w.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		w.err = err
		return
	}

	w.err = w.file.SetSheetRow(sheet, cell, &values)
}

func (w *workbook) setHeader(sheet string, headers ...any) {
	w.setRow(sheet, 1, headers...)
	if w.err != nil {
		return
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		w.err = err
		return
	}

	w.err = w.file.SetCellStyle(sheet, "A1", last, w.headerStyle)
	if w.err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		w.err = w.file.SetColWidth(sheet, "A", lastCol, 22)
	}
}

func (w *workbook) writeSummary(summary *domain.DashboardSummary) {
	w.setHeader(SheetSummary, "Показатель", "Значение")

	rows := [][]any{
		{"Период", summary.CurrentPeriod.Period},
		{"Выручка", money(summary.CurrentPeriod.Revenue)},
		{"Прибыль", money(summary.CurrentPeriod.Profit)},
		{"Товары в пути", summary.ItemsInTransit},
		{"Стоимость в пути", money(summary.InTransitCost)},
		{"Критический остаток", summary.CriticalStockCount},
		{"Стоимость склада", money(summary.TotalStockValue)},
		{"Потенциальная выручка склада", money(summary.PotentialStockRevenue)},
		{"Валюта", summary.Currency},
	}

	for i, row := range rows {
		w.setRow(SheetSummary, i+2, row...)
	}
}

func (w *workbook) writeInventory(items []*domain.StockItem) {
	w.setHeader(SheetInventory, "ID", "Товар", "Количество", "Себестоимость", "Цена продажи", "Критический остаток", "Стоимость на складе")

	for i, item := range items {
		w.setRow(SheetInventory, i+2,
			item.ID,
			item.ProductName,
			item.Quantity,
			money(item.CostPrice),
			money(item.SellingPrice),
			item.CriticalStock,
			money(item.StockValue()),
		)
	}
}

func (w *workbook) writeInTransit(summary *domain.InTransitSummary) {
	w.setHeader(SheetInTransit, "ID", "Товар", "Количество", "Ожидаемая дата", "Поставщик", "Цена за единицу", "Статус", "Итого")

	for i, shipment := range summary.Shipments {
		w.setRow(SheetInTransit, i+2,
			shipment.ID,
			shipment.ProductName,
			shipment.Quantity,
			shipment.ExpectedArrival.Format("2006-01-02"),
			shipment.Supplier,
			money(shipment.CostPerItem),
			string(shipment.Status),
			money(shipment.TotalCost()),
		)
	}
}

func (w *workbook) writeSales(sheet string, points []*domain.SalesPoint) {
	w.setHeader(sheet, "Период", "Выручка", "Прибыль")

	for i, point := range points {
		w.setRow(sheet, i+2, point.Period, money(point.Revenue), money(point.Profit))
	}
}

// money converte para float64 só na fronteira da planilha, onde a célula precisa ser numérica
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
