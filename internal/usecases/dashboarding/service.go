package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/vfg2006/inventory-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/inventory-dashboard-api/internal/config"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

const (
	collectionStock     = "stock_items"
	collectionShipments = "in_transit_shipments"
	collectionMonthly   = "sales_monthly"
	collectionWeekly    = "sales_weekly"
)

type Dashboarder interface {
	GetSummary(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardSummary, error)
	GetTopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error)
	ListInventory(ctx context.Context) ([]*domain.StockItem, error)
	GetCriticalStock(ctx context.Context) (*domain.CriticalStockAlert, error)
	GetInTransit(ctx context.Context) (*domain.InTransitSummary, error)
	ListSales(ctx context.Context, granularity domain.SalesGranularity) ([]*domain.SalesPoint, error)
	GetPeriodSales(ctx context.Context, label string) (*domain.PeriodSales, error)
}

var _ Dashboarder = (*Service)(nil)

type Service struct {
	stockRepo    repository.StockItemRepository
	shipmentRepo repository.ShipmentRepository
	salesRepo    repository.SalesRepository
	cfg          config.Dashboard
	now          func() time.Time
}

func NewService(
	stockRepo repository.StockItemRepository,
	shipmentRepo repository.ShipmentRepository,
	salesRepo repository.SalesRepository,
	cfg config.Dashboard,
) *Service {
	return &Service{
		stockRepo:    stockRepo,
		shipmentRepo: shipmentRepo,
		salesRepo:    salesRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// GetSummary busca as quatro coleções em paralelo e deriva todos os indicadores do painel
func (s *Service) GetSummary(ctx context.Context, filters domain.DashboardFilters) (*domain.DashboardSummary, error) {
	period := filters.Period
	if period == "" {
		period = s.cfg.CurrentPeriod
	}

	var (
		items                 []*domain.StockItem
		shipments             []*domain.InTransitShipment
		monthly, weekly       []*domain.SalesPoint
		stockErr, shipErr     error
		monthlyErr, weeklyErr error
	)

	wg := sync.WaitGroup{}
	wg.Add(4)

	go func() {
		defer wg.Done()
		items, stockErr = s.stockRepo.ListStockItems(ctx)
	}()

	go func() {
		defer wg.Done()
		shipments, shipErr = s.shipmentRepo.ListInTransit(ctx)
	}()

	go func() {
		defer wg.Done()
		monthly, monthlyErr = s.salesRepo.ListSalesPoints(ctx, domain.SalesGranularityMonthly)
	}()

	go func() {
		defer wg.Done()
		weekly, weeklyErr = s.salesRepo.ListSalesPoints(ctx, domain.SalesGranularityWeekly)
	}()

	wg.Wait()

	for _, failure := range []struct {
		collection string
		err        error
	}{
		{collectionStock, stockErr},
		{collectionShipments, shipErr},
		{collectionMonthly, monthlyErr},
		{collectionWeekly, weeklyErr},
	} {
		if failure.err != nil {
			log.ForContext(ctx).WithError(failure.err).Errorf("dashboarding: erro ao carregar %s", failure.collection)
			return nil, newDataSourceError(failure.collection, failure.err)
		}
	}

	inTransit := SummarizeInTransit(shipments)
	critical := BuildCriticalStockAlert(items)

	summary := &domain.DashboardSummary{
		Currency:              s.cfg.Currency,
		CurrentPeriod:         FindPeriodSales(monthly, period),
		Trend:                 MonthOverMonth(monthly, period),
		ItemsInTransit:        inTransit.Count,
		InTransitCost:         inTransit.TotalCost,
		CriticalStockCount:    critical.Count,
		TotalStockValue:       TotalStockValue(items),
		PotentialStockRevenue: PotentialStockRevenue(items),
		TopProducts:           TopByQuantity(items, s.limitOrDefault(filters.Limit)),
		MonthlySales:          monthly,
		WeeklySales:           weekly,
		CriticalStock:         critical,
		GeneratedAt:           s.now(),
	}

	if !summary.CurrentPeriod.Found {
		log.ForContext(ctx).WithField("period", period).Warn("dashboarding: período sem vendas cadastradas, usando zero")
	}

	return summary, nil
}

func (s *Service) GetTopProducts(ctx context.Context, limit int) ([]domain.TopProduct, error) {
	items, err := s.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	return TopByQuantity(items, s.limitOrDefault(limit)), nil
}

func (s *Service) ListInventory(ctx context.Context) ([]*domain.StockItem, error) {
	items, err := s.stockRepo.ListStockItems(ctx)
	if err != nil {
		return nil, newDataSourceError(collectionStock, err)
	}

	return items, nil
}

func (s *Service) GetCriticalStock(ctx context.Context) (*domain.CriticalStockAlert, error) {
	items, err := s.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	alert := BuildCriticalStockAlert(items)
	return &alert, nil
}

func (s *Service) GetInTransit(ctx context.Context) (*domain.InTransitSummary, error) {
	shipments, err := s.shipmentRepo.ListInTransit(ctx)
	if err != nil {
		return nil, newDataSourceError(collectionShipments, err)
	}

	summary := SummarizeInTransit(shipments)
	return &summary, nil
}

func (s *Service) ListSales(ctx context.Context, granularity domain.SalesGranularity) ([]*domain.SalesPoint, error) {
	var collection string
	switch granularity {
	case domain.SalesGranularityMonthly:
		collection = collectionMonthly
	case domain.SalesGranularityWeekly:
		collection = collectionWeekly
	default:
		return nil, &DashboardError{Err: ErrUnknownGranularity, Code: apiErrors.ErrInvalidQueryParam, Collection: string(granularity)}
	}

	points, err := s.salesRepo.ListSalesPoints(ctx, granularity)
	if err != nil {
		return nil, newDataSourceError(collection, err)
	}

	return points, nil
}

// GetPeriodSales resolve o rótulo na série mensal; rótulo vazio usa o período corrente configurado
func (s *Service) GetPeriodSales(ctx context.Context, label string) (*domain.PeriodSales, error) {
	if label == "" {
		label = s.cfg.CurrentPeriod
	}

	points, err := s.ListSales(ctx, domain.SalesGranularityMonthly)
	if err != nil {
		return nil, err
	}

	result := FindPeriodSales(points, label)
	return &result, nil
}

func (s *Service) limitOrDefault(limit int) int {
	if limit > 0 {
		return limit
	}
	if s.cfg.TopProducts > 0 {
		return s.cfg.TopProducts
	}
	return DefaultTopProducts
}
