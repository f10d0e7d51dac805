package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, snapshots SnapshotProvider) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/top-products",
			Method:      http.MethodGet,
			Handler:     GetTopProducts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/snapshot",
			Method:      http.MethodGet,
			Handler:     GetDashboardSnapshot(snapshots),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Inventory(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/inventory",
			Method:      http.MethodGet,
			Handler:     ListInventory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOrPacker()},
		},
		{
			Path:        "/v1/inventory/critical",
			Method:      http.MethodGet,
			Handler:     GetCriticalStock(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOrPacker()},
		},
		{
			Path:        "/v1/in-transit",
			Method:      http.MethodGet,
			Handler:     ListInTransit(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOnly()},
		},
	}
}

func Sales(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/monthly",
			Method:      http.MethodGet,
			Handler:     ListSales(service, domain.SalesGranularityMonthly),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOrManager()},
		},
		{
			Path:        "/v1/sales/weekly",
			Method:      http.MethodGet,
			Handler:     ListSales(service, domain.SalesGranularityWeekly),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOrManager()},
		},
		{
			Path:        "/v1/sales/period",
			Method:      http.MethodGet,
			Handler:     GetPeriodSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOrManager()},
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/inventory",
			Method:      http.MethodGet,
			Handler:     ExportDashboardReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.DirectorOnly()},
		},
	}
}
