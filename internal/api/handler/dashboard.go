package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

// SnapshotProvider devolve o último resumo calculado pelo agendador
type SnapshotProvider interface {
	LatestSnapshot(ctx context.Context) (*domain.DashboardSnapshot, error)
}

type TopProductsResponse struct {
	Limit    int                 `json:"limit"`
	Products []domain.TopProduct `json:"products"`
}

// GetDashboardSummary retorna todos os indicadores do painel para o período pedido
func GetDashboardSummary(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseDashboardQuery(w, r)
		if !ok {
			return
		}

		logger := log.ForContext(r.Context())
		logger.WithFields(log.Fields{
			"period": filters.Period,
			"limit":  filters.Limit,
		}).Debug("dashboard: montando resumo")

		summary, err := service.GetSummary(r.Context(), filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao montar resumo do painel")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}

func GetTopProducts(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseDashboardQuery(w, r)
		if !ok {
			return
		}

		products, err := service.GetTopProducts(r.Context(), filters.Limit)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao calcular ranking de produtos")
			return
		}

		writeJSON(w, r, http.StatusOK, TopProductsResponse{
			Limit:    len(products),
			Products: products,
		})
	}
}

func GetDashboardSnapshot(provider SnapshotProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := provider.LatestSnapshot(r.Context())
		if err != nil {
			var dashErr *dashboarding.DashboardError
			if errors.As(err, &dashErr) {
				handleServiceError(w, r, err, "Erro ao gerar snapshot do painel")
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("dashboard: snapshot indisponível")
			apiErrors.WriteError(w, apiErrors.ErrSnapshotUnavailable, "Snapshot do painel indisponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	}
}
