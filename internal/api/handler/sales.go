package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

type SalesSeriesResponse struct {
	Granularity domain.SalesGranularity `json:"granularity"`
	Points      []*domain.SalesPoint    `json:"points"`
}

type periodQuery struct {
	Label string `validate:"omitempty,max=64"`
}

// ListSales retorna a série de vendas na granularidade fixa da rota
func ListSales(service dashboarding.Dashboarder, granularity domain.SalesGranularity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		points, err := service.ListSales(r.Context(), granularity)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar vendas")
			return
		}

		writeJSON(w, r, http.StatusOK, SalesSeriesResponse{
			Granularity: granularity,
			Points:      points,
		})
	}
}

// GetPeriodSales busca receita e lucro pelo rótulo exato. Rótulo inexistente responde 200 com zeros
func GetPeriodSales(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := periodQuery{Label: r.URL.Query().Get("label")}
		if err := validate.Struct(query); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidQueryParam, "Parâmetros de consulta inválidos", validationDetails(err))
			return
		}

		sales, err := service.GetPeriodSales(r.Context(), query.Label)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao buscar vendas do período")
			return
		}

		writeJSON(w, r, http.StatusOK, sales)
	}
}
