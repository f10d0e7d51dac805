package handler

import (
	"net/http"

	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
)

type InventoryResponse struct {
	Count int                 `json:"count"`
	Items []*domain.StockItem `json:"items"`
}

func ListInventory(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListInventory(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar estoque")
			return
		}

		writeJSON(w, r, http.StatusOK, InventoryResponse{
			Count: len(items),
			Items: items,
		})
	}
}

// GetCriticalStock retorna os itens abaixo do estoque crítico com a mensagem de alerta de cada um
func GetCriticalStock(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alert, err := service.GetCriticalStock(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Erro ao verificar estoque crítico")
			return
		}

		writeJSON(w, r, http.StatusOK, alert)
	}
}

func ListInTransit(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.GetInTransit(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Erro ao listar remessas em trânsito")
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	}
}
