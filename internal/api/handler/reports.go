package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

// ExportDashboardReport devolve a planilha xlsx com estoque, remessas e vendas
func ExportDashboardReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, ok := parseDashboardQuery(w, r)
		if !ok {
			return
		}

		content, err := service.DashboardWorkbook(r.Context(), filters)
		if err != nil {
			var dashErr *dashboarding.DashboardError
			if errors.As(err, &dashErr) {
				handleServiceError(w, r, err, "Erro ao carregar dados da planilha")
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("reports: erro ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar planilha", nil)
			return
		}

		filename := fmt.Sprintf("dashboard-%s.xlsx", time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", reporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", fmt.Sprint(len(content)))
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write(content); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("reports: erro ao enviar planilha")
		}
	}
}
