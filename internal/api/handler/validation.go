package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-dashboard-api/internal/domain"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
)

var validate = validator.New()

// dashboardQuery são os parâmetros aceitos pelas rotas do painel
type dashboardQuery struct {
	Period string `validate:"omitempty,max=64"`
	Limit  int    `validate:"omitempty,min=1,max=50"`
}

// validationDetails mapeia campo -> regra violada
func validationDetails(err error) map[string]string {
	details := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return details
	}

	for _, ve := range validationErrs {
		details[ve.Field()] = ve.Tag()
	}

	return details
}

// parseDashboardQuery lê period e limit da query string. Em caso de erro a resposta já foi escrita
func parseDashboardQuery(w http.ResponseWriter, r *http.Request) (domain.DashboardFilters, bool) {
	query := dashboardQuery{
		Period: r.URL.Query().Get("period"),
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidQueryParam, "Parâmetro limit deve ser um número inteiro", map[string]string{"limit": raw})
			return domain.DashboardFilters{}, false
		}
		query.Limit = limit
	}

	if err := validate.Struct(query); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidQueryParam, "Parâmetros de consulta inválidos", validationDetails(err))
		return domain.DashboardFilters{}, false
	}

	return domain.DashboardFilters{Period: query.Period, Limit: query.Limit}, true
}
