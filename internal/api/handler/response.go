package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/inventory-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

// handleServiceError traduz erros dos casos de uso para o envelope de erro da API
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		logger.WithField("collection", dashErr.Collection).Error(fallbackMessage)

		var details any
		if dashErr.Collection != "" {
			details = map[string]string{"collection": dashErr.Collection}
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithField("user_id", authErr.UserID).Warn(fallbackMessage)
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logger.Error(fallbackMessage)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
}
