package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/inventory-dashboard-api/internal/scheduler"
	"github.com/vfg2006/inventory-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/inventory-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot = "snapshot"
)

// SyncJob é um job agendado que também pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SnapshotSyncService SyncJob
}

func (s CronJobServices) jobs() map[string]SyncJob {
	jobs := make(map[string]SyncJob)
	if s.SnapshotSyncService != nil {
		jobs[CronJobTypeSnapshot] = s.SnapshotSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.jobs()[cronType]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Tipo de cron job desconhecido", map[string]string{"type": cronType})
			return
		}

		if err := job.TriggerManualSync(); err != nil {
			if errors.Is(err, scheduler.ErrSyncInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já em execução", map[string]string{"type": cronType})
				return
			}

			logger.WithError(err).WithField("job", cronType).Error("cron: erro ao disparar job")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar cron job", nil)
			return
		}

		logger.WithField("job", cronType).Info("cron: job disparado manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de todos os jobs registrados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
