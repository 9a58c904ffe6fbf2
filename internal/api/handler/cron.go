package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

const (
	CronJobTypeSnapshot = "snapshot"
)

// SyncJob é um agendamento que pode ser disparado manualmente
type SyncJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendamentos disponíveis por tipo
type CronJobServices struct {
	SnapshotSyncService SyncJob
}

func (s CronJobServices) byType(cronType string) SyncJob {
	switch cronType {
	case CronJobTypeSnapshot:
		return s.SnapshotSyncService
	default:
		return nil
	}
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

		job := services.byType(cronType)
		if job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: manual run requested")

		if !job.TriggerManualSync() {
			writeJSON(w, http.StatusConflict, map[string]any{
				"message": "Cron job já está em execução",
				"type":    cronType,
			})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotSyncService != nil {
			status[CronJobTypeSnapshot] = services.SnapshotSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
