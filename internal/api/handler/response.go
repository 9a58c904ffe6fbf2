package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Error("erro ao serializar resposta")
	}
}

// handleReportError converte erros do serviço de relatórios em respostas padronizadas
func handleReportError(w http.ResponseWriter, logger log.Logger, err error) {
	var reportErr *reporting.ReportError
	if errors.As(err, &reportErr) {
		var details any
		if len(reportErr.Meta) > 0 {
			details = reportErr.Meta
		}

		if apiErrors.StatusFor(reportErr.Code) >= http.StatusInternalServerError {
			logger.WithError(err).Error("sales: request failed")
		} else {
			logger.WithError(err).Warn("sales: request rejected")
		}

		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), details)
		return
	}

	logger.WithError(err).Error("sales: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar vendas", nil)
}
