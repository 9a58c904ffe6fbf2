package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/sales-comparison-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-comparison-api/pkg/apiErrors"
	"github.com/vfg2006/sales-comparison-api/pkg/log"
	"github.com/vfg2006/sales-comparison-api/pkg/utils"
)

// parseBaseDate lê base_date da query; sem valor, usa ontem
func parseBaseDate(r *http.Request) (time.Time, error) {
	date, err := utils.ParseDate(r.URL.Query().Get("base_date"))
	if err != nil {
		return time.Time{}, err
	}

	if date == nil {
		return reporting.DefaultBaseDate(time.Now()), nil
	}

	return *date, nil
}

// parseDateRange valida start_date e end_date, ambos opcionais
func parseDateRange(w http.ResponseWriter, r *http.Request, logger log.Logger) (string, string, bool) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	params := []struct{ name, value string }{
		{"start_date", startDate},
		{"end_date", endDate},
	}

	for _, p := range params {
		if _, err := utils.ParseDate(p.value); err != nil {
			logger.WithFields(log.Fields{
				p.name:  p.value,
				"error": err.Error(),
			}).Warn("sales: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", map[string]string{
				"param": p.name,
			})
			return "", "", false
		}
	}

	return startDate, endDate, true
}

func writeInvalidBaseDate(w http.ResponseWriter, logger log.Logger, r *http.Request, err error) {
	logger.WithFields(log.Fields{
		"base_date": r.URL.Query().Get("base_date"),
		"error":     err.Error(),
	}).Warn("sales: invalid base_date parameter")

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data base inválida, use o formato YYYY-MM-DD", map[string]string{
		"param": "base_date",
	})
}

func GetComparisons(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		baseDate, err := parseBaseDate(r)
		if err != nil {
			writeInvalidBaseDate(w, logger, r, err)
			return
		}

		logger.WithField("base_date", baseDate.Format(time.DateOnly)).Info("sales: computing comparisons")

		report, err := service.GetComparisons(r.Context(), baseDate)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	})
}

func GetYearlySeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := parseDateRange(w, r, logger)
		if !ok {
			return
		}

		series, err := service.GetYearlySeries(r.Context(), startDate, endDate)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		logger.WithField("dates", len(series.Dates)).Debug("sales: yearly series built")

		writeJSON(w, http.StatusOK, series)
	})
}

func GetMonthlyComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		baseDate, err := parseBaseDate(r)
		if err != nil {
			writeInvalidBaseDate(w, logger, r, err)
			return
		}

		month := 0
		if value := r.URL.Query().Get("month"); value != "" {
			month, err = strconv.Atoi(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido, use um número entre 1 e 12", map[string]string{
					"param": "month",
				})
				return
			}
		}

		monthly, err := service.GetMonthlyComparison(r.Context(), month, baseDate)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, monthly)
	})
}

func GetSnapshotInfo(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := service.GetSnapshotInfo()
		if err != nil {
			handleReportError(w, log.ForContext(r.Context()), err)
			return
		}

		writeJSON(w, http.StatusOK, info)
	})
}

// ReloadSnapshot força a recarga do snapshot da data base
func ReloadSnapshot(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		baseDate, err := parseBaseDate(r)
		if err != nil {
			writeInvalidBaseDate(w, logger, r, err)
			return
		}

		logger.WithField("base_date", baseDate.Format(time.DateOnly)).Info("sales: reloading snapshot")

		info, err := service.Load(r.Context(), baseDate, true)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, info)
	})
}

func ResetSnapshot(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		service.Reset()

		writeJSON(w, http.StatusOK, map[string]string{
			"message":         "Dados de vendas descartados",
			"reset_base_date": reporting.DefaultBaseDate(time.Now()).Format(time.DateOnly),
		})
	})
}

// GetSalesHistory retorna os totais diários persistidos
func GetSalesHistory(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, endDate, ok := parseDateRange(w, r, logger)
		if !ok {
			return
		}

		entries, err := service.GetStoredDailySales(r.Context(), startDate, endDate)
		if err != nil {
			handleReportError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"start_date": startDate,
			"end_date":   endDate,
			"days":       entries,
		})
	})
}
