package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/apiErrors"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
	"github.com/vfg2006/furniture-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// clock permite fixar "hoje" nos testes
var clock = time.Now

// resolveRange aplica os padrões de intervalo às datas opcionais recebidas
func resolveRange(dateFrom, dateTo string, lookbackDays int) (domain.DateRange, error) {
	from, err := utils.ParseDate(dateFrom)
	if err != nil {
		return domain.DateRange{}, apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "date_from deve estar no formato YYYY-MM-DD",
		}
	}

	to, err := utils.ParseDate(dateTo)
	if err != nil {
		return domain.DateRange{}, apiErrors.APIError{
			Code:    apiErrors.ErrInvalidFormat,
			Message: "date_to deve estar no formato YYYY-MM-DD",
		}
	}

	return domain.ResolveDateRange(from, to, clock(), lookbackDays)
}

func queryRange(r *http.Request, lookbackDays int) (domain.DateRange, error) {
	query := r.URL.Query()
	return resolveRange(query.Get("date_from"), query.Get("date_to"), lookbackDays)
}

func AnalyticsSummary(service reporting.Reporter, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := queryRange(r, lookbackDays)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		report, err := service.Summary(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeResponse(w, r, report)
	}
}

func AnalyticsCompare(service reporting.Reporter, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := queryRange(r, lookbackDays)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		report, err := service.Compare(r.Context(), dr)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeResponse(w, r, report)
	}
}

func AnalyticsExportPDF(service reporting.Reporter, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dr, err := queryRange(r, lookbackDays)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		includeCompare := true
		if raw := r.URL.Query().Get("include_compare"); raw != "" {
			includeCompare, err = strconv.ParseBool(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "include_compare deve ser true ou false", nil)
				return
			}
		}

		pdf, filename, err := service.ExportPDF(r.Context(), dr, includeCompare)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInternalServer)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
		if _, err := w.Write(pdf); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar PDF")
		}
	}
}
