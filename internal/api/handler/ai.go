package handler

import (
	"net/http"

	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/apiErrors"
	"github.com/vfg2006/furniture-manager-api/pkg/utils"
)

type AskRequest struct {
	Question string `json:"question" validate:"required"`
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

type ChatRequest struct {
	Messages    []domain.ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Mode        string               `json:"mode" validate:"omitempty,oneof=general analytics"`
	DateFrom    string               `json:"date_from"`
	DateTo      string               `json:"date_to"`
	Temperature *float64             `json:"temperature" validate:"omitempty,gte=0,lte=2"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

// AIAsk responde com 200 mesmo quando o provedor falha
func AIAsk(service reporting.Reporter, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		dr, err := resolveRange(req.DateFrom, req.DateTo, lookbackDays)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		answer, err := service.Ask(r.Context(), req.Question, dr)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrDatabaseOperation)
			return
		}

		writeResponse(w, r, answer)
	}
}

// AIChat não tem fallback: falha do provedor vira 502
func AIChat(service reporting.Reporter, lookbackDays int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		dr, err := resolveRange(req.DateFrom, req.DateTo, lookbackDays)
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInvalidRequest)
			return
		}

		temperature := reporting.DefaultTemperature
		if req.Temperature != nil {
			temperature = *req.Temperature
		}

		answer, err := service.Chat(r.Context(), domain.ChatRequest{
			Messages:    req.Messages,
			Mode:        req.Mode,
			Temperature: temperature,
			Range:       dr,
		})
		if err != nil {
			writeServiceError(w, r, err, apiErrors.ErrInternalServer)
			return
		}

		writeResponse(w, r, ChatResponse{Answer: answer})
	}
}
