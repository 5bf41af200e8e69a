package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/furniture-manager-api/internal/domain"
	"github.com/vfg2006/furniture-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/furniture-manager-api/pkg/apiErrors"
	"github.com/vfg2006/furniture-manager-api/pkg/log"
)

// writeServiceError traduz erros dos casos de uso para códigos da API.
// fallbackCode é usado quando o erro não é reconhecido.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallbackCode string) {
	var apiErr apiErrors.APIError
	var providerErr *domain.ProviderError

	switch {
	case errors.As(err, &apiErr):
		apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)

	case errors.Is(err, domain.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)

	case reporting.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.As(err, &providerErr):
		log.ForContext(r.Context()).WithFields(log.Fields{
			"provider": providerErr.Provider,
			"error":    err.Error(),
		}).Warn("Falha no provedor de LLM")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Provedor de IA indisponível", map[string]any{
			"provider": providerErr.Provider,
			"status":   providerErr.StatusCode,
		})

	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao processar requisição")
		apiErrors.WriteError(w, fallbackCode, "Erro ao processar requisição", nil)
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
