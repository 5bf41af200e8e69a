package reporting

import "errors"

var (
	ErrEmptyQuestion      = errors.New("question não pode ser vazia")
	ErrEmptyConversation  = errors.New("messages não pode ser vazio")
	ErrInvalidTemperature = errors.New("temperature deve estar entre 0 e 2")
	ErrInvalidChatMode    = errors.New("mode deve ser general ou analytics")
	ErrEmptyNarrative     = errors.New("resposta do provedor sem conteúdo utilizável")
)

// IsValidationError indica erros causados pela entrada do chamador
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyQuestion) ||
		errors.Is(err, ErrEmptyConversation) ||
		errors.Is(err, ErrInvalidTemperature) ||
		errors.Is(err, ErrInvalidChatMode)
}
