package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNotConfigured = errors.New("provedor LLM não configurado")
	ErrProviderUnsupported   = errors.New("provedor LLM não suportado")
	ErrProviderEmptyAnswer   = errors.New("resposta vazia do provedor LLM")
)

// ProviderError é o erro uniforme para qualquer falha do provedor de texto
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm %s: status %d: %s", e.Provider, e.StatusCode, msg)
	}
	return fmt.Sprintf("llm %s: %s", e.Provider, msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func IsProviderError(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}
