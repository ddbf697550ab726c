package narrating

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de geração de narrativas
var (
	ErrEmptyGeneration = errors.New("text generation service returned empty text")
)

// formatServiceError converte a falha de uma chamada ao serviço de texto na
// string de erro exibida ao usuário no lugar da explicação ou resposta.
// O lote nunca é abortado por causa dela.
func formatServiceError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
