package deciding

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de decisão de orçamento
var (
	// Erros estruturais do lote
	ErrEmptyBatch = errors.New("batch has no campaign records")

	// Erros de linha
	ErrInvalidSpend = errors.New("campaign record has non-positive spend")

	// Erros de configuração
	ErrUnknownSpendPolicy = errors.New("unknown spend policy")
)

// DecisionError é um erro com contexto adicional do motor de decisão
type DecisionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Row     int    // Índice da linha envolvida (-1 quando não se aplica)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DecisionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DecisionError) Unwrap() error {
	return e.Err
}

// NewDecisionError cria um novo DecisionError sem linha associada
func NewDecisionError(err error, code string, details string) *DecisionError {
	return &DecisionError{
		Err:     err,
		Code:    code,
		Row:     -1,
		Details: details,
	}
}

// NewRowDecisionError cria um novo DecisionError associado a uma linha do lote
func NewRowDecisionError(err error, code string, row int, details string) *DecisionError {
	return &DecisionError{
		Err:     err,
		Code:    code,
		Row:     row,
		Details: details,
	}
}
