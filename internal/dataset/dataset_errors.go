package dataset

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de importação de dataset
var (
	ErrMissingColumn = errors.New("required column is missing")
	ErrEmptyFile     = errors.New("file has no data rows")
	ErrInvalidValue  = errors.New("cell has an invalid value")
)

// ParseError é um erro de importação com contexto adicional
type ParseError struct {
	Err    error  // Erro base
	Column string // Coluna envolvida (quando aplicável)
	Line   int    // Linha do arquivo envolvida (0 quando não se aplica)
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	switch {
	case e.Column != "" && e.Line > 0:
		return fmt.Sprintf("%s: column %q at line %d", e.Err.Error(), e.Column, e.Line)
	case e.Column != "":
		return fmt.Sprintf("%s: column %q", e.Err.Error(), e.Column)
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d", e.Err.Error(), e.Line)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ParseError) Unwrap() error {
	return e.Err
}
