package chatting

import "errors"

// Erros específicos para o contexto de sessões de chat
var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrEmptyDataset    = errors.New("chat session requires a dataset")
	ErrGenerateID      = errors.New("error generating session ID")
)
