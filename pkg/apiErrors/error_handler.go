package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros de dataset (DATA)
	ErrMissingColumn = "DATA_001" // Coluna obrigatória ausente no CSV
	ErrEmptyDataset  = "DATA_002" // Dataset sem linhas
	ErrInvalidSpend  = "DATA_003" // Linha com investimento inválido
	ErrInvalidRow    = "DATA_004" // Linha com valor não numérico

	// Erros de sessão (SES)
	ErrSessionNotFound = "SES_001" // Sessão não encontrada

	// Erros do servidor (SRV)
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrMissingColumn:       http.StatusUnprocessableEntity,
	ErrEmptyDataset:        http.StatusUnprocessableEntity,
	ErrInvalidSpend:        http.StatusUnprocessableEntity,
	ErrInvalidRow:          http.StatusUnprocessableEntity,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
