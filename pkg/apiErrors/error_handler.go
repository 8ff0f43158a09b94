package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrNotFound            = "VAL_004" // Rota não encontrada
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação

	// Erros de verificação de ranking
	ErrNetwork           = "NETWORK_ERROR"
	ErrTimeout           = "TIMEOUT"
	ErrIPNotWhitelisted  = "IP_NOT_WHITELISTED"
	ErrAuthFailed        = "AUTH_FAILED"
	ErrRateLimited       = "RATE_LIMITED"
	ErrProvider          = "PROVIDER_ERROR"
	ErrMalformedResponse = "MALFORMED_RESPONSE"
	ErrNotConfigured     = "NOT_CONFIGURED"
	ErrPersistence       = "PERSISTENCE_ERROR"
	ErrInvalidRankQuery  = "INVALID_REQUEST"
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,

	ErrNetwork:           http.StatusBadGateway,
	ErrTimeout:           http.StatusGatewayTimeout,
	ErrIPNotWhitelisted:  http.StatusBadGateway,
	ErrAuthFailed:        http.StatusBadGateway,
	ErrRateLimited:       http.StatusTooManyRequests,
	ErrProvider:          http.StatusBadGateway,
	ErrMalformedResponse: http.StatusBadGateway,
	ErrNotConfigured:     http.StatusServiceUnavailable,
	ErrPersistence:       http.StatusInternalServerError,
	ErrInvalidRankQuery:  http.StatusBadRequest,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code       string `json:"code"`                 // Código de erro para o cliente
	Message    string `json:"message,omitempty"`    // Mensagem descritiva (opcional)
	Suggestion string `json:"suggestion,omitempty"` // Ação sugerida ao cliente (opcional)
	Details    any    `json:"details,omitempty"`    // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	Write(w, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Write escreve um APIError já montado
func Write(w http.ResponseWriter, apiErr APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(apiErr.Code))
	json.NewEncoder(w).Encode(apiErr)
}
