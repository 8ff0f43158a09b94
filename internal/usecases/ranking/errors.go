package ranking

import (
	"context"
	"errors"
	"fmt"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
)

// Códigos de erro expostos pela API e pelos resultados de lote
const (
	CodeNetworkError      = "NETWORK_ERROR"
	CodeTimeout           = "TIMEOUT"
	CodeIPNotWhitelisted  = "IP_NOT_WHITELISTED"
	CodeAuthFailed        = "AUTH_FAILED"
	CodeRateLimited       = "RATE_LIMITED"
	CodeProviderError     = "PROVIDER_ERROR"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeNotConfigured     = "NOT_CONFIGURED"
	CodePersistenceError  = "PERSISTENCE_ERROR"
	CodeInvalidRequest    = "INVALID_REQUEST"
)

var (
	ErrNetwork           = errors.New("falha de rede ao consultar o provedor")
	ErrTimeout           = errors.New("tempo limite excedido ao consultar o provedor")
	ErrIPNotWhitelisted  = errors.New("IP do servidor não autorizado no provedor")
	ErrAuthFailed        = errors.New("credenciais do provedor inválidas")
	ErrRateLimited       = errors.New("limite de requisições do provedor atingido")
	ErrProvider          = errors.New("erro reportado pelo provedor")
	ErrMalformedResponse = errors.New("resposta inválida do provedor")
	ErrNotConfigured     = errors.New("nenhum provedor de SERP configurado")
	ErrPersistence       = errors.New("erro ao salvar observação de ranking")
	ErrInvalidRequest    = errors.New("requisição inválida")
)

var suggestions = map[string]string{
	CodeNetworkError:     "Falha temporária de rede. Tente novamente em alguns instantes.",
	CodeTimeout:          "O provedor demorou para responder. Tente novamente mais tarde.",
	CodeIPNotWhitelisted: "Adicione o IP do servidor à lista de IPs permitidos do provedor.",
	CodeAuthFailed:       "Verifique as credenciais do provedor de SERP.",
	CodeRateLimited:      "Limite de requisições atingido. Aguarde antes de tentar novamente.",
	CodeNotConfigured:    "Configure as credenciais de um provedor de SERP.",
}

// RankError é um erro classificado de verificação de ranking
type RankError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Keyword string // Palavra-chave envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *RankError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RankError) Unwrap() error {
	return e.Err
}

// Retryable indica se o erro é uma falha transitória de rede
func (e *RankError) Retryable() bool {
	return e.Code == CodeNetworkError
}

// Suggestion retorna uma orientação para o usuário, quando houver
func (e *RankError) Suggestion() string {
	return suggestions[e.Code]
}

func NewRankError(err error, code string, details string) *RankError {
	return &RankError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// ClassifyError converte qualquer erro da verificação em RankError
func ClassifyError(err error) *RankError {
	if err == nil {
		return nil
	}

	var rankErr *RankError
	if errors.As(err, &rankErr) {
		return rankErr
	}

	var providerErr *serpdomain.ProviderError
	if errors.As(err, &providerErr) {
		return fromProviderError(providerErr)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NewRankError(ErrTimeout, CodeTimeout, err.Error())
	}

	return NewRankError(ErrProvider, CodeProviderError, err.Error())
}

func fromProviderError(err *serpdomain.ProviderError) *RankError {
	switch err.Kind {
	case serpdomain.ErrorKindNetwork:
		return NewRankError(ErrNetwork, CodeNetworkError, err.Error())
	case serpdomain.ErrorKindTimeout:
		return NewRankError(ErrTimeout, CodeTimeout, err.Error())
	case serpdomain.ErrorKindIPNotWhitelisted:
		return NewRankError(ErrIPNotWhitelisted, CodeIPNotWhitelisted, err.Message)
	case serpdomain.ErrorKindAuth:
		return NewRankError(ErrAuthFailed, CodeAuthFailed, err.Message)
	case serpdomain.ErrorKindRateLimited:
		return NewRankError(ErrRateLimited, CodeRateLimited, err.Message)
	case serpdomain.ErrorKindMalformedResponse:
		return NewRankError(ErrMalformedResponse, CodeMalformedResponse, err.Error())
	case serpdomain.ErrorKindNotConfigured:
		return NewRankError(ErrNotConfigured, CodeNotConfigured, "")
	default:
		return NewRankError(ErrProvider, CodeProviderError, err.Message)
	}
}
