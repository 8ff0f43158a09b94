package serpdomain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
)

type ErrorKind string

const (
	ErrorKindAuth              ErrorKind = "auth"
	ErrorKindIPNotWhitelisted  ErrorKind = "ip_not_whitelisted"
	ErrorKindRateLimited       ErrorKind = "rate_limited"
	ErrorKindMalformedResponse ErrorKind = "malformed"
	ErrorKindTask              ErrorKind = "task"
	ErrorKindTimeout           ErrorKind = "timeout"
	ErrorKindNetwork           ErrorKind = "network"
	ErrorKindNotConfigured     ErrorKind = "not_configured"
)

var ErrNotConfigured = &ProviderError{Kind: ErrorKindNotConfigured, Message: "nenhum provedor de SERP configurado"}

// ProviderError representa uma falha de um provedor de SERP já classificada
type ProviderError struct {
	Provider   string
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	prefix := "serp"
	if e.Provider != "" {
		prefix = "serp " + e.Provider
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d): %s", prefix, e.Kind, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", prefix, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Kind, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is permite comparar com ErrNotConfigured via errors.Is
func (e *ProviderError) Is(target error) bool {
	t, ok := target.(*ProviderError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Provider == "" && t.StatusCode == 0
}

func NewProviderError(provider string, kind ErrorKind, statusCode int, message string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, StatusCode: statusCode, Message: message}
}

var networkMessages = []string{
	"connection reset",
	"socket hang up",
	"broken pipe",
	"unexpected eof",
	"server closed idle connection",
}

// ClassifyTransportError converte uma falha de transporte HTTP em ProviderError
func ClassifyTransportError(provider string, err error) *ProviderError {
	if err == nil {
		return nil
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ProviderError{Provider: provider, Kind: ErrorKindTimeout, Message: "tempo limite excedido", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ProviderError{Provider: provider, Kind: ErrorKindTimeout, Message: "tempo limite excedido", Err: err}
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return &ProviderError{Provider: provider, Kind: ErrorKindNetwork, Message: "falha de rede", Err: err}
	}

	msg := strings.ToLower(err.Error())
	for _, m := range networkMessages {
		if strings.Contains(msg, m) {
			return &ProviderError{Provider: provider, Kind: ErrorKindNetwork, Message: "falha de rede", Err: err}
		}
	}

	return &ProviderError{Provider: provider, Kind: ErrorKindTask, Message: "falha na requisição", Err: err}
}
