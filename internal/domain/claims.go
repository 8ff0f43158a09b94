package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso da API
const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleClient   = 3
)

// Claims identifica quem chama a API. Tokens de cliente ficam restritos ao próprio ClientID.
type Claims struct {
	Name     string  `json:"name"`
	RoleID   int     `json:"role_id"`
	ClientID *string `json:"client_id,omitempty"`
	jwt.RegisteredClaims
}

// IsClient indica se o token pertence a um cliente final
func (c *Claims) IsClient() bool {
	return c.RoleID == RoleClient
}
