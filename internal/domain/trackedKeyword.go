package domain

import "time"

// TrackedKeyword é uma palavra-chave acompanhada diariamente para um cliente
type TrackedKeyword struct {
	ID        string    `json:"id"`
	ClientID  *string   `json:"clientId,omitempty"`
	Domain    string    `json:"domain"`
	Keyword   string    `json:"keyword"`
	Location  string    `json:"location"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
