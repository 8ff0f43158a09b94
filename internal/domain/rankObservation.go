// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RankSource identifica a origem de uma observação de ranking
type RankSource string

const (
	RankSourceBulk        RankSource = "bulk-provider"
	RankSourceIncremental RankSource = "incremental-provider"
	RankSourceManual      RankSource = "manual"
)

// RankObservation representa o resultado de uma verificação de posição na SERP
type RankObservation struct {
	ID           string          `json:"id"`
	Domain       string          `json:"domain"`
	Keyword      string          `json:"keyword"`
	Location     string          `json:"location"`
	LocationCode int             `json:"locationCode"`
	Rank         *int            `json:"rank"` // nil quando não encontrado na profundidade pesquisada
	InTop100     bool            `json:"inTop100"`
	Difficulty   *int            `json:"difficulty,omitempty"`
	MatchedURL   *string         `json:"matchedUrl,omitempty"`
	CheckedAt    time.Time       `json:"checkedAt"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	PreviousRank *int            `json:"previousRank"`
	RankChange   *int            `json:"rankChange"` // Valor positivo = subiu, negativo = caiu
	Source       RankSource      `json:"source"`
	ClientID     *string         `json:"client,omitempty"`
	KeywordID    *string         `json:"keywordId,omitempty"`
	Cost         decimal.Decimal `json:"cost"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// SetCheckedAt define o instante da verificação em UTC e deriva mês e ano
func (o *RankObservation) SetCheckedAt(t time.Time) {
	o.CheckedAt = t.UTC()
	o.Month = int(o.CheckedAt.Month())
	o.Year = o.CheckedAt.Year()
}

// SetRank atualiza a posição mantendo InTop100 coerente
func (o *RankObservation) SetRank(rank *int) {
	o.Rank = rank
	o.InTop100 = rank != nil
}

// DayBounds retorna o início (inclusivo) e o fim (exclusivo) do dia da verificação
func (o *RankObservation) DayBounds() (time.Time, time.Time) {
	return DayBounds(o.CheckedAt)
}

// DayBounds retorna o intervalo [00:00, 24:00) em UTC do dia de t
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// RankFilters filtra observações no histórico de ranking
type RankFilters struct {
	Domain    string
	Keyword   string
	ClientID  string
	StartDate *time.Time
	EndDate   *time.Time
}

// HasOwner indica se o filtro identifica um domínio ou cliente
func (f RankFilters) HasOwner() bool {
	return f.Domain != "" || f.ClientID != ""
}
