package domain

import "time"

// Granularidade do relatório
const (
	ReportGranularityMonthly = "monthly"
	ReportGranularityWeekly  = "weekly"
)

// Trend classifica a evolução de uma palavra-chave na janela do relatório
type Trend string

const (
	TrendImproved Trend = "improved"
	TrendDeclined Trend = "declined"
	TrendStable   Trend = "stable"
	TrendNew      Trend = "new"
)

// ComparisonStatus classifica uma palavra-chave entre os dois períodos mais recentes
type ComparisonStatus string

const (
	ComparisonImproved    ComparisonStatus = "improved"
	ComparisonDeclined    ComparisonStatus = "declined"
	ComparisonUnchanged   ComparisonStatus = "unchanged"
	ComparisonNowRanking  ComparisonStatus = "now_ranking"
	ComparisonLostRanking ComparisonStatus = "lost_ranking"
	ComparisonNew         ComparisonStatus = "new"
	ComparisonNotChecked  ComparisonStatus = "not_checked"
)

// ReportFilters identifica o dono do relatório e quantos períodos devem ser calculados
type ReportFilters struct {
	Domain   string `json:"domain,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Periods  int    `json:"periodsRequested"`
}

// PeriodStats contém as estatísticas de um período (mês ou janela de 7 dias)
type PeriodStats struct {
	Period          string             `json:"period"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         time.Time          `json:"endDate"`
	TotalKeywords   int                `json:"totalKeywords"`
	AverageRank     float64            `json:"averageRank"`
	Top10           int                `json:"top10"`
	Top30           int                `json:"top30"`
	Top100          int                `json:"top100"`
	NotRankingCount int                `json:"notRankingCount"`
	Observations    []*RankObservation `json:"observations"`
}

// KeywordPeriodEntry é a posição representativa de uma palavra-chave em um período
type KeywordPeriodEntry struct {
	Period       string             `json:"period"`
	Rank         *int               `json:"rank"`
	Observations []*RankObservation `json:"observations"`
}

// KeywordTimeline é a linha do tempo de uma palavra-chave no relatório
type KeywordTimeline struct {
	Domain      string               `json:"domain"`
	Keyword     string               `json:"keyword"`
	History     []KeywordPeriodEntry `json:"history"`
	CurrentRank *int                 `json:"currentRank"`
	BestRank    *int                 `json:"bestRank"`
	WorstRank   *int                 `json:"worstRank"`
	AverageRank *float64             `json:"averageRank"`
	Trend       Trend                `json:"trend"`
}

// KeywordComparison compara uma palavra-chave entre dois períodos
type KeywordComparison struct {
	Domain       string           `json:"domain"`
	Keyword      string           `json:"keyword"`
	PreviousRank *int             `json:"previousRank"`
	CurrentRank  *int             `json:"currentRank"`
	Change       *int             `json:"change"`
	Status       ComparisonStatus `json:"status"`
}

// PeriodComparison compara os dois períodos mais recentes com dados
type PeriodComparison struct {
	PreviousPeriod string                   `json:"previousPeriod"`
	CurrentPeriod  string                   `json:"currentPeriod"`
	Counts         map[ComparisonStatus]int `json:"counts"`
	Keywords       []KeywordComparison      `json:"keywords"`
}

// RankReport é o relatório agregado de rankings (mensal ou semanal)
type RankReport struct {
	Granularity string            `json:"granularity"`
	Domain      string            `json:"domain,omitempty"`
	ClientID    string            `json:"clientId,omitempty"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Periods     []PeriodStats     `json:"periods"`
	Keywords    []KeywordTimeline `json:"keywords"`
	Comparison  PeriodComparison  `json:"comparison"`
}
