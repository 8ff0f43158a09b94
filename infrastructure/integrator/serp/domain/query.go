package serpdomain

import (
	"github.com/shopspring/decimal"

	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

// QueryParams são os parâmetros de uma consulta de ranking a um provedor
type QueryParams struct {
	Keyword      string
	Domain       string
	Location     string
	LocationCode int
	Depth        int
}

// OrganicResult é um resultado orgânico já normalizado
type OrganicResult struct {
	Position int
	URL      string
	Domain   string
	Title    string
}

// QueryResult é o resultado de uma consulta com a profundidade solicitada
type QueryResult struct {
	Found          bool
	Rank           *int
	MatchedURL     *string
	ResultsScanned int
	Cost           decimal.Decimal
	Provider       string
}

// ScanOrganic percorre os resultados em ordem e retorna o primeiro que pertence ao domínio
func ScanOrganic(results []OrganicResult, domain string) (rank *int, matchedURL *string) {
	for _, r := range results {
		host := r.Domain
		if host == "" {
			host = r.URL
		}
		if utils.DomainMatches(host, domain) {
			position := r.Position
			url := r.URL
			return &position, &url
		}
	}
	return nil, nil
}

// NewQueryResult monta o resultado a partir dos resultados orgânicos lidos
func NewQueryResult(provider string, results []OrganicResult, domain string, cost decimal.Decimal) *QueryResult {
	rank, matchedURL := ScanOrganic(results, domain)
	return &QueryResult{
		Found:          rank != nil,
		Rank:           rank,
		MatchedURL:     matchedURL,
		ResultsScanned: len(results),
		Cost:           cost,
		Provider:       provider,
	}
}
