package ranking

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
)

// DefaultDepthTiers são as profundidades consultadas em ordem até encontrar o domínio
var DefaultDepthTiers = []int{10, 20, 50, 100}

const DefaultMaxDepth = 100

// Modos de busca usados pelo checker
const (
	SearchModeProgressive = "progressive"
	SearchModeSingleShot  = "single-shot"
)

type CheckParams struct {
	Keyword      string
	Domain       string
	Location     string
	LocationCode int
}

// CheckOutcome é o resultado consolidado de todas as consultas de uma verificação
type CheckOutcome struct {
	Found         bool
	Rank          *int
	MatchedURL    *string
	Cost          decimal.Decimal
	Queries       int
	DepthSearched int
	Mode          string
	Source        string
}

// RankChecker aplica a busca progressiva por profundidade sobre um provedor
type RankChecker struct {
	provider serp.Provider
	tiers    []int
	maxDepth int
}

func NewRankChecker(provider serp.Provider, tiers []int, maxDepth int) *RankChecker {
	if len(tiers) == 0 {
		tiers = DefaultDepthTiers
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &RankChecker{
		provider: provider,
		tiers:    tiers,
		maxDepth: maxDepth,
	}
}

func (c *RankChecker) Configured() bool {
	return c != nil && c.provider != nil
}

// Plan retorna as profundidades que serão consultadas e o modo de busca
func (c *RankChecker) Plan() ([]int, string) {
	if !c.provider.SupportsPartialDepth() {
		return []int{c.maxDepth}, SearchModeSingleShot
	}

	plan := make([]int, 0, len(c.tiers)+1)
	for i, tier := range c.tiers {
		if tier <= 0 || (i > 0 && tier <= c.tiers[i-1]) {
			return []int{c.maxDepth}, SearchModeSingleShot
		}
		if tier > c.maxDepth {
			break
		}
		plan = append(plan, tier)
	}

	if len(plan) == 0 || plan[len(plan)-1] < c.maxDepth {
		plan = append(plan, c.maxDepth)
	}

	if len(plan) == 1 {
		return plan, SearchModeSingleShot
	}
	return plan, SearchModeProgressive
}

// Check consulta as profundidades em ordem crescente e para na primeira que encontra o domínio.
// O custo é a soma de todas as consultas feitas.
func (c *RankChecker) Check(ctx context.Context, params CheckParams) (*CheckOutcome, error) {
	if !c.Configured() {
		return nil, NewRankError(ErrNotConfigured, CodeNotConfigured, "")
	}

	plan, mode := c.Plan()
	outcome := &CheckOutcome{
		Cost:   decimal.Zero,
		Mode:   mode,
		Source: c.provider.Name(),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"keyword":  params.Keyword,
		"domain":   params.Domain,
		"provider": c.provider.Name(),
	})

	for _, depth := range plan {
		result, err := c.provider.Query(ctx, serpdomain.QueryParams{
			Keyword:      params.Keyword,
			Domain:       params.Domain,
			Location:     params.Location,
			LocationCode: params.LocationCode,
			Depth:        depth,
		})
		if err != nil {
			rankErr := ClassifyError(err)
			rankErr.Keyword = params.Keyword
			return nil, rankErr
		}

		outcome.Queries++
		outcome.DepthSearched = depth
		outcome.Cost = outcome.Cost.Add(result.Cost)

		if result.Found {
			outcome.Found = true
			outcome.Rank = result.Rank
			outcome.MatchedURL = result.MatchedURL
			logger.WithField("rank", *result.Rank).Debugf("Domínio encontrado com profundidade %d", depth)
			return outcome, nil
		}

		if err := ctx.Err(); err != nil {
			rankErr := ClassifyError(err)
			rankErr.Keyword = params.Keyword
			return nil, rankErr
		}
	}

	logger.Debugf("Domínio não encontrado até a profundidade %d", outcome.DepthSearched)
	return outcome, nil
}
