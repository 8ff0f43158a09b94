package serp

import (
	"context"

	"github.com/shopspring/decimal"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/incrementalclient"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

const defaultLanguageCode = "en"

// IncrementalDepthProvider faz uma requisição por profundidade; quem chama decide quando parar
type IncrementalDepthProvider struct {
	client        incrementalclient.Client
	gate          pacing.Gate
	languageCode  string
	estimatedCost decimal.Decimal
}

func NewIncrementalDepthProvider(client incrementalclient.Client, gate pacing.Gate, languageCode string, estimatedCost decimal.Decimal) *IncrementalDepthProvider {
	if gate == nil {
		gate = pacing.NoopGate{}
	}
	if languageCode == "" {
		languageCode = defaultLanguageCode
	}
	return &IncrementalDepthProvider{
		client:        client,
		gate:          gate,
		languageCode:  languageCode,
		estimatedCost: estimatedCost,
	}
}

func (p *IncrementalDepthProvider) Name() string {
	return incrementalclient.ProviderName
}

func (p *IncrementalDepthProvider) SupportsPartialDepth() bool {
	return true
}

func (p *IncrementalDepthProvider) Query(ctx context.Context, params serpdomain.QueryParams) (*serpdomain.QueryResult, error) {
	if err := p.gate.Wait(ctx, p.Name()); err != nil {
		return nil, serpdomain.ClassifyTransportError(p.Name(), err)
	}

	resp, err := p.client.LiveOrganic(ctx, incrementalclient.Task{
		Keyword:      params.Keyword,
		LocationCode: params.LocationCode,
		LanguageCode: p.languageCode,
		Depth:        params.Depth,
	})
	if err != nil {
		recordQuery(ctx, p.Name(), params, nil, err)
		return nil, err
	}

	cost := p.estimatedCost
	if reported := resp.TotalCost(); reported > 0 {
		cost = decimal.NewFromFloat(reported)
	}

	result := serpdomain.NewQueryResult(p.Name(), truncate(resp.OrganicResults(), params.Depth), params.Domain, cost)
	recordQuery(ctx, p.Name(), params, result, nil)

	return result, nil
}
