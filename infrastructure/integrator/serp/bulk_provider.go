package serp

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/bulkclient"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

// BulkPageProvider busca todas as páginas necessárias em uma única requisição.
// Opera em modo de consulta única: o custo é por página e não há ganho em consultas rasas.
type BulkPageProvider struct {
	client      bulkclient.Client
	gate        pacing.Gate
	costPerPage decimal.Decimal
}

func NewBulkPageProvider(client bulkclient.Client, gate pacing.Gate, costPerPage decimal.Decimal) *BulkPageProvider {
	if gate == nil {
		gate = pacing.NoopGate{}
	}
	return &BulkPageProvider{client: client, gate: gate, costPerPage: costPerPage}
}

func (p *BulkPageProvider) Name() string {
	return bulkclient.ProviderName
}

func (p *BulkPageProvider) SupportsPartialDepth() bool {
	return false
}

func (p *BulkPageProvider) Query(ctx context.Context, params serpdomain.QueryParams) (*serpdomain.QueryResult, error) {
	if err := p.gate.Wait(ctx, p.Name()); err != nil {
		return nil, serpdomain.ClassifyTransportError(p.Name(), err)
	}

	pages := bulkclient.PagesForDepth(params.Depth)

	resp, err := p.client.Search(ctx, bulkclient.SearchParams{
		Query:    params.Keyword,
		Location: params.Location,
		Pages:    pages,
	})
	if err != nil {
		recordQuery(ctx, p.Name(), params, nil, err)
		return nil, err
	}

	organic := truncate(resp.OrganicResults(), params.Depth)
	cost := p.costPerPage.Mul(decimal.NewFromInt(int64(pages)))

	result := serpdomain.NewQueryResult(p.Name(), organic, params.Domain, cost)
	recordQuery(ctx, p.Name(), params, result, nil)

	return result, nil
}
