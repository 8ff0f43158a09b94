package serp

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/bulkclient"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/incrementalclient"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/mocks"
	"github.com/vfg2006/rank-tracker-api/internal/config"
)

func organicPage(page int, domains ...string) bulkclient.Page {
	results := make([]bulkclient.Result, 0, len(domains))
	for i, d := range domains {
		results = append(results, bulkclient.Result{Type: "organic", Position: i + 1, Link: "https://" + d + "/", Domain: d})
	}
	return bulkclient.Page{Page: page, Results: results}
}

func TestBulkPageProvider_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockBulkClient(ctrl)
	provider := NewBulkPageProvider(client, nil, decimal.RequireFromString("0.0025"))

	page1 := organicPage(1, "a.com", "b.com", "c.com", "d.com", "e.com", "f.com", "g.com", "h.com", "i.com", "j.com")
	page1.Results = append([]bulkclient.Result{{Type: "ads", Link: "https://target.com/promo", Domain: "target.com"}}, page1.Results...)
	page2 := organicPage(2, "k.com", "l.com", "www.target.com")

	client.EXPECT().
		Search(gomock.Any(), bulkclient.SearchParams{Query: "shoes", Location: "United States", Pages: 2}).
		Return(&bulkclient.SearchResponse{RequestInfo: bulkclient.RequestInfo{Success: true}, Pages: []bulkclient.Page{page1, page2}}, nil)

	result, err := provider.Query(context.Background(), serpdomain.QueryParams{
		Keyword:  "shoes",
		Domain:   "https://www.Target.com/page",
		Location: "United States",
		Depth:    20,
	})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.Equal(t, 13, *result.Rank)
	assert.Equal(t, "https://www.target.com/", *result.MatchedURL)
	assert.Equal(t, 13, result.ResultsScanned)
	assert.True(t, decimal.RequireFromString("0.005").Equal(result.Cost))
	assert.Equal(t, bulkclient.ProviderName, result.Provider)
	assert.False(t, provider.SupportsPartialDepth())
}

func TestBulkPageProvider_QueryTruncatesToDepth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockBulkClient(ctrl)
	provider := NewBulkPageProvider(client, nil, decimal.RequireFromString("0.0025"))

	client.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(&bulkclient.SearchResponse{Pages: []bulkclient.Page{
			organicPage(1, "a.com", "b.com", "c.com", "d.com", "e.com", "f.com", "g.com", "h.com", "i.com", "j.com", "target.com"),
		}}, nil)

	result, err := provider.Query(context.Background(), serpdomain.QueryParams{Keyword: "shoes", Domain: "target.com", Depth: 10})
	require.NoError(t, err)

	assert.False(t, result.Found)
	assert.Nil(t, result.Rank)
	assert.Equal(t, 10, result.ResultsScanned)
}

func TestBulkPageProvider_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockBulkClient(ctrl)
	provider := NewBulkPageProvider(client, nil, decimal.Zero)

	providerErr := serpdomain.NewProviderError(bulkclient.ProviderName, serpdomain.ErrorKindAuth, 401, "invalid api key")
	client.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, providerErr)

	_, err := provider.Query(context.Background(), serpdomain.QueryParams{Keyword: "shoes", Domain: "target.com", Depth: 10})
	assert.ErrorIs(t, err, providerErr)
}

func TestIncrementalDepthProvider_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockIncrementalClient(ctrl)
	provider := NewIncrementalDepthProvider(client, nil, "", decimal.RequireFromString("0.002"))

	tests := []struct {
		name         string
		response     *incrementalclient.LiveResponse
		expectedRank *int
		expectedCost string
	}{
		{
			name: "custo informado pelo provedor",
			response: &incrementalclient.LiveResponse{
				StatusCode: incrementalclient.StatusOK,
				Cost:       0.003,
				Tasks: []incrementalclient.TaskResult{{
					StatusCode: incrementalclient.StatusOK,
					Result: []incrementalclient.ResultPage{{Items: []incrementalclient.Item{
						{Type: "organic", Domain: "other.com", URL: "https://other.com"},
						{Type: "people_also_ask"},
						{Type: "organic", Domain: "shop.target.com", URL: "https://shop.target.com/x"},
					}}},
				}},
			},
			expectedRank: intPtr(2),
			expectedCost: "0.003",
		},
		{
			name: "custo estimado quando ausente",
			response: &incrementalclient.LiveResponse{
				StatusCode: incrementalclient.StatusOK,
				Tasks:      []incrementalclient.TaskResult{{StatusCode: incrementalclient.StatusOK}},
			},
			expectedRank: nil,
			expectedCost: "0.002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client.EXPECT().
				LiveOrganic(gomock.Any(), incrementalclient.Task{Keyword: "shoes", LocationCode: 2840, LanguageCode: "en", Depth: 10}).
				Return(tt.response, nil)

			result, err := provider.Query(context.Background(), serpdomain.QueryParams{
				Keyword:      "shoes",
				Domain:       "target.com",
				LocationCode: 2840,
				Depth:        10,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.expectedRank, result.Rank)
			assert.True(t, decimal.RequireFromString(tt.expectedCost).Equal(result.Cost), result.Cost.String())
		})
	}

	assert.True(t, provider.SupportsPartialDepth())
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		serp        config.Serp
		expected    string
		expectedErr error
	}{
		{
			name:     "automático prefere incremental",
			serp:     config.Serp{IncrementalLogin: "user", IncrementalPassword: "pass", BulkAPIKey: "key"},
			expected: incrementalclient.ProviderName,
		},
		{
			name:     "automático usa bulk como alternativa",
			serp:     config.Serp{BulkAPIKey: "key"},
			expected: bulkclient.ProviderName,
		},
		{
			name:     "bulk explícito",
			serp:     config.Serp{Provider: "bulk", IncrementalLogin: "user", IncrementalPassword: "pass", BulkAPIKey: "key"},
			expected: bulkclient.ProviderName,
		},
		{
			name:        "incremental sem credenciais",
			serp:        config.Serp{Provider: "incremental", BulkAPIKey: "key"},
			expectedErr: serpdomain.ErrNotConfigured,
		},
		{
			name:        "nenhuma credencial",
			serp:        config.Serp{},
			expectedErr: serpdomain.ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(&config.Config{Serp: tt.serp}, nil)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, provider)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, provider.Name())
		})
	}

	_, err := NewProvider(&config.Config{Serp: config.Serp{Provider: "scraper"}}, nil)
	assert.ErrorContains(t, err, "provedor desconhecido")
}

func intPtr(v int) *int {
	return &v
}
