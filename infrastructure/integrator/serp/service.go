package serp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/bulkclient"
	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/incrementalclient"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/metrics"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

const (
	ProviderModeIncremental = "incremental"
	ProviderModeBulk        = "bulk"
)

// Provider consulta um serviço de SERP para uma palavra-chave na profundidade informada
type Provider interface {
	Query(ctx context.Context, params serpdomain.QueryParams) (*serpdomain.QueryResult, error)
	Name() string
	// SupportsPartialDepth indica se consultas rasas custam menos que a profundidade máxima
	SupportsPartialDepth() bool
}

// NewProvider escolhe o provedor pela configuração. Sem modo explícito, prefere o
// incremental e usa o de páginas em lote como alternativa.
func NewProvider(cfg *config.Config, gate pacing.Gate) (Provider, error) {
	if gate == nil {
		gate = pacing.NoopGate{}
	}

	serpCfg := cfg.Serp
	timeout := time.Duration(serpCfg.RequestTimeoutSeconds) * time.Second

	newIncremental := func() Provider {
		client := incrementalclient.NewClient(serpCfg.IncrementalURL, serpCfg.IncrementalLogin, serpCfg.IncrementalPassword, timeout)
		return NewIncrementalDepthProvider(client, gate, serpCfg.LanguageCode, decimal.NewFromFloat(serpCfg.IncrementalCost))
	}
	newBulk := func() Provider {
		client := bulkclient.NewClient(serpCfg.BulkURL, serpCfg.BulkAPIKey, timeout)
		return NewBulkPageProvider(client, gate, decimal.NewFromFloat(serpCfg.BulkCostPerPage))
	}

	switch strings.ToLower(strings.TrimSpace(serpCfg.Provider)) {
	case ProviderModeIncremental:
		if !serpCfg.HasIncrementalCredentials() {
			return nil, serpdomain.ErrNotConfigured
		}
		return newIncremental(), nil
	case ProviderModeBulk:
		if !serpCfg.HasBulkCredentials() {
			return nil, serpdomain.ErrNotConfigured
		}
		return newBulk(), nil
	case "":
		if serpCfg.HasIncrementalCredentials() {
			return newIncremental(), nil
		}
		if serpCfg.HasBulkCredentials() {
			return newBulk(), nil
		}
		return nil, serpdomain.ErrNotConfigured
	default:
		return nil, errors.New("serp: provedor desconhecido: " + serpCfg.Provider)
	}
}

func truncate(results []serpdomain.OrganicResult, depth int) []serpdomain.OrganicResult {
	if depth > 0 && len(results) > depth {
		return results[:depth]
	}
	return results
}

func recordQuery(ctx context.Context, provider string, params serpdomain.QueryParams, result *serpdomain.QueryResult, err error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"provider": provider,
		"keyword":  params.Keyword,
		"domain":   params.Domain,
		"depth":    params.Depth,
	})

	if err != nil {
		status := string(serpdomain.ErrorKindNetwork)
		var providerErr *serpdomain.ProviderError
		if errors.As(err, &providerErr) {
			status = string(providerErr.Kind)
		}
		metrics.RecordSerpQuery(provider, status, decimal.Zero)
		logger.WithError(err).Warn("Falha na consulta ao provedor de SERP")
		return
	}

	metrics.RecordSerpQuery(provider, "success", result.Cost)
	if result.Found {
		logger = logger.WithField("rank", *result.Rank)
	}
	logger.Debugf("Consulta concluída: %d resultados lidos", result.ResultsScanned)
}
