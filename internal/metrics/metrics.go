package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

var (
	SerpQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_tracker_serp_queries_total",
			Help: "Total de consultas enviadas aos provedores de SERP",
		},
		[]string{"provider", "status"},
	)

	SerpCostTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_tracker_serp_cost_total",
			Help: "Custo estimado acumulado das consultas de SERP",
		},
		[]string{"provider"},
	)

	KeywordChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_tracker_keyword_checks_total",
			Help: "Total de verificações de palavras-chave por status",
		},
		[]string{"status"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rank_tracker_batch_duration_seconds",
			Help:    "Duração do processamento de lotes de palavras-chave",
			Buckets: []float64{5, 15, 30, 60, 120, 300, 600},
		},
	)
)

// RecordSerpQuery registra uma consulta a um provedor; status é "success" ou o tipo do erro
func RecordSerpQuery(provider, status string, cost decimal.Decimal) {
	SerpQueriesTotal.WithLabelValues(provider, status).Inc()
	if cost.IsPositive() {
		SerpCostTotal.WithLabelValues(provider).Add(cost.InexactFloat64())
	}
}

func RecordKeywordCheck(status string) {
	KeywordChecksTotal.WithLabelValues(status).Inc()
}

func ObserveBatch(duration time.Duration) {
	BatchDuration.Observe(duration.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
