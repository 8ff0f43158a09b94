package reporting

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

var ErrOwnerRequired = errors.New("domain ou clientId é obrigatório")

// ObservationReader lê o histórico de observações em ordem cronológica
type ObservationReader interface {
	Query(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error)
}

// Aggregator monta os relatórios mensal e semanal a partir do histórico.
// Ausência de dados gera um relatório zerado, nunca erro.
type Aggregator struct {
	reader ObservationReader
	now    func() time.Time
}

func NewAggregator(reader ObservationReader) *Aggregator {
	return &Aggregator{
		reader: reader,
		now:    time.Now,
	}
}

type keywordKey struct {
	domain  string
	keyword string
}

// bucket agrupa as observações de um período
type bucket struct {
	period       period
	observations []*domain.RankObservation
	byKey        map[keywordKey][]*domain.RankObservation
	latest       map[keywordKey]*domain.RankObservation
}

func (b *bucket) hasData() bool {
	return len(b.observations) > 0
}

func (a *Aggregator) Monthly(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
	periods := monthlyPeriods(a.now(), normalizePeriods(filters.Periods, DefaultMonthlyPeriods))
	return a.build(ctx, filters, domain.ReportGranularityMonthly, periods, MonthlyTrend)
}

func (a *Aggregator) Weekly(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
	periods := weeklyPeriods(a.now(), normalizePeriods(filters.Periods, DefaultWeeklyPeriods))
	return a.build(ctx, filters, domain.ReportGranularityWeekly, periods, WeeklyTrend)
}

func (a *Aggregator) build(
	ctx context.Context,
	filters domain.ReportFilters,
	granularity string,
	periods []period,
	trend func([]int) domain.Trend,
) (*domain.RankReport, error) {
	domainName := utils.NormalizeDomain(filters.Domain)
	if domainName == "" && filters.ClientID == "" {
		return nil, ErrOwnerRequired
	}

	start := periods[0].start
	end := periods[len(periods)-1].end

	observations, err := a.reader.Query(ctx, domain.RankFilters{
		Domain:    domainName,
		ClientID:  filters.ClientID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	buckets := bucketize(periods, observations)
	keys := collectKeys(buckets)

	report := &domain.RankReport{
		Granularity: granularity,
		Domain:      domainName,
		ClientID:    filters.ClientID,
		GeneratedAt: a.now().UTC(),
		Periods:     make([]domain.PeriodStats, 0, len(buckets)),
		Keywords:    make([]domain.KeywordTimeline, 0, len(keys)),
		Comparison:  emptyComparison(),
	}

	for _, b := range buckets {
		report.Periods = append(report.Periods, periodStats(b))
	}

	for _, key := range keys {
		report.Keywords = append(report.Keywords, timeline(key, buckets, trend))
	}

	if previous, current := lastTwoWithData(buckets); previous != nil {
		report.Comparison = compare(previous, current, keys)
	}

	log.ForContext(ctx).WithField("domain", domainName).
		Debugf("Relatório %s gerado com %d observações e %d palavras-chave", granularity, len(observations), len(keys))

	return report, nil
}

func bucketize(periods []period, observations []domain.RankObservation) []*bucket {
	buckets := make([]*bucket, len(periods))
	for i, p := range periods {
		buckets[i] = &bucket{
			period:       p,
			observations: []*domain.RankObservation{},
			byKey:        make(map[keywordKey][]*domain.RankObservation),
			latest:       make(map[keywordKey]*domain.RankObservation),
		}
	}

	for i := range observations {
		o := &observations[i]
		for _, b := range buckets {
			if !b.period.contains(o.CheckedAt) {
				continue
			}

			key := keywordKey{domain: o.Domain, keyword: o.Keyword}
			b.observations = append(b.observations, o)
			b.byKey[key] = append(b.byKey[key], o)
			if current, ok := b.latest[key]; !ok || !o.CheckedAt.Before(current.CheckedAt) {
				b.latest[key] = o
			}
			break
		}
	}

	return buckets
}

func collectKeys(buckets []*bucket) []keywordKey {
	seen := make(map[keywordKey]struct{})
	keys := make([]keywordKey, 0)
	for _, b := range buckets {
		for key := range b.latest {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].domain != keys[j].domain {
			return keys[i].domain < keys[j].domain
		}
		return keys[i].keyword < keys[j].keyword
	})

	return keys
}

// periodStats usa apenas a observação mais recente de cada palavra-chave no período
func periodStats(b *bucket) domain.PeriodStats {
	stats := domain.PeriodStats{
		Period:       b.period.label,
		StartDate:    b.period.start,
		EndDate:      b.period.end,
		Observations: b.observations,
	}

	var sum, ranked int
	for _, o := range b.latest {
		stats.TotalKeywords++

		if o.Rank == nil {
			stats.NotRankingCount++
			continue
		}

		rank := *o.Rank
		sum += rank
		ranked++

		if rank <= 10 {
			stats.Top10++
		}
		if rank <= 30 {
			stats.Top30++
		}
		if rank <= 100 {
			stats.Top100++
		}
	}

	if ranked > 0 {
		stats.AverageRank = utils.RoundWithOneDecimalPlace(float64(sum) / float64(ranked))
	}

	return stats
}

func timeline(key keywordKey, buckets []*bucket, trend func([]int) domain.Trend) domain.KeywordTimeline {
	t := domain.KeywordTimeline{
		Domain:  key.domain,
		Keyword: key.keyword,
		History: make([]domain.KeywordPeriodEntry, 0, len(buckets)),
	}

	ranks := make([]int, 0, len(buckets))
	for _, b := range buckets {
		entry := domain.KeywordPeriodEntry{
			Period:       b.period.label,
			Observations: []*domain.RankObservation{},
		}

		if latest, ok := b.latest[key]; ok {
			entry.Rank = latest.Rank
			entry.Observations = b.byKey[key]
			t.CurrentRank = latest.Rank
			if latest.Rank != nil {
				ranks = append(ranks, *latest.Rank)
			}
		}

		t.History = append(t.History, entry)
	}

	if len(ranks) > 0 {
		best, worst, sum := ranks[0], ranks[0], 0
		for _, r := range ranks {
			if r < best {
				best = r
			}
			if r > worst {
				worst = r
			}
			sum += r
		}

		average := utils.RoundWithOneDecimalPlace(float64(sum) / float64(len(ranks)))
		t.BestRank = &best
		t.WorstRank = &worst
		t.AverageRank = &average
	}

	t.Trend = trend(ranks)
	return t
}

// lastTwoWithData retorna os dois períodos mais recentes que possuem observações
func lastTwoWithData(buckets []*bucket) (*bucket, *bucket) {
	var current, previous *bucket
	for i := len(buckets) - 1; i >= 0; i-- {
		if !buckets[i].hasData() {
			continue
		}
		if current == nil {
			current = buckets[i]
			continue
		}
		previous = buckets[i]
		break
	}

	if previous == nil {
		return nil, nil
	}
	return previous, current
}
