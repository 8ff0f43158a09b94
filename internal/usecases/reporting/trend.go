package reporting

import "github.com/vfg2006/rank-tracker-api/internal/domain"

const (
	MonthlyTrendThreshold = 5
	WeeklyTrendThreshold  = 3
)

// MonthlyTrend compara a primeira e a última posição não nula da janela
func MonthlyTrend(ranks []int) domain.Trend {
	if len(ranks) <= 1 {
		return domain.TrendNew
	}
	return classifyTrend(ranks[0]-ranks[len(ranks)-1], MonthlyTrendThreshold)
}

// WeeklyTrend compara apenas as duas últimas posições não nulas
func WeeklyTrend(ranks []int) domain.Trend {
	if len(ranks) <= 1 {
		return domain.TrendNew
	}
	return classifyTrend(ranks[len(ranks)-2]-ranks[len(ranks)-1], WeeklyTrendThreshold)
}

func classifyTrend(totalChange, threshold int) domain.Trend {
	switch {
	case totalChange > threshold:
		return domain.TrendImproved
	case totalChange < -threshold:
		return domain.TrendDeclined
	default:
		return domain.TrendStable
	}
}
