package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

func TestMonthlyTrend(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []int
		expected domain.Trend
	}{
		{"melhora acima do limite", []int{40, 38, 30}, domain.TrendImproved},
		{"estável", []int{10, 10, 10}, domain.TrendStable},
		{"amostra única", []int{30}, domain.TrendNew},
		{"sem amostras", nil, domain.TrendNew},
		{"queda acima do limite", []int{10, 25}, domain.TrendDeclined},
		{"variação no limite é estável", []int{20, 15}, domain.TrendStable},
		{"usa primeira e última", []int{20, 2, 19}, domain.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthlyTrend(tt.ranks))
		})
	}
}

func TestWeeklyTrend(t *testing.T) {
	tests := []struct {
		name     string
		ranks    []int
		expected domain.Trend
	}{
		{"melhora acima de 3", []int{30, 26}, domain.TrendImproved},
		{"queda acima de 3", []int{10, 14}, domain.TrendDeclined},
		{"usa apenas as duas últimas", []int{50, 20, 22}, domain.TrendStable},
		{"amostra única", []int{7}, domain.TrendNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WeeklyTrend(tt.ranks))
		})
	}
}
