package reporting

import (
	"time"

	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

const (
	DefaultMonthlyPeriods = 6
	DefaultWeeklyPeriods  = 4
	MaxPeriods            = 24

	weekLength = 7 * 24 * time.Hour
)

// period é uma janela do relatório. Meses usam [start, end); janelas semanais usam (start, end].
type period struct {
	label        string
	start        time.Time
	end          time.Time
	endInclusive bool
}

func (p period) contains(t time.Time) bool {
	if p.endInclusive {
		return t.After(p.start) && !t.After(p.end)
	}
	return !t.Before(p.start) && t.Before(p.end)
}

func normalizePeriods(requested, fallback int) int {
	if requested <= 0 {
		return fallback
	}
	if requested > MaxPeriods {
		return MaxPeriods
	}
	return requested
}

// monthlyPeriods retorna os últimos n meses de calendário, do mais antigo ao mais recente
func monthlyPeriods(now time.Time, n int) []period {
	current := utils.FirstDayOfMonth(now.UTC())

	periods := make([]period, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		periods = append(periods, period{
			label: start.Format("2006-01"),
			start: start,
			end:   start.AddDate(0, 1, 0),
		})
	}
	return periods
}

// weeklyPeriods retorna n janelas móveis de 7 dias terminando em now, do mais antigo ao mais recente
func weeklyPeriods(now time.Time, n int) []period {
	now = now.UTC()

	periods := make([]period, 0, n)
	for i := n - 1; i >= 0; i-- {
		end := now.Add(-time.Duration(i) * weekLength)
		start := end.Add(-weekLength)
		periods = append(periods, period{
			label:        start.Format(time.DateOnly),
			start:        start,
			end:          end,
			endInclusive: true,
		})
	}
	return periods
}
