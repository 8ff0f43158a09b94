package reporting

import (
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

// emptyComparison retorna a comparação zerada usada quando há menos de dois períodos com dados
func emptyComparison() domain.PeriodComparison {
	return domain.PeriodComparison{
		Counts:   zeroCounts(),
		Keywords: []domain.KeywordComparison{},
	}
}

func zeroCounts() map[domain.ComparisonStatus]int {
	return map[domain.ComparisonStatus]int{
		domain.ComparisonImproved:    0,
		domain.ComparisonDeclined:    0,
		domain.ComparisonUnchanged:   0,
		domain.ComparisonNowRanking:  0,
		domain.ComparisonLostRanking: 0,
		domain.ComparisonNew:         0,
		domain.ComparisonNotChecked:  0,
	}
}

// CompareRanks classifica a palavra-chave entre dois períodos.
// inPrevious/inCurrent indicam se houve observação no período, mesmo sem posição.
func CompareRanks(previous, current *int, inPrevious, inCurrent bool) (domain.ComparisonStatus, *int) {
	switch {
	case !inPrevious && inCurrent:
		return domain.ComparisonNew, nil
	case inPrevious && !inCurrent:
		return domain.ComparisonNotChecked, nil
	case previous == nil && current != nil:
		return domain.ComparisonNowRanking, nil
	case previous != nil && current == nil:
		return domain.ComparisonLostRanking, nil
	case previous == nil && current == nil:
		return domain.ComparisonUnchanged, nil
	}

	change := *previous - *current
	switch {
	case change > 0:
		return domain.ComparisonImproved, &change
	case change < 0:
		return domain.ComparisonDeclined, &change
	default:
		return domain.ComparisonUnchanged, &change
	}
}

func compare(previous, current *bucket, keys []keywordKey) domain.PeriodComparison {
	comparison := domain.PeriodComparison{
		PreviousPeriod: previous.period.label,
		CurrentPeriod:  current.period.label,
		Counts:         zeroCounts(),
		Keywords:       []domain.KeywordComparison{},
	}

	for _, key := range keys {
		prevObs, inPrevious := previous.latest[key]
		currObs, inCurrent := current.latest[key]
		if !inPrevious && !inCurrent {
			continue
		}

		var prevRank, currRank *int
		if inPrevious {
			prevRank = prevObs.Rank
		}
		if inCurrent {
			currRank = currObs.Rank
		}

		status, change := CompareRanks(prevRank, currRank, inPrevious, inCurrent)
		comparison.Counts[status]++
		comparison.Keywords = append(comparison.Keywords, domain.KeywordComparison{
			Domain:       key.domain,
			Keyword:      key.keyword,
			PreviousRank: prevRank,
			CurrentRank:  currRank,
			Change:       change,
			Status:       status,
		})
	}

	return comparison
}
