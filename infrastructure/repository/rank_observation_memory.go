package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

// MemoryRankObservationRepository mantém observações em memória com a mesma semântica do Postgres
type MemoryRankObservationRepository struct {
	mu           sync.RWMutex
	observations []domain.RankObservation
}

func NewMemoryRankObservationRepository() *MemoryRankObservationRepository {
	return &MemoryRankObservationRepository{}
}

func (r *MemoryRankObservationRepository) GetLatestFromOtherMonth(_ context.Context, domainName, keyword string, month int, before time.Time) (*domain.RankObservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.RankObservation
	for i := range r.observations {
		o := &r.observations[i]
		if o.Domain != domainName || o.Keyword != keyword || o.Month == month || !o.CheckedAt.Before(before) {
			continue
		}
		if latest == nil || o.CheckedAt.After(latest.CheckedAt) {
			latest = o
		}
	}

	if latest == nil {
		return nil, nil
	}
	found := *latest
	return &found, nil
}

func (r *MemoryRankObservationRepository) ReplaceDay(_ context.Context, observation *domain.RankObservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dayStart, dayEnd := observation.DayBounds()

	kept := r.observations[:0]
	for _, o := range r.observations {
		sameDay := !o.CheckedAt.Before(dayStart) && o.CheckedAt.Before(dayEnd)
		if o.Domain == observation.Domain && o.Keyword == observation.Keyword && sameDay {
			continue
		}
		kept = append(kept, o)
	}

	r.observations = append(kept, *observation)
	return nil
}

func (r *MemoryRankObservationRepository) Query(_ context.Context, filters domain.RankFilters) ([]domain.RankObservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.RankObservation, 0)
	for _, o := range r.observations {
		if filters.Domain != "" && o.Domain != filters.Domain {
			continue
		}
		if filters.Keyword != "" && o.Keyword != filters.Keyword {
			continue
		}
		if filters.ClientID != "" && (o.ClientID == nil || *o.ClientID != filters.ClientID) {
			continue
		}
		if filters.StartDate != nil && o.CheckedAt.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && o.CheckedAt.After(*filters.EndDate) {
			continue
		}
		result = append(result, o)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CheckedAt.Before(result[j].CheckedAt)
	})

	return result, nil
}
