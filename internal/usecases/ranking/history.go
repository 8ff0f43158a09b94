package ranking

import (
	"context"
	"time"

	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

// DefaultDropOutFloorRank é a posição atribuída a quem saiu do top 100 no cálculo da variação
const DefaultDropOutFloorRank = 101

// HistoryStore persiste observações garantindo no máximo uma por (domínio, palavra-chave, dia)
type HistoryStore struct {
	repo         repository.RankObservationRepository
	dropOutFloor int
	idGenerator  func() (string, error)
	now          func() time.Time
}

func NewHistoryStore(repo repository.RankObservationRepository, dropOutFloor int) *HistoryStore {
	if dropOutFloor <= 0 {
		dropOutFloor = DefaultDropOutFloorRank
	}

	return &HistoryStore{
		repo:         repo,
		dropOutFloor: dropOutFloor,
		idGenerator:  utils.GenerateID,
		now:          time.Now,
	}
}

// ComputeRankChange retorna previous - current (positivo = melhorou).
// Sem posição atual, usa floor como posição de quem saiu do ranking.
func ComputeRankChange(previous, current *int, floor int) *int {
	switch {
	case previous != nil && current != nil:
		change := *previous - *current
		return &change
	case previous != nil && current == nil:
		change := *previous - floor
		return &change
	default:
		return nil
	}
}

// Record calcula a posição anterior olhando apenas meses diferentes do atual,
// remove as observações do mesmo dia e grava a nova
func (s *HistoryStore) Record(ctx context.Context, observation *domain.RankObservation) error {
	if observation.CheckedAt.IsZero() {
		observation.SetCheckedAt(s.now())
	} else {
		observation.SetCheckedAt(observation.CheckedAt)
	}
	observation.SetRank(observation.Rank)

	if observation.ID == "" {
		id, err := s.idGenerator()
		if err != nil {
			return NewRankError(ErrPersistence, CodePersistenceError, err.Error())
		}
		observation.ID = id
	}
	if observation.CreatedAt.IsZero() {
		observation.CreatedAt = s.now().UTC()
	}

	previous, err := s.repo.GetLatestFromOtherMonth(ctx, observation.Domain, observation.Keyword, observation.Month, observation.CheckedAt)
	if err != nil {
		return NewRankError(ErrPersistence, CodePersistenceError, err.Error())
	}

	if previous != nil {
		observation.PreviousRank = previous.Rank
	} else {
		observation.PreviousRank = nil
	}
	observation.RankChange = ComputeRankChange(observation.PreviousRank, observation.Rank, s.dropOutFloor)

	if err := s.repo.ReplaceDay(ctx, observation); err != nil {
		return NewRankError(ErrPersistence, CodePersistenceError, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"domain":  observation.Domain,
		"keyword": observation.Keyword,
	}).Debug("Observação de ranking registrada")

	return nil
}

// QueryRange retorna as observações do filtro em ordem cronológica
func (s *HistoryStore) QueryRange(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error) {
	return s.repo.Query(ctx, filters)
}
