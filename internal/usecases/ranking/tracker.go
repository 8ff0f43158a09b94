package ranking

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/metrics"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

// KeywordTracker verifica e registra a posição de uma palavra-chave
type KeywordTracker interface {
	CheckKeyword(ctx context.Context, req domain.RankCheckRequest) (*domain.RankObservation, error)
	Configured() bool
}

type Tracker struct {
	checker    *RankChecker
	history    *HistoryStore
	locations  LocationResolver
	difficulty DifficultyEstimator
	now        func() time.Time
}

// NewTracker cria o fluxo de verificação; difficulty é opcional
func NewTracker(checker *RankChecker, history *HistoryStore, locations LocationResolver, difficulty DifficultyEstimator) *Tracker {
	if locations == nil {
		locations = NewStaticLocationResolver()
	}

	return &Tracker{
		checker:    checker,
		history:    history,
		locations:  locations,
		difficulty: difficulty,
		now:        time.Now,
	}
}

func (t *Tracker) Configured() bool {
	return t.checker.Configured()
}

// CheckKeyword resolve a localização, executa a busca progressiva e grava a observação.
// Erros retornam como *RankError.
func (t *Tracker) CheckKeyword(ctx context.Context, req domain.RankCheckRequest) (*domain.RankObservation, error) {
	domainName := utils.NormalizeDomain(req.Domain)
	keyword := strings.TrimSpace(req.Keyword)
	if domainName == "" || keyword == "" {
		return nil, NewRankError(ErrInvalidRequest, CodeInvalidRequest, "domain e keyword são obrigatórios")
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"domain":  domainName,
		"keyword": keyword,
	})

	locationCode, location := t.locations.Resolve(req.Location)

	outcome, err := t.checker.Check(ctx, CheckParams{
		Keyword:      keyword,
		Domain:       domainName,
		Location:     location,
		LocationCode: locationCode,
	})
	if err != nil {
		metrics.RecordKeywordCheck(domain.KeywordStatusError)
		return nil, err
	}

	observation := &domain.RankObservation{
		Domain:       domainName,
		Keyword:      keyword,
		Location:     location,
		LocationCode: locationCode,
		MatchedURL:   outcome.MatchedURL,
		Source:       domain.RankSource(outcome.Source),
		ClientID:     req.ClientID,
		KeywordID:    req.KeywordID,
		Cost:         outcome.Cost,
	}
	observation.SetCheckedAt(t.now())
	observation.SetRank(outcome.Rank)
	observation.Difficulty = t.estimateDifficulty(ctx, keyword)

	if err := t.history.Record(ctx, observation); err != nil {
		metrics.RecordKeywordCheck(domain.KeywordStatusError)
		rankErr := ClassifyError(err)
		rankErr.Keyword = keyword
		return nil, rankErr
	}

	metrics.RecordKeywordCheck(domain.KeywordStatusSuccess)
	logger.Infof("Verificação concluída em %d consulta(s), modo %s", outcome.Queries, outcome.Mode)

	return observation, nil
}

func (t *Tracker) estimateDifficulty(ctx context.Context, keyword string) *int {
	if t.difficulty == nil {
		return nil
	}

	value, err := t.difficulty.Estimate(ctx, keyword)
	if err != nil {
		log.ForContext(ctx).WithField("keyword", keyword).WithError(err).Warn("Falha ao estimar dificuldade, seguindo sem valor")
		return nil
	}

	clamped := clampDifficulty(value)
	return &clamped
}
