package ranking

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

// NewBatchConfig converte a configuração de RANK_CHECK_* em BatchConfig
func NewBatchConfig(rc config.RankCheck) BatchConfig {
	cfg := DefaultBatchConfig()
	if rc.PacingDelaySeconds > 0 {
		cfg.PacingDelay = time.Duration(rc.PacingDelaySeconds) * time.Second
	}
	if rc.LongBatchPacingDelaySeconds > 0 {
		cfg.LongBatchPacingDelay = time.Duration(rc.LongBatchPacingDelaySeconds) * time.Second
	}
	if rc.LongBatchThreshold > 0 {
		cfg.LongBatchThreshold = rc.LongBatchThreshold
	}
	if rc.MaxRetries >= 0 {
		cfg.MaxRetries = rc.MaxRetries
	}
	if rc.RetryBaseDelaySeconds > 0 {
		cfg.RetryBaseDelay = time.Duration(rc.RetryBaseDelaySeconds) * time.Second
	}
	if rc.WarningFailureRate > 0 {
		cfg.WarningFailureRate = rc.WarningFailureRate
	}
	if rc.MaxKeywordsPerBatch > 0 {
		cfg.MaxKeywords = rc.MaxKeywordsPerBatch
	}
	return cfg
}

// NewServiceFromConfig monta o serviço completo. provider pode ser nil: as consultas
// retornam NOT_CONFIGURED e histórico e relatórios continuam disponíveis.
func NewServiceFromConfig(
	cfg *config.Config,
	provider serp.Provider,
	repo repository.RankObservationRepository,
	sleeper pacing.Sleeper,
	difficulty DifficultyEstimator,
) (RankingService, error) {
	var locations LocationResolver = NewStaticLocationResolver()
	if cfg.Serp.LocationsFile != "" {
		resolver, err := LoadLocationResolver(cfg.Serp.LocationsFile)
		if err != nil {
			return nil, err
		}
		locations = resolver
		logrus.WithField("file", cfg.Serp.LocationsFile).Info("Localizações adicionais carregadas")
	}

	checker := NewRankChecker(provider, cfg.RankCheck.DepthTiers, cfg.RankCheck.MaxDepth)
	history := NewHistoryStore(repo, cfg.RankCheck.DropOutFloorRank)
	tracker := NewTracker(checker, history, locations, difficulty)
	batch := NewBatchRunner(tracker, sleeper, NewBatchConfig(cfg.RankCheck))

	return NewRankTrackingService(tracker, batch, history, reporting.NewAggregator(repo)), nil
}
