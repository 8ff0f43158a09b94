package ranking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/metrics"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
	"github.com/vfg2006/rank-tracker-api/pkg/pacing"
)

type BatchConfig struct {
	PacingDelay          time.Duration
	LongBatchPacingDelay time.Duration
	LongBatchThreshold   int
	MaxRetries           int
	RetryBaseDelay       time.Duration
	WarningFailureRate   float64
	MaxKeywords          int
}

func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		PacingDelay:          4 * time.Second,
		LongBatchPacingDelay: 5 * time.Second,
		LongBatchThreshold:   20,
		MaxRetries:           2,
		RetryBaseDelay:       2 * time.Second,
		WarningFailureRate:   0.3,
		MaxKeywords:          50,
	}
}

func (c BatchConfig) delayFor(batchSize int) time.Duration {
	if c.LongBatchThreshold > 0 && batchSize > c.LongBatchThreshold {
		return c.LongBatchPacingDelay
	}
	return c.PacingDelay
}

// BatchRunner processa as palavras-chave em sequência, com intervalo entre elas,
// isolando a falha de cada uma
type BatchRunner struct {
	tracker  KeywordTracker
	sleeper  pacing.Sleeper
	cfg      BatchConfig
	validate *validator.Validate
}

func NewBatchRunner(tracker KeywordTracker, sleeper pacing.Sleeper, cfg BatchConfig) *BatchRunner {
	if sleeper == nil {
		sleeper = pacing.RealSleeper{}
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = DefaultBatchConfig().MaxKeywords
	}

	return &BatchRunner{
		tracker:  tracker,
		sleeper:  sleeper,
		cfg:      cfg,
		validate: validator.New(),
	}
}

func (r *BatchRunner) Validate(req domain.BatchRankRequest) error {
	if err := r.validate.Struct(req); err != nil {
		return NewRankError(ErrInvalidRequest, CodeInvalidRequest, err.Error())
	}
	if len(req.Keywords) > r.cfg.MaxKeywords {
		return NewRankError(ErrInvalidRequest, CodeInvalidRequest, fmt.Sprintf("máximo de %d palavras-chave por lote", r.cfg.MaxKeywords))
	}
	if len(req.KeywordIDs) > 0 && len(req.KeywordIDs) != len(req.Keywords) {
		return NewRankError(ErrInvalidRequest, CodeInvalidRequest, "keywordIds deve ter o mesmo tamanho de keywords")
	}
	return nil
}

// Run verifica cada palavra-chave do lote. Só retorna erro para requisição inválida
// ou provedor não configurado; falhas individuais viram linhas com status error.
func (r *BatchRunner) Run(ctx context.Context, req domain.BatchRankRequest) (*domain.BatchRankResponse, error) {
	if err := r.Validate(req); err != nil {
		return nil, err
	}
	if !r.tracker.Configured() {
		return nil, NewRankError(ErrNotConfigured, CodeNotConfigured, "")
	}

	start := time.Now()
	defer func() { metrics.ObserveBatch(time.Since(start)) }()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"domain":     req.Domain,
		"batch_size": len(req.Keywords),
	})
	logger.Infof("Iniciando lote de %d palavras-chave", len(req.Keywords))

	delay := r.cfg.delayFor(len(req.Keywords))
	response := &domain.BatchRankResponse{
		Total:   len(req.Keywords),
		Results: make([]domain.KeywordRankResult, 0, len(req.Keywords)),
	}

	for i, keyword := range req.Keywords {
		if i > 0 {
			if err := r.sleeper.Sleep(ctx, delay); err != nil {
				r.abandon(response, req.Keywords[i:])
				break
			}
		}
		if ctx.Err() != nil {
			r.abandon(response, req.Keywords[i:])
			break
		}

		checkReq := domain.RankCheckRequest{
			Domain:   req.Domain,
			Keyword:  keyword,
			Location: req.Location,
			ClientID: req.ClientID,
		}
		if len(req.KeywordIDs) == len(req.Keywords) {
			keywordID := req.KeywordIDs[i]
			checkReq.KeywordID = &keywordID
		}

		observation, err := r.checkWithRetry(ctx, checkReq)
		if err != nil {
			response.Results = append(response.Results, errorResult(keyword, ClassifyError(err)))
			response.Failed++
			continue
		}

		response.Results = append(response.Results, domain.KeywordRankResult{
			Keyword:      keyword,
			Rank:         observation.Rank,
			InTop100:     observation.InTop100,
			PreviousRank: observation.PreviousRank,
			RankChange:   observation.RankChange,
			Status:       domain.KeywordStatusSuccess,
		})
		response.Successful++
	}

	if response.Total > 0 && float64(response.Failed)/float64(response.Total) > r.cfg.WarningFailureRate {
		warning := fmt.Sprintf("%d de %d palavras-chave falharam", response.Failed, response.Total)
		response.Warning = &warning
		logger.Warn(warning)
	}

	logger.Infof("Lote finalizado: %d sucesso(s), %d falha(s)", response.Successful, response.Failed)
	return response, nil
}

// checkWithRetry repete apenas falhas transitórias de rede, com espera linear
func (r *BatchRunner) checkWithRetry(ctx context.Context, req domain.RankCheckRequest) (*domain.RankObservation, error) {
	for attempt := 0; ; attempt++ {
		observation, err := r.tracker.CheckKeyword(ctx, req)
		if err == nil {
			return observation, nil
		}

		rankErr := ClassifyError(err)
		if !rankErr.Retryable() || attempt >= r.cfg.MaxRetries {
			return nil, rankErr
		}

		wait := r.cfg.RetryBaseDelay * time.Duration(attempt+1)
		log.ForContext(ctx).WithField("keyword", req.Keyword).Warnf("Falha de rede, nova tentativa em %s", wait)

		if sleepErr := r.sleeper.Sleep(ctx, wait); sleepErr != nil {
			return nil, NewRankError(ErrTimeout, CodeTimeout, sleepErr.Error())
		}
	}
}

// abandon marca as palavras-chave restantes como não verificadas por tempo esgotado
func (r *BatchRunner) abandon(response *domain.BatchRankResponse, remaining []string) {
	for _, keyword := range remaining {
		rankErr := NewRankError(ErrTimeout, CodeTimeout, "lote interrompido antes da verificação")
		response.Results = append(response.Results, errorResult(keyword, rankErr))
		response.Failed++
	}
}

func errorResult(keyword string, rankErr *RankError) domain.KeywordRankResult {
	message := strings.TrimSpace(rankErr.Error())
	result := domain.KeywordRankResult{
		Keyword:   keyword,
		Status:    domain.KeywordStatusError,
		Error:     &message,
		ErrorCode: rankErr.Code,
	}
	if suggestion := rankErr.Suggestion(); suggestion != "" {
		result.Suggestion = &suggestion
	}
	return result
}
