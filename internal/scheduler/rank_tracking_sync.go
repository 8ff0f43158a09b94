// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/config"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking"
	"github.com/vfg2006/rank-tracker-api/pkg/log"
)

// RankTrackingSyncConfig representa a configuração do agendador de verificação de rankings
type RankTrackingSyncConfig struct {
	CronSchedule     string
	SyncEnabled      bool
	BatchTimeout     time.Duration
	MaxBatchKeywords int
}

// SyncSummary resume a última execução da sincronização
type SyncSummary struct {
	Batches    int `json:"batches"`
	Keywords   int `json:"keywords"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

// RankTrackingSyncService verifica diariamente todas as palavras-chave acompanhadas
type RankTrackingSyncService struct {
	scheduler           *gocron.Scheduler
	config              RankTrackingSyncConfig
	trackedKeywordRepo  repository.TrackedKeywordRepository
	rankingService      ranking.RankingService
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSummary         SyncSummary
}

// NewRankTrackingSyncService cria uma nova instância do serviço de sincronização de rankings
func NewRankTrackingSyncService(
	trackedKeywordRepo repository.TrackedKeywordRepository,
	rankingService ranking.RankingService,
	appConfig *config.Config,
) *RankTrackingSyncService {
	syncConfig := RankTrackingSyncConfig{
		CronSchedule:     appConfig.RankTrackingSync.CronSchedule,
		SyncEnabled:      appConfig.RankTrackingSync.Enabled,
		BatchTimeout:     time.Duration(appConfig.RankTrackingSync.BatchTimeoutMinutes) * time.Minute,
		MaxBatchKeywords: appConfig.RankCheck.MaxKeywordsPerBatch,
	}
	if syncConfig.MaxBatchKeywords <= 0 {
		syncConfig.MaxBatchKeywords = ranking.DefaultBatchConfig().MaxKeywords
	}

	scheduler := gocron.NewScheduler(time.UTC)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":      syncConfig.CronSchedule,
		"sync_enabled":       syncConfig.SyncEnabled,
		"batch_timeout":      syncConfig.BatchTimeout.String(),
		"max_batch_keywords": syncConfig.MaxBatchKeywords,
	}).Info("Configuração do agendador de rankings carregada")

	return &RankTrackingSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		trackedKeywordRepo: trackedKeywordRepo,
		rankingService:     rankingService,
	}
}

// Start inicia o agendador
func (s *RankTrackingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de rankings desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de rankings")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de rankings: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de rankings")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAll verifica todas as palavras-chave ativas, agrupadas por domínio, localização e cliente
func (s *RankTrackingSyncService) SyncAll(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de rankings já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	summary := SyncSummary{}
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSummary = summary
		s.syncMutex.Unlock()
	}()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)
	logger.Info("Iniciando sincronização de rankings das palavras-chave acompanhadas")

	keywords, err := s.trackedKeywordRepo.ListActive(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar palavras-chave acompanhadas")
		return
	}

	if len(keywords) == 0 {
		logger.Info("Nenhuma palavra-chave ativa para sincronização de rankings")
		return
	}

	for _, batch := range s.buildBatches(keywords) {
		if ctx.Err() != nil {
			logger.Warn("Sincronização de rankings interrompida")
			break
		}

		summary.Batches++
		summary.Keywords += len(batch.Keywords)

		resp, err := s.runBatch(ctx, batch)
		if err != nil {
			summary.Skipped += len(batch.Keywords)
			logger.WithError(err).WithField("domain", batch.Domain).Error("Erro ao executar lote de rankings")
			continue
		}

		summary.Successful += resp.Successful
		summary.Failed += resp.Failed
	}

	logger.WithFields(log.Fields{
		"batch_size": summary.Keywords,
	}).Infof("Sincronização de rankings concluída: %d lote(s), %d sucesso(s), %d falha(s), %d ignorada(s)",
		summary.Batches, summary.Successful, summary.Failed, summary.Skipped)
}

func (s *RankTrackingSyncService) runBatch(ctx context.Context, batch domain.BatchRankRequest) (*domain.BatchRankResponse, error) {
	if s.config.BatchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.BatchTimeout)
		defer cancel()
	}

	return s.rankingService.RunBatch(ctx, batch)
}

type batchKey struct {
	domain   string
	location string
	clientID string
}

// buildBatches agrupa as palavras-chave e divide cada grupo no tamanho máximo de lote
func (s *RankTrackingSyncService) buildBatches(keywords []domain.TrackedKeyword) []domain.BatchRankRequest {
	groups := make(map[batchKey][]domain.TrackedKeyword)
	keys := make([]batchKey, 0)

	for _, keyword := range keywords {
		key := batchKey{domain: keyword.Domain, location: keyword.Location}
		if keyword.ClientID != nil {
			key.clientID = *keyword.ClientID
		}
		if _, exists := groups[key]; !exists {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], keyword)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].clientID != keys[j].clientID {
			return keys[i].clientID < keys[j].clientID
		}
		if keys[i].domain != keys[j].domain {
			return keys[i].domain < keys[j].domain
		}
		return keys[i].location < keys[j].location
	})

	batches := make([]domain.BatchRankRequest, 0, len(keys))
	for _, key := range keys {
		group := groups[key]
		for start := 0; start < len(group); start += s.config.MaxBatchKeywords {
			end := min(start+s.config.MaxBatchKeywords, len(group))

			batch := domain.BatchRankRequest{
				Domain:     key.domain,
				Location:   key.location,
				Keywords:   make([]string, 0, end-start),
				KeywordIDs: make([]string, 0, end-start),
			}
			if key.clientID != "" {
				clientID := key.clientID
				batch.ClientID = &clientID
			}
			for _, keyword := range group[start:end] {
				batch.Keywords = append(batch.Keywords, keyword.Keyword)
				batch.KeywordIDs = append(batch.KeywordIDs, keyword.ID)
			}

			batches = append(batches, batch)
		}
	}

	return batches
}

// TriggerManualSync inicia manualmente uma sincronização de rankings
func (s *RankTrackingSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de rankings já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de rankings")
	go s.SyncAll(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *RankTrackingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_summary":      s.lastSummary,
	}
}
