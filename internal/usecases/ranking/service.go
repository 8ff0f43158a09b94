package ranking

import (
	"context"
	"errors"

	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/reporting"
	"github.com/vfg2006/rank-tracker-api/pkg/utils"
)

type RankingService interface {
	CheckKeyword(ctx context.Context, req domain.RankCheckRequest) (*domain.RankObservation, error)
	RunBatch(ctx context.Context, req domain.BatchRankRequest) (*domain.BatchRankResponse, error)
	GetHistory(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error)
	GetMonthlyReport(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error)
	GetWeeklyReport(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error)
}

type RankTrackingService struct {
	tracker    KeywordTracker
	batch      *BatchRunner
	history    *HistoryStore
	aggregator *reporting.Aggregator
}

func NewRankTrackingService(
	tracker KeywordTracker,
	batch *BatchRunner,
	history *HistoryStore,
	aggregator *reporting.Aggregator,
) RankingService {
	return &RankTrackingService{
		tracker:    tracker,
		batch:      batch,
		history:    history,
		aggregator: aggregator,
	}
}

func (s *RankTrackingService) CheckKeyword(ctx context.Context, req domain.RankCheckRequest) (*domain.RankObservation, error) {
	if !s.tracker.Configured() {
		return nil, NewRankError(ErrNotConfigured, CodeNotConfigured, "")
	}
	return s.tracker.CheckKeyword(ctx, req)
}

func (s *RankTrackingService) RunBatch(ctx context.Context, req domain.BatchRankRequest) (*domain.BatchRankResponse, error) {
	return s.batch.Run(ctx, req)
}

func (s *RankTrackingService) GetHistory(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error) {
	filters.Domain = utils.NormalizeDomain(filters.Domain)
	if !filters.HasOwner() {
		return nil, NewRankError(ErrInvalidRequest, CodeInvalidRequest, reporting.ErrOwnerRequired.Error())
	}

	observations, err := s.history.QueryRange(ctx, filters)
	if err != nil {
		return nil, NewRankError(ErrPersistence, CodePersistenceError, err.Error())
	}
	return observations, nil
}

func (s *RankTrackingService) GetMonthlyReport(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
	report, err := s.aggregator.Monthly(ctx, filters)
	return report, reportError(err)
}

func (s *RankTrackingService) GetWeeklyReport(ctx context.Context, filters domain.ReportFilters) (*domain.RankReport, error) {
	report, err := s.aggregator.Weekly(ctx, filters)
	return report, reportError(err)
}

func reportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, reporting.ErrOwnerRequired) {
		return NewRankError(ErrInvalidRequest, CodeInvalidRequest, err.Error())
	}
	return NewRankError(ErrPersistence, CodePersistenceError, err.Error())
}
