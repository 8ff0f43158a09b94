package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	serpdomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serp/domain"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
	"github.com/vfg2006/rank-tracker-api/internal/usecases/ranking/mocks"
)

func newTestTracker(t *testing.T, ctrl *gomock.Controller, position *int, difficulty DifficultyEstimator) (*Tracker, *repository.MemoryRankObservationRepository) {
	t.Helper()

	provider := newIncrementalMock(ctrl)
	provider.EXPECT().Query(gomock.Any(), gomock.Any()).DoAndReturn(rankingAt(position)).AnyTimes()

	repo := repository.NewMemoryRankObservationRepository()
	tracker := NewTracker(NewRankChecker(provider, nil, 0), NewHistoryStore(repo, 0), nil, difficulty)
	tracker.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return tracker, repo
}

func TestTracker_CheckKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimator := mocks.NewMockDifficultyEstimator(ctrl)
	estimator.EXPECT().Estimate(gomock.Any(), "running shoes").Return(140, nil)

	tracker, repo := newTestTracker(t, ctrl, intPtr(15), estimator)
	clientID := "client-1"

	observation, err := tracker.CheckKeyword(context.Background(), domain.RankCheckRequest{
		Domain:   "https://www.Example.com/",
		Keyword:  " running shoes ",
		Location: "uk",
		ClientID: &clientID,
	})
	require.NoError(t, err)

	assert.Equal(t, "example.com", observation.Domain)
	assert.Equal(t, "running shoes", observation.Keyword)
	assert.Equal(t, "United Kingdom", observation.Location)
	assert.Equal(t, 2826, observation.LocationCode)
	assert.Equal(t, 15, *observation.Rank)
	assert.True(t, observation.InTop100)
	assert.Equal(t, 100, *observation.Difficulty)
	assert.Equal(t, domain.RankSourceIncremental, observation.Source)
	assert.True(t, decimal.RequireFromString("0.004").Equal(observation.Cost))
	assert.Equal(t, 3, observation.Month)
	assert.Equal(t, 2026, observation.Year)

	stored, err := repo.Query(context.Background(), domain.RankFilters{ClientID: clientID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, observation.ID, stored[0].ID)
}

func TestTracker_CheckKeywordDifficultyFailureDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	estimator := mocks.NewMockDifficultyEstimator(ctrl)
	estimator.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(0, errors.New("model unavailable"))

	tracker, _ := newTestTracker(t, ctrl, nil, estimator)

	observation, err := tracker.CheckKeyword(context.Background(), domain.RankCheckRequest{Domain: "example.com", Keyword: "shoes"})
	require.NoError(t, err)

	assert.Nil(t, observation.Difficulty)
	assert.Nil(t, observation.Rank)
	assert.False(t, observation.InTop100)
	assert.Equal(t, DefaultLocation, observation.Location)
}

func TestTracker_CheckKeywordUnmappedLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var queried []serpdomain.QueryParams
	provider := newIncrementalMock(ctrl)
	provider.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params serpdomain.QueryParams) (*serpdomain.QueryResult, error) {
			queried = append(queried, params)
			return rankingAt(intPtr(3))(ctx, params)
		})

	repo := repository.NewMemoryRankObservationRepository()
	tracker := NewTracker(NewRankChecker(provider, nil, 0), NewHistoryStore(repo, 0), nil, nil)

	observation, err := tracker.CheckKeyword(context.Background(), domain.RankCheckRequest{
		Domain:   "example.com",
		Keyword:  "shoes",
		Location: "Austin,Texas,United States",
	})
	require.NoError(t, err)

	assert.Equal(t, "Austin,Texas,United States", observation.Location)
	assert.Equal(t, DefaultLocationCode, observation.LocationCode)
	require.Len(t, queried, 1)
	assert.Equal(t, "Austin,Texas,United States", queried[0].Location)
	assert.Equal(t, DefaultLocationCode, queried[0].LocationCode)
}

func TestTracker_CheckKeywordInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tracker, _ := newTestTracker(t, ctrl, intPtr(1), nil)

	_, err := tracker.CheckKeyword(context.Background(), domain.RankCheckRequest{Domain: "", Keyword: "shoes"})

	var rankErr *RankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, CodeInvalidRequest, rankErr.Code)
}

func TestTracker_CheckKeywordProviderErrorIsTyped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := newIncrementalMock(ctrl)
	provider.EXPECT().
		Query(gomock.Any(), gomock.Any()).
		Return(nil, serpdomain.NewProviderError("incremental-provider", serpdomain.ErrorKindTimeout, 0, "deadline"))

	repo := repository.NewMemoryRankObservationRepository()
	tracker := NewTracker(NewRankChecker(provider, nil, 0), NewHistoryStore(repo, 0), nil, nil)

	_, err := tracker.CheckKeyword(context.Background(), domain.RankCheckRequest{Domain: "example.com", Keyword: "shoes"})

	var rankErr *RankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, CodeTimeout, rankErr.Code)
	assert.NotEmpty(t, rankErr.Suggestion())

	stored, _ := repo.Query(context.Background(), domain.RankFilters{Domain: "example.com"})
	assert.Empty(t, stored)
}

