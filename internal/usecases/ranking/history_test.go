package ranking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/rank-tracker-api/infrastructure/repository"
	"github.com/vfg2006/rank-tracker-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

func TestComputeRankChange(t *testing.T) {
	tests := []struct {
		name     string
		previous *int
		current  *int
		expected *int
	}{
		{"melhorou", intPtr(20), intPtr(12), intPtr(8)},
		{"piorou", intPtr(12), intPtr(20), intPtr(-8)},
		{"saiu do ranking", intPtr(15), nil, intPtr(15 - DefaultDropOutFloorRank)},
		{"nova entrada", nil, intPtr(30), nil},
		{"sem dados", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeRankChange(tt.previous, tt.current, DefaultDropOutFloorRank))
		})
	}
}

func observationAt(checkedAt time.Time, rank *int) *domain.RankObservation {
	observation := &domain.RankObservation{Domain: "example.com", Keyword: "shoes", Source: domain.RankSourceIncremental}
	observation.SetCheckedAt(checkedAt)
	observation.SetRank(rank)
	return observation
}

func TestHistoryStore_RecordDedupSameDay(t *testing.T) {
	repo := repository.NewMemoryRankObservationRepository()
	store := NewHistoryStore(repo, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, observationAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), intPtr(12))))
	require.NoError(t, store.Record(ctx, observationAt(time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC), intPtr(9))))

	observations, err := store.QueryRange(ctx, domain.RankFilters{Domain: "example.com", Keyword: "shoes"})
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, 9, *observations[0].Rank)
	assert.Equal(t, 18, observations[0].CheckedAt.Hour())
	assert.NotEmpty(t, observations[0].ID)
}

func TestHistoryStore_RecordLooksBackAcrossMonths(t *testing.T) {
	repo := repository.NewMemoryRankObservationRepository()
	store := NewHistoryStore(repo, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, observationAt(time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC), intPtr(20))))
	require.NoError(t, store.Record(ctx, observationAt(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC), intPtr(15))))

	latest := observationAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), intPtr(12))
	require.NoError(t, store.Record(ctx, latest))

	require.NotNil(t, latest.PreviousRank)
	assert.Equal(t, 20, *latest.PreviousRank, "registros do mesmo mês são ignorados")
	assert.Equal(t, 8, *latest.RankChange)
}

func TestHistoryStore_RecordDropOut(t *testing.T) {
	repo := repository.NewMemoryRankObservationRepository()
	store := NewHistoryStore(repo, 0)
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, observationAt(time.Date(2026, 2, 20, 8, 0, 0, 0, time.UTC), intPtr(15))))

	dropped := observationAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), nil)
	require.NoError(t, store.Record(ctx, dropped))

	assert.False(t, dropped.InTop100)
	assert.Equal(t, 15, *dropped.PreviousRank)
	assert.Equal(t, 15-DefaultDropOutFloorRank, *dropped.RankChange)
}

func TestHistoryStore_RecordCustomFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRankObservationRepository(ctrl)
	store := NewHistoryStore(repo, 200)

	observation := observationAt(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), nil)

	repo.EXPECT().
		GetLatestFromOtherMonth(gomock.Any(), "example.com", "shoes", 3, observation.CheckedAt).
		Return(&domain.RankObservation{Rank: intPtr(40)}, nil)
	repo.EXPECT().
		ReplaceDay(gomock.Any(), observation).
		Return(nil)

	require.NoError(t, store.Record(context.Background(), observation))
	assert.Equal(t, -160, *observation.RankChange)
}

func TestHistoryStore_RecordPersistenceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRankObservationRepository(ctrl)
	store := NewHistoryStore(repo, 0)

	repo.EXPECT().
		GetLatestFromOtherMonth(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	repo.EXPECT().
		ReplaceDay(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	err := store.Record(context.Background(), observationAt(time.Now(), intPtr(3)))

	var rankErr *RankError
	require.ErrorAs(t, err, &rankErr)
	assert.Equal(t, CodePersistenceError, rankErr.Code)
}
