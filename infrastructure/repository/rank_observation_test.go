package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return &postgres.Connection{DB: mockDB}, mock
}

var observationColumns = []string{
	"id", "domain", "keyword", "location", "location_code", "rank", "in_top_100", "difficulty",
	"matched_url", "checked_at", "month", "year", "previous_rank", "rank_change", "source",
	"client_id", "keyword_id", "cost", "created_at",
}

func TestRankObservationRepository_GetLatestFromOtherMonth(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRankObservationRepository(conn)

	before := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	checkedAt := time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(observationColumns).
		AddRow("obs-1", "example.com", "shoes", "United States", 2840, 12, true, nil,
			"https://example.com/", checkedAt, 2, 2026, nil, nil, "incremental-provider",
			"client-1", nil, "0.004", checkedAt)

	mock.ExpectQuery(`SELECT .* FROM rank_observations ro WHERE ro.domain = \$1 AND ro.keyword = \$2 AND ro.month <> \$3 AND ro.checked_at < \$4 ORDER BY ro.checked_at DESC LIMIT 1`).
		WithArgs("example.com", "shoes", 3, before).
		WillReturnRows(rows)

	observation, err := repo.GetLatestFromOtherMonth(context.Background(), "example.com", "shoes", 3, before)
	require.NoError(t, err)
	require.NotNil(t, observation)

	assert.Equal(t, "obs-1", observation.ID)
	assert.Equal(t, 12, *observation.Rank)
	assert.Nil(t, observation.Difficulty)
	assert.Nil(t, observation.PreviousRank)
	assert.Equal(t, "client-1", *observation.ClientID)
	assert.Equal(t, domain.RankSourceIncremental, observation.Source)
	assert.True(t, decimal.RequireFromString("0.004").Equal(observation.Cost))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankObservationRepository_GetLatestFromOtherMonthNotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRankObservationRepository(conn)

	mock.ExpectQuery(`SELECT .* FROM rank_observations ro`).
		WillReturnError(sql.ErrNoRows)

	observation, err := repo.GetLatestFromOtherMonth(context.Background(), "example.com", "shoes", 3, time.Now())
	require.NoError(t, err)
	assert.Nil(t, observation)
}

func TestRankObservationRepository_ReplaceDay(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRankObservationRepository(conn)

	observation := &domain.RankObservation{ID: "obs-2", Domain: "example.com", Keyword: "shoes", Source: domain.RankSourceBulk}
	observation.SetCheckedAt(time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC))
	observation.SetRank(nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rank_observations WHERE domain = \$1 AND keyword = \$2 AND checked_at >= \$3 AND checked_at < \$4`).
		WithArgs("example.com", "shoes",
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO rank_observations \(id,domain,keyword,.*\) VALUES \(\$1,\$2,\$3,.*\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceDay(context.Background(), observation))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankObservationRepository_ReplaceDayRollback(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRankObservationRepository(conn)

	observation := &domain.RankObservation{ID: "obs-2", Domain: "example.com", Keyword: "shoes"}
	observation.SetCheckedAt(time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM rank_observations`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO rank_observations`).
		WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	err := repo.ReplaceDay(context.Background(), observation)
	assert.ErrorContains(t, err, "erro ao inserir observação")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRankObservationRepository_Query(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewRankObservationRepository(conn)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	checkedAt := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(observationColumns).
		AddRow("obs-1", "example.com", "shoes", "United States", 2840, nil, false, 40,
			nil, checkedAt, 1, 2026, 8, -93, "bulk-provider", nil, nil, "0.0025", checkedAt)

	mock.ExpectQuery(`SELECT .* FROM rank_observations ro WHERE ro.client_id = \$1 AND ro.checked_at >= \$2 ORDER BY ro.checked_at ASC`).
		WithArgs("client-1", start).
		WillReturnRows(rows)

	observations, err := repo.Query(context.Background(), domain.RankFilters{ClientID: "client-1", StartDate: &start})
	require.NoError(t, err)
	require.Len(t, observations, 1)

	assert.Nil(t, observations[0].Rank)
	assert.False(t, observations[0].InTop100)
	assert.Equal(t, 40, *observations[0].Difficulty)
	assert.Equal(t, -93, *observations[0].RankChange)
	assert.Nil(t, observations[0].ClientID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackedKeywordRepository_ListActive(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewTrackedKeywordRepository(conn)

	createdAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "client_id", "domain", "keyword", "location", "active", "created_at"}).
		AddRow("kw-1", "client-1", "example.com", "shoes", "United States", true, createdAt).
		AddRow("kw-2", nil, "example.com", "boots", nil, true, createdAt)

	mock.ExpectQuery(`SELECT .* FROM tracked_keywords tk WHERE tk.active = \$1 ORDER BY tk.domain ASC, tk.created_at ASC`).
		WithArgs(true).
		WillReturnRows(rows)

	keywords, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, keywords, 2)

	assert.Equal(t, "client-1", *keywords[0].ClientID)
	assert.Nil(t, keywords[1].ClientID)
	assert.Equal(t, "", keywords[1].Location)
	assert.NoError(t, mock.ExpectationsWereMet())
}
