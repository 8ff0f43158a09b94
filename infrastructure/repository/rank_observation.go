package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

const (
	rankObservationTable = "rank_observations ro"
)

var rankObservationColumns = []string{
	"ro.id",
	"ro.domain",
	"ro.keyword",
	"ro.location",
	"ro.location_code",
	"ro.rank",
	"ro.in_top_100",
	"ro.difficulty",
	"ro.matched_url",
	"ro.checked_at",
	"ro.month",
	"ro.year",
	"ro.previous_rank",
	"ro.rank_change",
	"ro.source",
	"ro.client_id",
	"ro.keyword_id",
	"ro.cost",
	"ro.created_at",
}

type RankObservationRepository interface {
	// GetLatestFromOtherMonth retorna a observação mais recente anterior a before cujo mês difere de month
	GetLatestFromOtherMonth(ctx context.Context, domainName, keyword string, month int, before time.Time) (*domain.RankObservation, error)
	// ReplaceDay remove as observações do mesmo dia e insere a nova
	ReplaceDay(ctx context.Context, observation *domain.RankObservation) error
	Query(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error)
}

type rankObservationRepository struct {
	conn *postgres.Connection
}

func NewRankObservationRepository(conn *postgres.Connection) RankObservationRepository {
	return &rankObservationRepository{
		conn: conn,
	}
}

func (r *rankObservationRepository) GetLatestFromOtherMonth(ctx context.Context, domainName, keyword string, month int, before time.Time) (*domain.RankObservation, error) {
	query, args, err := squirrel.
		Select(rankObservationColumns...).
		From(rankObservationTable).
		Where(squirrel.Eq{"ro.domain": domainName}).
		Where(squirrel.Eq{"ro.keyword": keyword}).
		Where(squirrel.NotEq{"ro.month": month}).
		Where(squirrel.Lt{"ro.checked_at": before}).
		OrderBy("ro.checked_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	observation, err := scanRankObservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear observação: %w", err)
	}

	return observation, nil
}

func (r *rankObservationRepository) ReplaceDay(ctx context.Context, observation *domain.RankObservation) error {
	dayStart, dayEnd := observation.DayBounds()

	deleteQuery, deleteArgs, err := squirrel.
		Delete("rank_observations").
		Where(squirrel.Eq{"domain": observation.Domain}).
		Where(squirrel.Eq{"keyword": observation.Keyword}).
		Where(squirrel.GtOrEq{"checked_at": dayStart}).
		Where(squirrel.Lt{"checked_at": dayEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	insertQuery, insertArgs, err := squirrel.
		Insert("rank_observations").
		Columns(
			"id",
			"domain",
			"keyword",
			"location",
			"location_code",
			"rank",
			"in_top_100",
			"difficulty",
			"matched_url",
			"checked_at",
			"month",
			"year",
			"previous_rank",
			"rank_change",
			"source",
			"client_id",
			"keyword_id",
			"cost",
			"created_at",
		).
		Values(
			observation.ID,
			observation.Domain,
			observation.Keyword,
			observation.Location,
			observation.LocationCode,
			observation.Rank,
			observation.InTop100,
			observation.Difficulty,
			observation.MatchedURL,
			observation.CheckedAt,
			observation.Month,
			observation.Year,
			observation.PreviousRank,
			observation.RankChange,
			string(observation.Source),
			observation.ClientID,
			observation.KeywordID,
			observation.Cost,
			observation.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover observações do dia: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("erro ao inserir observação: %w", err)
		}

		return nil
	})
}

func (r *rankObservationRepository) Query(ctx context.Context, filters domain.RankFilters) ([]domain.RankObservation, error) {
	queryBuilder := squirrel.
		Select(rankObservationColumns...).
		From(rankObservationTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters.Domain != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ro.domain": filters.Domain})
	}
	if filters.Keyword != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ro.keyword": filters.Keyword})
	}
	if filters.ClientID != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"ro.client_id": filters.ClientID})
	}
	if filters.StartDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"ro.checked_at": *filters.StartDate})
	}
	if filters.EndDate != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"ro.checked_at": *filters.EndDate})
	}

	sqlQuery, args, err := queryBuilder.OrderBy("ro.checked_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	observations := make([]domain.RankObservation, 0)
	for rows.Next() {
		observation, err := scanRankObservation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear observação: %w", err)
		}
		observations = append(observations, *observation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return observations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRankObservation(row rowScanner) (*domain.RankObservation, error) {
	var (
		observation  domain.RankObservation
		rank         sql.NullInt64
		difficulty   sql.NullInt64
		matchedURL   sql.NullString
		previousRank sql.NullInt64
		rankChange   sql.NullInt64
		source       string
		clientID     sql.NullString
		keywordID    sql.NullString
	)

	err := row.Scan(
		&observation.ID,
		&observation.Domain,
		&observation.Keyword,
		&observation.Location,
		&observation.LocationCode,
		&rank,
		&observation.InTop100,
		&difficulty,
		&matchedURL,
		&observation.CheckedAt,
		&observation.Month,
		&observation.Year,
		&previousRank,
		&rankChange,
		&source,
		&clientID,
		&keywordID,
		&observation.Cost,
		&observation.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	observation.Rank = nullIntPtr(rank)
	observation.Difficulty = nullIntPtr(difficulty)
	observation.MatchedURL = nullStringPtr(matchedURL)
	observation.PreviousRank = nullIntPtr(previousRank)
	observation.RankChange = nullIntPtr(rankChange)
	observation.Source = domain.RankSource(source)
	observation.ClientID = nullStringPtr(clientID)
	observation.KeywordID = nullStringPtr(keywordID)
	observation.CheckedAt = observation.CheckedAt.UTC()

	return &observation, nil
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
