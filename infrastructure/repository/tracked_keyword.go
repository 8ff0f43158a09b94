package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/rank-tracker-api/infrastructure/database/postgres"
	"github.com/vfg2006/rank-tracker-api/internal/domain"
)

const (
	trackedKeywordTable = "tracked_keywords tk"
)

type TrackedKeywordRepository interface {
	ListActive(ctx context.Context) ([]domain.TrackedKeyword, error)
}

type trackedKeywordRepository struct {
	conn *postgres.Connection
}

func NewTrackedKeywordRepository(conn *postgres.Connection) TrackedKeywordRepository {
	return &trackedKeywordRepository{
		conn: conn,
	}
}

func (r *trackedKeywordRepository) ListActive(ctx context.Context) ([]domain.TrackedKeyword, error) {
	query, args, err := squirrel.
		Select("tk.id", "tk.client_id", "tk.domain", "tk.keyword", "tk.location", "tk.active", "tk.created_at").
		From(trackedKeywordTable).
		Where(squirrel.Eq{"tk.active": true}).
		OrderBy("tk.domain ASC", "tk.created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	keywords := make([]domain.TrackedKeyword, 0)
	for rows.Next() {
		var (
			keyword  domain.TrackedKeyword
			clientID sql.NullString
			location sql.NullString
		)

		if err := rows.Scan(
			&keyword.ID,
			&clientID,
			&keyword.Domain,
			&keyword.Keyword,
			&location,
			&keyword.Active,
			&keyword.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear palavra-chave: %w", err)
		}

		keyword.ClientID = nullStringPtr(clientID)
		keyword.Location = location.String
		keywords = append(keywords, keyword)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return keywords, nil
}
