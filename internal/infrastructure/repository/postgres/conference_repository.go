package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

type ConferenceRepository struct {
	db *sqlx.DB
}

func NewConferenceRepository(db *sqlx.DB) *ConferenceRepository {
	return &ConferenceRepository{db: db}
}

func (r *ConferenceRepository) List(ctx context.Context) ([]conference.Conference, error) {
	query, args, err := qb.Select("*").From("conferences").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select conferences query: %w", err)
	}

	var rows []conferenceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select conferences: %w", err)
	}

	out := make([]conference.Conference, 0, len(rows))
	for _, row := range rows {
		out = append(out, conference.Conference{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (r *ConferenceRepository) Rename(ctx context.Context, id int64, name string) (bool, error) {
	query, args, err := qb.Update("conferences").
		Set("name", name).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build rename conference query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("rename conference id=%d: %w", id, err)
	}

	return affectedAny(result)
}
