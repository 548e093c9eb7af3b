package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(
		"m.id",
		"m.home_team_id",
		"m.away_team_id",
		"ht.name AS home_team",
		"awt.name AS away_team",
		"m.match_date",
		"m.home_score",
		"m.away_score",
		"m.status",
	).From("matches m").
		Join("teams ht ON ht.id = m.home_team_id").
		Join("teams awt ON awt.id = m.away_team_id").
		OrderBy("m.match_date DESC NULLS LAST", "m.id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:         row.ID,
			HomeTeamID: row.HomeTeamID,
			AwayTeamID: row.AwayTeamID,
			HomeTeam:   row.HomeTeam,
			AwayTeam:   row.AwayTeam,
			MatchDate:  row.MatchDate,
			HomeScore:  nullIntToPtr(row.HomeScore),
			AwayScore:  nullIntToPtr(row.AwayScore),
			Status:     match.NormalizeStatus(row.Status),
		})
	}

	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	item.ID = 0
	query, args, err := qb.InsertModel("matches", newMatchInsertModel(item), "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}

	return item, nil
}
