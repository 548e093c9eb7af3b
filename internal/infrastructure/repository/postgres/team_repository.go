package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		OrderBy("conference_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}

	return teamFromRow(row), true, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	query, args, err := qb.Update("teams").
		SetModel(teamUpdateModel{
			Name:           item.Name,
			GamesPlayed:    item.GamesPlayed,
			Wins:           item.Wins,
			Losses:         item.Losses,
			OvertimeLosses: item.OvertimeLosses,
			Points:         item.Points,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
		}).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update team id=%d: %w", item.ID, err)
	}

	return affectedAny(result)
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:             row.ID,
		ConferenceID:   row.ConferenceID,
		Name:           row.Name,
		GamesPlayed:    row.GamesPlayed,
		Wins:           row.Wins,
		Losses:         row.Losses,
		OvertimeLosses: row.OvertimeLosses,
		Points:         row.Points,
		GoalsFor:       row.GoalsFor,
		GoalsAgainst:   row.GoalsAgainst,
	}
}
