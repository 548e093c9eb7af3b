package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

// BootstrapSeed fills an empty database with the demo league. Rows keep the
// seed ids so the match fixtures resolve, and the sequences are advanced past
// them afterwards.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM conferences`); err != nil {
		return fmt.Errorf("count conferences for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	exec := func(name string, query string, arg map[string]any) error {
		sqlQuery, args, err := sqlx.Named(query, arg)
		if err != nil {
			return fmt.Errorf("bind seed %s query: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(sqlQuery), args...); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		return nil
	}

	for _, c := range memory.SeedConferences() {
		if err := exec(fmt.Sprintf("conference %d", c.ID), `
INSERT INTO conferences (id, name)
VALUES (:id, :name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":   c.ID,
			"name": c.Name,
		}); err != nil {
			return err
		}
	}

	for _, t := range memory.SeedTeams() {
		if err := exec(fmt.Sprintf("team %d", t.ID), `
INSERT INTO teams (id, conference_id, name, games_played, wins, losses, overtime_losses, points, goals_for, goals_against)
VALUES (:id, :conference_id, :name, :games_played, :wins, :losses, :overtime_losses, :points, :goals_for, :goals_against)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":              t.ID,
			"conference_id":   t.ConferenceID,
			"name":            t.Name,
			"games_played":    t.GamesPlayed,
			"wins":            t.Wins,
			"losses":          t.Losses,
			"overtime_losses": t.OvertimeLosses,
			"points":          t.Points,
			"goals_for":       t.GoalsFor,
			"goals_against":   t.GoalsAgainst,
		}); err != nil {
			return err
		}
	}

	insert := func(name, table string, model any) error {
		query, args, err := qb.InsertModel(table, model, "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		return nil
	}

	for _, m := range memory.SeedMatches(time.Now().UTC()) {
		if err := insert(fmt.Sprintf("match %d", m.ID), "matches", newMatchInsertModel(m)); err != nil {
			return err
		}
	}

	for _, reg := range memory.SeedRegulations() {
		if err := insert(fmt.Sprintf("regulation %d", reg.ID), "regulations", regulationWriteModel{
			ID:         reg.ID,
			Title:      reg.Title,
			Content:    reg.Content,
			OrderIndex: reg.OrderIndex,
		}); err != nil {
			return err
		}
	}

	for _, table := range []string{"conferences", "teams", "matches", "regulations"} {
		query := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE(MAX(id), 1)) FROM %s`, table, table)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("advance %s sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
