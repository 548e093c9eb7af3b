package postgres

import (
	"database/sql"
	"testing"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

func TestMatchInsertModel_IDOnlyWhenSet(t *testing.T) {
	score := 4
	item := match.Match{HomeTeamID: 1, AwayTeamID: 2, HomeScore: &score, Status: match.StatusFinished}

	query, args, err := qb.InsertModel("matches", newMatchInsertModel(item), "RETURNING id")
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	want := "INSERT INTO matches (home_team_id, away_team_id, match_date, home_score, away_score, status) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if got := args[3].(sql.NullInt32); !got.Valid || got.Int32 != 4 {
		t.Fatalf("unexpected home score arg: %+v", got)
	}
	if got := args[4].(sql.NullInt32); got.Valid {
		t.Fatalf("missing away score must be NULL, got %+v", got)
	}

	item.ID = 6
	query, args, err = qb.InsertModel("matches", newMatchInsertModel(item), "ON CONFLICT (id) DO NOTHING")
	if err != nil {
		t.Fatalf("build seed insert: %v", err)
	}
	if len(args) != 7 || args[0] != int64(6) {
		t.Fatalf("seed insert must keep the id, got %s %+v", query, args)
	}
}

func TestRegulationWriteModel_UpdateLeavesIDAlone(t *testing.T) {
	query, _, err := qb.Update("regulations").
		SetModel(regulationWriteModel{Title: "T", Content: "C", OrderIndex: 1}).
		Where(qb.Eq("id", 3)).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}
	want := "UPDATE regulations SET title = $1, content = $2, order_index = $3 WHERE id = $4"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
}
