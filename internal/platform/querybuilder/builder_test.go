package querybuilder

import "testing"

func TestSelectBuilder_Join(t *testing.T) {
	query, args, err := Select("m.id", "ht.name AS home_team").
		From("matches m").
		Join("teams ht ON ht.id = m.home_team_id").
		LeftJoin("teams at ON at.id = m.away_team_id").
		Where(Eq("m.status", "finished"), Expr("m.match_date >= ?", "2025-01-01")).
		OrderBy("m.match_date DESC NULLS LAST", "m.id DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT m.id, ht.name AS home_team FROM matches m JOIN teams ht ON ht.id = m.home_team_id LEFT JOIN teams at ON at.id = m.away_team_id WHERE m.status = $1 AND m.match_date >= $2 ORDER BY m.match_date DESC NULLS LAST, m.id DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "finished" || args[1] != "2025-01-01" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Title      string `db:"title"`
		Content    string `db:"content"`
		OrderIndex int    `db:"order_index"`
		Skipped    string `db:"-"`
		untagged   string
	}

	query, args, err := InsertModel("regulations", row{Title: "Rule", Content: "Text", OrderIndex: 2, untagged: "x"}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO regulations (title, content, order_index) VALUES ($1, $2, $3) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Rule" || args[2] != 2 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_SetModel(t *testing.T) {
	type row struct {
		Name string `db:"name"`
		Wins int    `db:"wins"`
	}

	query, args, err := Update("teams").
		SetModel(row{Name: "Alpha", Wins: 3}).
		SetExpr("updated_at", "NOW()").
		Where(Eq("id", int64(7))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE teams SET name = $1, wins = $2, updated_at = NOW() WHERE id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Alpha" || args[1] != 3 || args[2] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder_Errors(t *testing.T) {
	if _, _, err := Update("teams").Set("name", "x").ToSQL(); err == nil {
		t.Fatalf("expected error for update without where clause")
	}
	if _, _, err := Update("teams").SetModel(42).Where(Eq("id", 1)).ToSQL(); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}

func TestInsertModel_OmitEmpty(t *testing.T) {
	type row struct {
		ID   int64  `db:"id,omitempty"`
		Name string `db:"name"`
	}

	query, args, err := InsertModel("conferences", row{Name: "Запад"}, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	if query != "INSERT INTO conferences (name) VALUES ($1)" {
		t.Fatalf("zero id must be omitted, got %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("unexpected args: %+v", args)
	}

	query, args, err = InsertModel("conferences", row{ID: 3, Name: "Запад"}, "")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	if query != "INSERT INTO conferences (id, name) VALUES ($1, $2)" || args[0] != int64(3) {
		t.Fatalf("set id must be kept, got %s %+v", query, args)
	}
}
