package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

func TestMatchRepository_ListResolvesNamesNewestFirst(t *testing.T) {
	ctx := context.Background()
	teams := NewTeamRepository(SeedTeams())
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(teams, SeedMatches(now))

	created, err := repo.Create(ctx, match.Match{HomeTeamID: 1, AwayTeamID: 5, Status: match.StatusScheduled})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected next id 7, got %d", created.ID)
	}

	if _, err := teams.Update(ctx, team.Team{ID: 1, Name: "Политех СПб"}); err != nil {
		t.Fatalf("rename team: %v", err)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if items[0].ID != 6 {
		t.Fatalf("expected latest match first, got %d", items[0].ID)
	}
	last := items[len(items)-1]
	if last.ID != 7 || last.HomeTeam != "Политех СПб" || last.AwayTeam != "Сибирские Лисы" {
		t.Fatalf("expected undated match last with resolved names, got %+v", last)
	}
}

func TestTeamRepository_UpdateUnknownTeam(t *testing.T) {
	repo := NewTeamRepository(SeedTeams())

	found, err := repo.Update(context.Background(), team.Team{ID: 404, Name: "Ghost"})
	if err != nil || found {
		t.Fatalf("expected not found without error, got found=%v err=%v", found, err)
	}

	item, ok, _ := repo.GetByID(context.Background(), 1)
	if !ok || item.ConferenceID != ConferenceIDWest {
		t.Fatalf("unexpected seed team: %+v", item)
	}
}

func TestRegulationRepository_OrderAndIdentity(t *testing.T) {
	ctx := context.Background()
	repo := NewRegulationRepository(SeedRegulations())

	created, err := repo.Create(ctx, regulation.Regulation{Title: "Вступление", Content: "Текст", OrderIndex: 0})
	if err != nil {
		t.Fatalf("create regulation: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5, got %d", created.ID)
	}

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list regulations: %v", err)
	}
	if items[0].ID != created.ID {
		t.Fatalf("expected order_index 0 first, got %+v", items[0])
	}
}
