package display

import (
	"context"
	"errors"
	"html"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

type stubSource struct {
	conferences []conference.Conference
	matches     []match.Match
	regulations []regulation.Regulation
	err         error
	calls       atomic.Int32
}

func (s *stubSource) GetStandings(context.Context) ([]conference.Conference, error) {
	s.calls.Add(1)
	return s.conferences, s.err
}

func (s *stubSource) GetSchedule(context.Context) ([]match.Match, error) {
	s.calls.Add(1)
	return s.matches, s.err
}

func (s *stubSource) GetRegulations(context.Context) ([]regulation.Regulation, error) {
	s.calls.Add(1)
	return s.regulations, s.err
}

func intPtr(v int) *int { return &v }

func mustTimestamp(t *testing.T, raw string) match.Timestamp {
	t.Helper()
	ts, err := match.ParseTimestamp(raw)
	if err != nil {
		t.Fatalf("parse timestamp %q: %v", raw, err)
	}
	return ts
}

func TestService_StandingsKeepsServerOrder(t *testing.T) {
	t.Parallel()

	source := &stubSource{conferences: []conference.Conference{
		{ID: 2, Name: "Восток", Teams: []team.Team{
			{ID: 5, Name: "Gamma", Position: 2, Points: 30},
			{ID: 4, Name: "Delta", Position: 1, Points: 10},
		}},
		{ID: 1, Name: "Запад"},
	}}
	service := NewService(source, time.UTC, nil)

	view := service.Standings(context.Background())
	if view.Phase != PhaseReady {
		t.Fatalf("expected ready phase")
	}
	if view.ItemCount() != 2 {
		t.Fatalf("expected 2 conference tables, got %d", view.ItemCount())
	}
	if view.Conferences[0].Name != "Восток" {
		t.Fatalf("expected server conference order, got %q first", view.Conferences[0].Name)
	}
	if view.Conferences[0].Teams[0].Name != "Gamma" {
		t.Fatalf("teams must not be re-sorted, got %q first", view.Conferences[0].Teams[0].Name)
	}
	if source.calls.Load() != 1 {
		t.Fatalf("expected exactly one read, got %d", source.calls.Load())
	}
}

func TestService_ScheduleScoreVisibility(t *testing.T) {
	t.Parallel()

	source := &stubSource{matches: []match.Match{
		{ID: 1, HomeTeam: "Alpha", AwayTeam: "Beta", Status: match.StatusScheduled, HomeScore: intPtr(3), AwayScore: intPtr(1), MatchDate: mustTimestamp(t, "2025-01-15T19:30:00")},
		{ID: 2, HomeTeam: "Gamma", AwayTeam: "Delta", Status: match.StatusFinished, HomeScore: intPtr(0), AwayScore: intPtr(0), MatchDate: mustTimestamp(t, "2025-01-10T18:00:00")},
		{ID: 3, HomeTeam: "Omega", AwayTeam: "Sigma", Status: match.StatusFinished, HomeScore: intPtr(2)},
	}}
	service := NewService(source, time.UTC, nil)

	view := service.Schedule(context.Background())
	if view.ItemCount() != 3 {
		t.Fatalf("expected 3 cards, got %d", view.ItemCount())
	}

	scheduled := view.Matches[0]
	if scheduled.ShowScore || scheduled.HomeScore != "" || scheduled.AwayScore != "" {
		t.Fatalf("scheduled match must not expose scores: %+v", scheduled)
	}
	if scheduled.StatusLabel != "Запланирован" {
		t.Fatalf("unexpected status label: %q", scheduled.StatusLabel)
	}
	if scheduled.Date != "15 января 2025 г., 19:30" {
		t.Fatalf("unexpected date: %q", scheduled.Date)
	}

	finished := view.Matches[1]
	if !finished.ShowScore || finished.HomeScore != "0" || finished.AwayScore != "0" {
		t.Fatalf("finished match must render literal zero scores: %+v", finished)
	}

	partial := view.Matches[2]
	if partial.HomeScore != "2" || partial.AwayScore != "–" {
		t.Fatalf("unexpected partial scores: %+v", partial)
	}
	if partial.Date != "Дата уточняется" {
		t.Fatalf("unexpected placeholder for missing date: %q", partial.Date)
	}
}

func TestService_FailedReadLooksEmpty(t *testing.T) {
	t.Parallel()

	failing := NewService(&stubSource{err: errors.New("upstream down")}, time.UTC, nil)
	empty := NewService(&stubSource{}, time.UTC, nil)
	ctx := context.Background()

	if failing.Standings(ctx).ItemCount() != empty.Standings(ctx).ItemCount() {
		t.Fatalf("failed standings must look like no data")
	}
	if failing.Schedule(ctx).ItemCount() != 0 || failing.Regulations(ctx).ItemCount() != 0 {
		t.Fatalf("failed reads must render empty views")
	}
	if failing.Schedule(ctx).Phase != PhaseReady {
		t.Fatalf("failed reads still leave the loading phase")
	}
}

func TestService_RegulationsRenderTextVerbatim(t *testing.T) {
	t.Parallel()

	source := &stubSource{regulations: []regulation.Regulation{
		{ID: 1, Title: "Rule 1", Content: "No fighting", OrderIndex: 0},
		{ID: 2, Title: "Rule 1", Content: "Use a <stick> only; 1 * 2 * 3 & *not bold*", OrderIndex: 1},
		{ID: 3, Title: "Общие положения", Content: "# not a heading\r\n1. not a list\n<script>alert(1)</script>", OrderIndex: 2},
		{ID: 4, Title: "!!!", Content: "x", OrderIndex: 3},
	}}
	service := NewService(source, time.UTC, nil)

	view := service.Regulations(context.Background())
	if view.ItemCount() != 4 {
		t.Fatalf("expected 4 entries, got %d", view.ItemCount())
	}
	if view.Entries[0].Anchor != "rule-1" || view.Entries[1].Anchor != "rule-1-2" {
		t.Fatalf("expected unique anchors, got %q and %q", view.Entries[0].Anchor, view.Entries[1].Anchor)
	}

	for i, want := range []string{
		"No fighting",
		"Use a <stick> only; 1 * 2 * 3 & *not bold*",
		"# not a heading\n1. not a list\n<script>alert(1)</script>",
	} {
		rendered := string(view.Entries[i].Content)
		if strings.Contains(rendered, "<stick>") || strings.Contains(rendered, "<script>") {
			t.Fatalf("markup must be escaped, got %s", rendered)
		}
		if got := html.UnescapeString(strings.ReplaceAll(rendered, "<br>\n", "\n")); got != want {
			t.Fatalf("entry %d text changed:\nwant: %q\ngot:  %q", i, want, got)
		}
	}
	if !strings.Contains(string(view.Entries[2].Content), "<br>") {
		t.Fatalf("expected line breaks, got %s", view.Entries[2].Content)
	}

	if view.Entries[2].Anchor == "" {
		t.Fatalf("expected transliterated anchor for cyrillic title")
	}
	if view.Entries[3].Anchor != "section-4" {
		t.Fatalf("expected id fallback anchor, got %q", view.Entries[3].Anchor)
	}
}

func TestFormatMatchDate_UsesLocation(t *testing.T) {
	t.Parallel()

	moscow := time.FixedZone("MSK", 3*60*60)
	zoned := mustTimestamp(t, "2025-03-01T16:05:00Z")
	if got := FormatMatchDate(zoned, moscow); got != "1 марта 2025 г., 19:05" {
		t.Fatalf("unexpected zoned date: %q", got)
	}

	naive := mustTimestamp(t, "2025-12-31T23:00")
	if got := FormatMatchDate(naive, moscow); got != "31 декабря 2025 г., 23:00" {
		t.Fatalf("naive timestamps keep their wall clock, got %q", got)
	}
	if got := FormatShortDate(naive, moscow); got != "31.12.2025" {
		t.Fatalf("unexpected short date: %q", got)
	}
}

func TestService_Probe(t *testing.T) {
	t.Parallel()

	healthy := NewService(&stubSource{}, time.UTC, nil)
	report, err := healthy.Probe(context.Background(), 2)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !report.Ready || len(report.Resources) != 3 {
		t.Fatalf("unexpected healthy report: %+v", report)
	}
	if report.Resources[0].Resource != "regulations" {
		t.Fatalf("expected sorted resources, got %+v", report.Resources)
	}

	failing := NewService(&stubSource{err: errors.New("boom")}, time.UTC, nil)
	report, err = failing.Probe(context.Background(), 0)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if report.Ready {
		t.Fatalf("expected not ready report")
	}
	for _, row := range report.Resources {
		if row.OK || row.Error != "boom" {
			t.Fatalf("unexpected probe row: %+v", row)
		}
	}
}
