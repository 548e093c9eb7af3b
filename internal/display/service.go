package display

import (
	"context"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
)

// Source is the read side of the league API used by the public views.
type Source interface {
	GetStandings(ctx context.Context) ([]conference.Conference, error)
	GetSchedule(ctx context.Context) ([]match.Match, error)
	GetRegulations(ctx context.Context) ([]regulation.Regulation, error)
}

// Service loads the public views. Each load issues exactly one read. A
// failed read is logged and produces the same view as an empty response.
type Service struct {
	source   Source
	logger   *logging.Logger
	location *time.Location
}

func NewService(source Source, location *time.Location, logger *logging.Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Service{
		source:   source,
		logger:   logger.Named("display"),
		location: location,
	}
}

func (s *Service) Location() *time.Location {
	return s.location
}

func (s *Service) Standings(ctx context.Context) StandingsView {
	view := StandingsView{Phase: PhaseReady}

	items, err := s.source.GetStandings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load standings failed", "error", err)
		return view
	}

	view.Conferences = make([]ConferenceTable, 0, len(items))
	for _, item := range items {
		view.Conferences = append(view.Conferences, ConferenceTable{
			ID:    item.ID,
			Name:  item.Name,
			Teams: item.Teams,
		})
	}
	return view
}

func (s *Service) Schedule(ctx context.Context) ScheduleView {
	view := ScheduleView{Phase: PhaseReady}

	items, err := s.source.GetSchedule(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load schedule failed", "error", err)
		return view
	}

	view.Matches = make([]MatchCard, 0, len(items))
	for _, item := range items {
		view.Matches = append(view.Matches, s.matchCard(item))
	}
	return view
}

func (s *Service) matchCard(item match.Match) MatchCard {
	card := MatchCard{
		ID:          item.ID,
		HomeTeam:    item.HomeTeam,
		AwayTeam:    item.AwayTeam,
		Date:        FormatMatchDate(item.MatchDate, s.location),
		Status:      string(item.Status),
		StatusLabel: StatusLabel(item.Status),
	}
	if item.Status.IsFinished() {
		card.ShowScore = true
		card.HomeScore = FormatScore(item.HomeScore)
		card.AwayScore = FormatScore(item.AwayScore)
	}
	return card
}

func (s *Service) Regulations(ctx context.Context) RegulationsView {
	view := RegulationsView{Phase: PhaseReady}

	items, err := s.source.GetRegulations(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "load regulations failed", "error", err)
		return view
	}

	seen := make(map[string]int, len(items))
	view.Entries = make([]RegulationEntry, 0, len(items))
	for _, item := range items {
		view.Entries = append(view.Entries, RegulationEntry{
			ID:      item.ID,
			Anchor:  anchorFor(item, seen),
			Title:   item.Title,
			Content: RenderText(item.Content),
		})
	}
	return view
}

// RenderText shows regulation text exactly as stored: every character is
// escaped and line breaks become <br>.
func RenderText(source string) template.HTML {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>\n"))
}

func anchorFor(item regulation.Regulation, seen map[string]int) string {
	base := slug.Make(item.Title)
	if base == "" {
		base = "section-" + strconv.FormatInt(item.ID, 10)
	}
	seen[base]++
	if n := seen[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}
