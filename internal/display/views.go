package display

import (
	"html/template"

	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

// Phase is the lifecycle of a view. Loading is what the page shell shows
// before the fragment request completes.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
)

type StandingsView struct {
	Phase       Phase
	Conferences []ConferenceTable
}

type ConferenceTable struct {
	ID    int64
	Name  string
	Teams []team.Team
}

func (v StandingsView) ItemCount() int {
	return len(v.Conferences)
}

type ScheduleView struct {
	Phase   Phase
	Matches []MatchCard
}

// MatchCard is a match ready for display. Scores are only set when
// ShowScore is true.
type MatchCard struct {
	ID          int64
	HomeTeam    string
	AwayTeam    string
	Date        string
	Status      string
	StatusLabel string
	ShowScore   bool
	HomeScore   string
	AwayScore   string
}

func (v ScheduleView) ItemCount() int {
	return len(v.Matches)
}

type RegulationsView struct {
	Phase   Phase
	Entries []RegulationEntry
}

type RegulationEntry struct {
	ID      int64
	Anchor  string
	Title   string
	Content template.HTML
}

func (v RegulationsView) ItemCount() int {
	return len(v.Entries)
}
