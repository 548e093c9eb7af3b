package web

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/hockey-league/internal/admin"
	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

// Numeric fields that fail to parse are read as zero.
func formInt(values url.Values, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(values.Get(key)))
	if err != nil {
		return 0
	}
	return v
}

func formID(values url.Values, key string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(values.Get(key)), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// formOptionalInt reads a blank or malformed field as absent.
func formOptionalInt(values url.Values, key string) *int {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func formText(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func draftKind(values url.Values) admin.DraftKind {
	return admin.ParseDraftKind(values.Get("draft"))
}

func teamDraft(values url.Values) admin.Draft[team.Team] {
	return admin.Draft[team.Team]{
		Kind: draftKind(values),
		Entity: team.Team{
			ID:             formID(values, "id"),
			ConferenceID:   formID(values, "conference_id"),
			Name:           formText(values, "name"),
			GamesPlayed:    formInt(values, "games_played"),
			Wins:           formInt(values, "wins"),
			Losses:         formInt(values, "losses"),
			OvertimeLosses: formInt(values, "overtime_losses"),
			Points:         formInt(values, "points"),
			GoalsFor:       formInt(values, "goals_for"),
			GoalsAgainst:   formInt(values, "goals_against"),
		},
	}
}

func matchDraft(values url.Values) admin.Draft[match.Match] {
	date, err := match.ParseTimestamp(values.Get("match_date"))
	if err != nil {
		date = match.Timestamp{}
	}
	return admin.Draft[match.Match]{
		Kind: draftKind(values),
		Entity: match.Match{
			HomeTeamID: formID(values, "home_team_id"),
			AwayTeamID: formID(values, "away_team_id"),
			MatchDate:  date,
			HomeScore:  formOptionalInt(values, "home_score"),
			AwayScore:  formOptionalInt(values, "away_score"),
			Status:     match.NormalizeStatus(values.Get("status")),
		},
	}
}

func regulationDraft(values url.Values) admin.Draft[regulation.Regulation] {
	return admin.Draft[regulation.Regulation]{
		Kind: draftKind(values),
		Entity: regulation.Regulation{
			ID:         formID(values, "id"),
			Title:      formText(values, "title"),
			Content:    formText(values, "content"),
			OrderIndex: formInt(values, "order_index"),
		},
	}
}

func conferenceDraft(values url.Values) admin.Draft[conference.Conference] {
	return admin.Draft[conference.Conference]{
		Kind: draftKind(values),
		Entity: conference.Conference{
			ID:   formID(values, "id"),
			Name: formText(values, "name"),
		},
	}
}
