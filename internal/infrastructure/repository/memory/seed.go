package memory

import (
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

const (
	ConferenceIDWest int64 = 1
	ConferenceIDEast int64 = 2
)

func SeedConferences() []conference.Conference {
	return []conference.Conference{
		{ID: ConferenceIDWest, Name: "Западная конференция"},
		{ID: ConferenceIDEast, Name: "Восточная конференция"},
	}
}

func seedTeam(id, conferenceID int64, name string, wins, losses, otl, goalsFor, goalsAgainst int) team.Team {
	return team.Team{
		ID:             id,
		ConferenceID:   conferenceID,
		Name:           name,
		GamesPlayed:    wins + losses + otl,
		Wins:           wins,
		Losses:         losses,
		OvertimeLosses: otl,
		Points:         team.PointsFor(wins, otl),
		GoalsFor:       goalsFor,
		GoalsAgainst:   goalsAgainst,
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		seedTeam(1, ConferenceIDWest, "Политех", 6, 1, 1, 31, 14),
		seedTeam(2, ConferenceIDWest, "Медведи МГУ", 5, 2, 1, 27, 18),
		seedTeam(3, ConferenceIDWest, "Горняк", 3, 4, 1, 19, 24),
		seedTeam(4, ConferenceIDWest, "Буревестник", 1, 6, 1, 12, 33),
		seedTeam(5, ConferenceIDEast, "Сибирские Лисы", 7, 1, 0, 35, 12),
		seedTeam(6, ConferenceIDEast, "Уральские Волки", 4, 3, 1, 22, 21),
		seedTeam(7, ConferenceIDEast, "Байкал", 3, 3, 2, 20, 22),
		seedTeam(8, ConferenceIDEast, "Амурские Тигры", 1, 5, 2, 14, 29),
	}
}

func SeedMatches(now time.Time) []match.Match {
	day := func(offset int, hour int) match.Timestamp {
		t := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
		return match.Timestamp{Time: t}
	}
	score := func(v int) *int { return &v }

	return []match.Match{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, MatchDate: day(-7, 18), HomeScore: score(4), AwayScore: score(2), Status: match.StatusFinished},
		{ID: 2, HomeTeamID: 5, AwayTeamID: 6, MatchDate: day(-6, 19), HomeScore: score(0), AwayScore: score(0), Status: match.StatusFinished},
		{ID: 3, HomeTeamID: 3, AwayTeamID: 4, MatchDate: day(-3, 17), HomeScore: score(3), AwayScore: score(1), Status: match.StatusFinished},
		{ID: 4, HomeTeamID: 7, AwayTeamID: 8, MatchDate: day(2, 18), Status: match.StatusScheduled},
		{ID: 5, HomeTeamID: 2, AwayTeamID: 3, MatchDate: day(4, 19), Status: match.StatusScheduled},
		{ID: 6, HomeTeamID: 6, AwayTeamID: 5, MatchDate: day(9, 18), Status: match.StatusScheduled},
	}
}

func SeedRegulations() []regulation.Regulation {
	return []regulation.Regulation{
		{ID: 1, OrderIndex: 1, Title: "Общие положения", Content: "Лига объединяет студенческие хоккейные команды.\nСезон проводится по круговой системе внутри конференций."},
		{ID: 2, OrderIndex: 2, Title: "Начисление очков", Content: "За победу команда получает 2 очка.\nЗа поражение в овертайме или по буллитам 1 очко.\nЗа поражение в основное время очки не начисляются."},
		{ID: 3, OrderIndex: 3, Title: "Распределение мест", Content: "Места определяются по очкам, затем по числу побед и разнице шайб."},
		{ID: 4, OrderIndex: 4, Title: "Дисциплина", Content: "Драки наказываются дисквалификацией на следующий матч."},
	}
}
