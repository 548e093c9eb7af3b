package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
)

type conferenceTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamTableModel struct {
	ID             int64     `db:"id"`
	ConferenceID   int64     `db:"conference_id"`
	Name           string    `db:"name"`
	GamesPlayed    int       `db:"games_played"`
	Wins           int       `db:"wins"`
	Losses         int       `db:"losses"`
	OvertimeLosses int       `db:"overtime_losses"`
	Points         int       `db:"points"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type teamUpdateModel struct {
	Name           string `db:"name"`
	GamesPlayed    int    `db:"games_played"`
	Wins           int    `db:"wins"`
	Losses         int    `db:"losses"`
	OvertimeLosses int    `db:"overtime_losses"`
	Points         int    `db:"points"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
}

// matchRowModel is one schedule row joined with both team names.
type matchRowModel struct {
	ID         int64           `db:"id"`
	HomeTeamID int64           `db:"home_team_id"`
	AwayTeamID int64           `db:"away_team_id"`
	HomeTeam   string          `db:"home_team"`
	AwayTeam   string          `db:"away_team"`
	MatchDate  match.Timestamp `db:"match_date"`
	HomeScore  sql.NullInt32   `db:"home_score"`
	AwayScore  sql.NullInt32   `db:"away_score"`
	Status     string          `db:"status"`
}

// matchInsertModel carries ID only for seed rows; a zero ID is left to the
// serial.
type matchInsertModel struct {
	ID         int64           `db:"id,omitempty"`
	HomeTeamID int64           `db:"home_team_id"`
	AwayTeamID int64           `db:"away_team_id"`
	MatchDate  match.Timestamp `db:"match_date"`
	HomeScore  sql.NullInt32   `db:"home_score"`
	AwayScore  sql.NullInt32   `db:"away_score"`
	Status     string          `db:"status"`
}

type regulationTableModel struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	OrderIndex int       `db:"order_index"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type regulationWriteModel struct {
	ID         int64  `db:"id,omitempty"`
	Title      string `db:"title"`
	Content    string `db:"content"`
	OrderIndex int    `db:"order_index"`
}

func newMatchInsertModel(item match.Match) matchInsertModel {
	return matchInsertModel{
		ID:         item.ID,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		MatchDate:  item.MatchDate,
		HomeScore:  ptrToNullInt(item.HomeScore),
		AwayScore:  ptrToNullInt(item.AwayScore),
		Status:     string(item.Status),
	}
}
