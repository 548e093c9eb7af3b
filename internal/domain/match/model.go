package match

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusFinished  Status = "finished"
)

// NormalizeStatus lowercases the value; empty means scheduled.
func NormalizeStatus(value string) Status {
	status := Status(strings.ToLower(strings.TrimSpace(value)))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func (s Status) Valid() bool {
	return s == StatusScheduled || s == StatusFinished
}

func (s Status) IsFinished() bool {
	return s == StatusFinished
}

// Match is one game between two teams. List responses carry team names,
// create payloads carry team ids. Scores stay nil until the game is played.
type Match struct {
	ID         int64     `json:"id,omitempty" db:"id"`
	HomeTeamID int64     `json:"home_team_id,omitempty" db:"home_team_id" validate:"required,gt=0"`
	HomeTeam   string    `json:"home_team,omitempty" db:"home_team"`
	AwayTeamID int64     `json:"away_team_id,omitempty" db:"away_team_id" validate:"required,gt=0"`
	AwayTeam   string    `json:"away_team,omitempty" db:"away_team"`
	MatchDate  Timestamp `json:"match_date" db:"match_date" validate:"required"`
	HomeScore  *int      `json:"home_score" db:"home_score" validate:"omitempty,gte=0"`
	AwayScore  *int      `json:"away_score" db:"away_score" validate:"omitempty,gte=0"`
	Status     Status    `json:"status" db:"status" validate:"omitempty,oneof=scheduled finished"`
}

func (m Match) Validate() error {
	if m.HomeTeamID <= 0 {
		return fmt.Errorf("match home team id is required")
	}
	if m.AwayTeamID <= 0 {
		return fmt.Errorf("match away team id is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !NormalizeStatus(string(m.Status)).Valid() {
		return fmt.Errorf("match status %q is not supported", m.Status)
	}

	return nil
}
