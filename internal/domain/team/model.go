package team

import "fmt"

// Team is a club taking part in the league. Position is the display rank the
// server computes inside the team's conference.
type Team struct {
	ID             int64  `json:"id" db:"id" validate:"required,gt=0"`
	Name           string `json:"name" db:"name" validate:"required"`
	ConferenceID   int64  `json:"conference_id,omitempty" db:"conference_id"`
	GamesPlayed    int    `json:"games_played" db:"games_played" validate:"gte=0"`
	Wins           int    `json:"wins" db:"wins" validate:"gte=0"`
	Losses         int    `json:"losses" db:"losses" validate:"gte=0"`
	OvertimeLosses int    `json:"overtime_losses" db:"overtime_losses" validate:"gte=0"`
	Points         int    `json:"points" db:"points" validate:"gte=0"`
	GoalsFor       int    `json:"goals_for" db:"goals_for" validate:"gte=0"`
	GoalsAgainst   int    `json:"goals_against" db:"goals_against" validate:"gte=0"`
	Position       int    `json:"position,omitempty" db:"-"`
}

const (
	PointsPerWin          = 2
	PointsPerOvertimeLoss = 1
)

// PointsFor applies the league point rule. Regulation losses earn nothing.
func PointsFor(wins, overtimeLosses int) int {
	return wins*PointsPerWin + overtimeLosses*PointsPerOvertimeLoss
}

func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	for field, value := range map[string]int{
		"games_played":    t.GamesPlayed,
		"wins":            t.Wins,
		"losses":          t.Losses,
		"overtime_losses": t.OvertimeLosses,
		"points":          t.Points,
		"goals_for":       t.GoalsFor,
		"goals_against":   t.GoalsAgainst,
	} {
		if value < 0 {
			return fmt.Errorf("team %s must be >= 0", field)
		}
	}

	return nil
}
