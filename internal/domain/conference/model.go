package conference

import (
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

// Conference groups teams that share one standings table.
type Conference struct {
	ID    int64       `json:"id" db:"id" validate:"required,gt=0"`
	Name  string      `json:"name" db:"name" validate:"required"`
	Teams []team.Team `json:"teams,omitempty" db:"-" validate:"-"`
}

func (c Conference) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("conference id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("conference name is required")
	}

	return nil
}
