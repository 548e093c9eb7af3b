package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[int64]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConferenceID != out[j].ConferenceID {
			return out[i].ConferenceID < out[j].ConferenceID
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, id int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[id]
	return item, ok, nil
}

// Update replaces the editable columns. Conference membership is kept.
func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.teams[item.ID]
	if !ok {
		return false, nil
	}

	current.Name = item.Name
	current.GamesPlayed = item.GamesPlayed
	current.Wins = item.Wins
	current.Losses = item.Losses
	current.OvertimeLosses = item.OvertimeLosses
	current.Points = item.Points
	current.GoalsFor = item.GoalsFor
	current.GoalsAgainst = item.GoalsAgainst
	r.teams[item.ID] = current

	return true, nil
}

func (r *TeamRepository) name(id int64) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.teams[id].Name
}
