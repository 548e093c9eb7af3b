package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	teams   *TeamRepository
	matches []match.Match
	nextID  int64
}

// NewMatchRepository resolves team names through teams on every read.
func NewMatchRepository(teams *TeamRepository, seed []match.Match) *MatchRepository {
	repo := &MatchRepository{teams: teams, nextID: 1}
	for _, item := range seed {
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
		repo.matches = append(repo.matches, item)
	}
	return repo
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	out := make([]match.Match, len(r.matches))
	copy(out, r.matches)
	r.mu.RUnlock()

	for i := range out {
		out[i].HomeTeam = r.teams.name(out[i].HomeTeamID)
		out[i].AwayTeam = r.teams.name(out[i].AwayTeamID)
	}

	// Undated matches last, then newest first.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].MatchDate, out[j].MatchDate
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		if !a.Equal(b.Time) {
			return a.After(b.Time)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	item.HomeTeam = ""
	item.AwayTeam = ""
	r.nextID++
	r.matches = append(r.matches, item)

	return item, nil
}
