package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

type StandingsService struct {
	conferenceRepo conference.Repository
	teamRepo       team.Repository
}

func NewStandingsService(conferenceRepo conference.Repository, teamRepo team.Repository) *StandingsService {
	return &StandingsService{
		conferenceRepo: conferenceRepo,
		teamRepo:       teamRepo,
	}
}

// Standings returns every conference with its teams ranked. Conferences
// without teams are kept with an empty table.
func (s *StandingsService) Standings(ctx context.Context) ([]conference.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Standings")
	defer span.End()

	conferences, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	byConference := make(map[int64][]team.Team, len(conferences))
	for _, item := range teams {
		byConference[item.ConferenceID] = append(byConference[item.ConferenceID], item)
	}

	out := make([]conference.Conference, 0, len(conferences))
	for _, item := range conferences {
		item.Teams = team.Rank(byConference[item.ID])
		out = append(out, item)
	}
	return out, nil
}
