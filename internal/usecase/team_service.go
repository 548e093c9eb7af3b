package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

// ListTeams returns all teams grouped by conference and ranked inside it.
func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(teams))
	start := 0
	for i := 1; i <= len(teams); i++ {
		if i < len(teams) && teams[i].ConferenceID == teams[start].ConferenceID {
			continue
		}
		out = append(out, team.Rank(teams[start:i])...)
		start = i
	}
	return out, nil
}

// UpdateTeam overwrites the whole team record. Points are stored as sent.
func (s *TeamService) UpdateTeam(ctx context.Context, item team.Team) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam", attribute.Int64("team.id", item.ID))
	defer span.End()

	if err := validateInput("team", item); err != nil {
		return err
	}

	found, err := s.teamRepo.Update(ctx, item)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: team=%d", ErrNotFound, item.ID)
	}
	return nil
}
