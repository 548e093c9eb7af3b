package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
)

type ScheduleService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
}

func NewScheduleService(matchRepo match.Repository, teamRepo team.Repository) *ScheduleService {
	return &ScheduleService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
	}
}

// ListMatches returns matches newest first with team names resolved.
func (s *ScheduleService) ListMatches(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.ListMatches")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// CreateMatch stores a new match. A missing status becomes scheduled; both
// teams must exist and differ.
func (s *ScheduleService) CreateMatch(ctx context.Context, item match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.CreateMatch")
	defer span.End()

	item.ID = 0
	item.Status = match.NormalizeStatus(string(item.Status))
	if err := validateInput("match", item); err != nil {
		return match.Match{}, err
	}
	if item.HomeTeamID == item.AwayTeamID {
		return match.Match{}, fmt.Errorf("%w: home and away team are the same", ErrInvalidInput)
	}

	for _, teamID := range []int64{item.HomeTeamID, item.AwayTeamID} {
		_, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return match.Match{}, fmt.Errorf("get team: %w", err)
		}
		if !exists {
			return match.Match{}, fmt.Errorf("%w: team=%d", ErrInvalidInput, teamID)
		}
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return created, nil
}
