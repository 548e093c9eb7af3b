package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"github.com/riskibarqy/hockey-league/internal/domain/team"
	conferencemock "github.com/riskibarqy/hockey-league/internal/mocks/domain/conference"
	teammock "github.com/riskibarqy/hockey-league/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestStandingsService_GroupsAndRanksTeams(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	conferenceRepo := conferencemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewStandingsService(conferenceRepo, teamRepo)

	conferenceRepo.On("List", mock.Anything).Return([]conference.Conference{
		{ID: 1, Name: "Запад"},
		{ID: 2, Name: "Восток"},
		{ID: 3, Name: "Резерв"},
	}, nil).Once()
	teamRepo.On("List", mock.Anything).Return([]team.Team{
		{ID: 1, ConferenceID: 1, Name: "Alpha", Points: 4},
		{ID: 2, ConferenceID: 1, Name: "Beta", Points: 10},
		{ID: 3, ConferenceID: 2, Name: "Gamma", Points: 7},
	}, nil).Once()

	got, err := service.Standings(ctx)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected conference count: got=%d want=3", len(got))
	}
	if got[0].Teams[0].Name != "Beta" || got[0].Teams[0].Position != 1 || got[0].Teams[1].Position != 2 {
		t.Fatalf("unexpected west table: %+v", got[0].Teams)
	}
	if len(got[1].Teams) != 1 || got[1].Teams[0].Name != "Gamma" {
		t.Fatalf("unexpected east table: %+v", got[1].Teams)
	}
	if len(got[2].Teams) != 0 {
		t.Fatalf("expected empty table for conference without teams, got %+v", got[2].Teams)
	}
}

func TestStandingsService_PropagatesRepositoryError(t *testing.T) {
	t.Parallel()

	conferenceRepo := conferencemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	service := NewStandingsService(conferenceRepo, teamRepo)

	boom := errors.New("connection reset")
	conferenceRepo.On("List", mock.Anything).Return(nil, boom).Once()

	_, err := service.Standings(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
	teamRepo.AssertNotCalled(t, "List", mock.Anything)
}
