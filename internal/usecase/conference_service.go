package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
	"go.opentelemetry.io/otel/attribute"
)

type ConferenceService struct {
	conferenceRepo conference.Repository
}

func NewConferenceService(conferenceRepo conference.Repository) *ConferenceService {
	return &ConferenceService{conferenceRepo: conferenceRepo}
}

func (s *ConferenceService) ListConferences(ctx context.Context) ([]conference.Conference, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConferenceService.ListConferences")
	defer span.End()

	items, err := s.conferenceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conferences: %w", err)
	}
	return items, nil
}

// RenameConference only touches the name; teams sent along are ignored.
func (s *ConferenceService) RenameConference(ctx context.Context, item conference.Conference) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ConferenceService.RenameConference", attribute.Int64("conference.id", item.ID))
	defer span.End()

	item.Teams = nil
	if err := validateInput("conference", item); err != nil {
		return err
	}

	found, err := s.conferenceRepo.Rename(ctx, item.ID, item.Name)
	if err != nil {
		return fmt.Errorf("rename conference: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: conference=%d", ErrNotFound, item.ID)
	}
	return nil
}
