package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	"go.opentelemetry.io/otel/attribute"
)

type RegulationService struct {
	regulationRepo regulation.Repository
}

func NewRegulationService(regulationRepo regulation.Repository) *RegulationService {
	return &RegulationService{regulationRepo: regulationRepo}
}

func (s *RegulationService) ListRegulations(ctx context.Context) ([]regulation.Regulation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegulationService.ListRegulations")
	defer span.End()

	items, err := s.regulationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regulations: %w", err)
	}
	return items, nil
}

func (s *RegulationService) CreateRegulation(ctx context.Context, item regulation.Regulation) (regulation.Regulation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegulationService.CreateRegulation")
	defer span.End()

	item.ID = 0
	if err := validateInput("regulation", item); err != nil {
		return regulation.Regulation{}, err
	}

	created, err := s.regulationRepo.Create(ctx, item)
	if err != nil {
		return regulation.Regulation{}, fmt.Errorf("create regulation: %w", err)
	}
	return created, nil
}

func (s *RegulationService) UpdateRegulation(ctx context.Context, item regulation.Regulation) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegulationService.UpdateRegulation", attribute.Int64("regulation.id", item.ID))
	defer span.End()

	if item.ID <= 0 {
		return fmt.Errorf("%w: regulation id is required", ErrInvalidInput)
	}
	if err := validateInput("regulation", item); err != nil {
		return err
	}

	found, err := s.regulationRepo.Update(ctx, item)
	if err != nil {
		return fmt.Errorf("update regulation: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: regulation=%d", ErrNotFound, item.ID)
	}
	return nil
}
