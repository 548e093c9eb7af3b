package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
)

type RegulationRepository struct {
	mu     sync.RWMutex
	items  map[int64]regulation.Regulation
	nextID int64
}

func NewRegulationRepository(seed []regulation.Regulation) *RegulationRepository {
	repo := &RegulationRepository{items: make(map[int64]regulation.Regulation, len(seed)), nextID: 1}
	for _, item := range seed {
		repo.items[item.ID] = item
		if item.ID >= repo.nextID {
			repo.nextID = item.ID + 1
		}
	}
	return repo
}

func (r *RegulationRepository) List(_ context.Context) ([]regulation.Regulation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]regulation.Regulation, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderIndex != out[j].OrderIndex {
			return out[i].OrderIndex < out[j].OrderIndex
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *RegulationRepository) Create(_ context.Context, item regulation.Regulation) (regulation.Regulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = item

	return item, nil
}

func (r *RegulationRepository) Update(_ context.Context, item regulation.Regulation) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return false, nil
	}
	r.items[item.ID] = item

	return true, nil
}
