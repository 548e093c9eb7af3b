package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hockey-league/internal/domain/conference"
)

type ConferenceRepository struct {
	mu          sync.RWMutex
	conferences map[int64]conference.Conference
}

func NewConferenceRepository(items []conference.Conference) *ConferenceRepository {
	byID := make(map[int64]conference.Conference, len(items))
	for _, item := range items {
		item.Teams = nil
		byID[item.ID] = item
	}

	return &ConferenceRepository{conferences: byID}
}

func (r *ConferenceRepository) List(_ context.Context) ([]conference.Conference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]conference.Conference, 0, len(r.conferences))
	for _, item := range r.conferences {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ConferenceRepository) Rename(_ context.Context, id int64, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.conferences[id]
	if !ok {
		return false, nil
	}
	item.Name = name
	r.conferences[id] = item

	return true, nil
}
