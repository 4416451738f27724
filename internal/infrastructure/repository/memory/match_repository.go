package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	order   []string
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	repo := &MatchRepository{matches: make(map[string]match.Match, len(matches))}
	for _, item := range matches {
		repo.matches[item.ID] = item
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[matchID]
	return item, ok, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.matches[id])
	}
	return out, nil
}

func (r *MatchRepository) ListByStatus(_ context.Context, status string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, id := range r.order {
		if r.matches[id].Status == status {
			out = append(out, r.matches[id])
		}
	}
	return out, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.matches[item.ID] = item
	return nil
}

func (r *MatchRepository) Update(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches[item.ID] = item
	return nil
}
