package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-live/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[string]team.Team
	order []string
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	repo := &TeamRepository{teams: make(map[string]team.Team, len(teams))}
	for _, item := range teams {
		repo.teams[item.ID] = item
		repo.order = append(repo.order, item.ID)
	}
	return repo
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.teams[id])
	}
	return out, nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.teams[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.teams[item.ID] = item
	return nil
}
