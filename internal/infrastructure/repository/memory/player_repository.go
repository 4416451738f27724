package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-live/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[string]player.Player
	byTeam  map[string][]string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	repo := &PlayerRepository{
		players: make(map[string]player.Player, len(players)),
		byTeam:  make(map[string][]string),
	}
	for _, item := range players {
		repo.players[item.ID] = item
		repo.byTeam[item.TeamID] = append(repo.byTeam[item.TeamID], item.ID)
	}
	return repo
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTeam[teamID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.players[id])
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[item.ID]; !exists {
		r.byTeam[item.TeamID] = append(r.byTeam[item.TeamID], item.ID)
	}
	r.players[item.ID] = item
	return nil
}
