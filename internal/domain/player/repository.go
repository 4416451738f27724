package player

import "context"

// Repository exposes player read/write operations.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	Upsert(ctx context.Context, item Player) error
}
