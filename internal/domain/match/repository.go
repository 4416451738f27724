package match

import "context"

// Repository exposes match read/write operations.
type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	List(ctx context.Context) ([]Match, error)
	ListByStatus(ctx context.Context, status string) ([]Match, error)
	Create(ctx context.Context, item Match) error
	Update(ctx context.Context, item Match) error
}
