package innings

import (
	"context"
	"errors"
)

// ErrNoBalls is returned by RemoveLastBall when the innings has no recorded
// deliveries left to remove.
var ErrNoBalls = errors.New("innings has no recorded balls")

// Store is the durable record interface the session manager depends on. Each
// call is atomic; ListBalls returns balls in insertion order. The core never
// assumes a storage technology beyond these operations.
type Store interface {
	AppendBall(ctx context.Context, ball Ball) (string, error)
	RemoveLastBall(ctx context.Context, inningsID string) (Ball, error)
	ListBalls(ctx context.Context, inningsID string) ([]Ball, error)
	SaveAggregate(ctx context.Context, state State) error
	GetAggregate(ctx context.Context, inningsID string) (State, bool, error)
	GetCurrentByMatch(ctx context.Context, matchID string) (State, bool, error)
}
