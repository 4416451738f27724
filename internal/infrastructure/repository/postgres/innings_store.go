package postgres

import (
	"context"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

// InningsStore persists the ball log and a denormalized aggregate document.
// The log rows are authoritative; the document exists so restarts can serve
// reads before a replay finishes.
type InningsStore struct {
	db *sqlx.DB
}

func NewInningsStore(db *sqlx.DB) *InningsStore {
	return &InningsStore{db: db}
}

func (s *InningsStore) AppendBall(ctx context.Context, ball innings.Ball) (string, error) {
	const query = `
INSERT INTO innings_balls (public_id, innings_public_id, seq, over_number, ball_in_over,
  batsman_public_id, bowler_public_id, runs_off_bat, extra_type, extra_runs,
  wicket_fell, wicket_kind, dismissed_public_id, replacement_public_id, commentary)
VALUES ($1, $2,
  (SELECT COALESCE(MAX(seq), 0) + 1 FROM innings_balls WHERE innings_public_id = $2),
  $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING public_id`

	var publicID string
	if err := s.db.GetContext(ctx, &publicID, query,
		ball.ID, ball.InningsID, ball.Over, ball.BallInOver,
		ball.BatsmanID, ball.BowlerID, ball.RunsOffBat,
		string(ball.ExtraType), ball.ExtraRuns,
		ball.WicketFell, nullString(string(ball.WicketKind)),
		nullString(ball.DismissedID), nullString(ball.ReplacementID), ball.Commentary,
	); err != nil {
		return "", crerr.Wrap(err, "insert ball")
	}
	return publicID, nil
}

func (s *InningsStore) RemoveLastBall(ctx context.Context, inningsID string) (innings.Ball, error) {
	const query = `
DELETE FROM innings_balls
WHERE id = (
  SELECT id FROM innings_balls
  WHERE innings_public_id = $1
  ORDER BY seq DESC
  LIMIT 1
)
RETURNING id, public_id, innings_public_id, seq, over_number, ball_in_over,
  batsman_public_id, bowler_public_id, runs_off_bat, extra_type, extra_runs,
  wicket_fell, wicket_kind, dismissed_public_id, replacement_public_id, commentary, created_at`

	var row ballTableModel
	if err := s.db.GetContext(ctx, &row, query, inningsID); err != nil {
		if isNotFound(err) {
			return innings.Ball{}, innings.ErrNoBalls
		}
		return innings.Ball{}, crerr.Wrap(err, "delete last ball")
	}
	return ballFromRow(row), nil
}

func (s *InningsStore) ListBalls(ctx context.Context, inningsID string) ([]innings.Ball, error) {
	const query = `
SELECT id, public_id, innings_public_id, seq, over_number, ball_in_over,
  batsman_public_id, bowler_public_id, runs_off_bat, extra_type, extra_runs,
  wicket_fell, wicket_kind, dismissed_public_id, replacement_public_id, commentary, created_at
FROM innings_balls
WHERE innings_public_id = $1
ORDER BY seq`

	var rows []ballTableModel
	if err := s.db.SelectContext(ctx, &rows, query, inningsID); err != nil {
		return nil, crerr.Wrap(err, "list balls")
	}

	out := make([]innings.Ball, 0, len(rows))
	for _, row := range rows {
		out = append(out, ballFromRow(row))
	}
	return out, nil
}

func (s *InningsStore) SaveAggregate(ctx context.Context, state innings.State) error {
	document, err := sonic.Marshal(state)
	if err != nil {
		return crerr.Wrap(err, "marshal innings aggregate")
	}

	const query = `
INSERT INTO innings_aggregates (innings_public_id, match_public_id, completed, document)
VALUES ($1, $2, $3, $4)
ON CONFLICT (innings_public_id) DO UPDATE SET
  completed = EXCLUDED.completed,
  document = EXCLUDED.document,
  updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, state.InningsID, state.MatchID, state.Completed, document); err != nil {
		return crerr.Wrap(err, "save innings aggregate")
	}
	return nil
}

func (s *InningsStore) GetAggregate(ctx context.Context, inningsID string) (innings.State, bool, error) {
	const query = `
SELECT document
FROM innings_aggregates
WHERE innings_public_id = $1`

	var document []byte
	if err := s.db.GetContext(ctx, &document, query, inningsID); err != nil {
		if isNotFound(err) {
			return innings.State{}, false, nil
		}
		return innings.State{}, false, crerr.Wrap(err, "get innings aggregate")
	}

	var state innings.State
	if err := sonic.Unmarshal(document, &state); err != nil {
		return innings.State{}, false, crerr.Wrap(err, "unmarshal innings aggregate")
	}
	return state, true, nil
}

func (s *InningsStore) GetCurrentByMatch(ctx context.Context, matchID string) (innings.State, bool, error) {
	const query = `
SELECT document
FROM innings_aggregates
WHERE match_public_id = $1
ORDER BY id DESC
LIMIT 1`

	var document []byte
	if err := s.db.GetContext(ctx, &document, query, matchID); err != nil {
		if isNotFound(err) {
			return innings.State{}, false, nil
		}
		return innings.State{}, false, crerr.Wrap(err, "get current innings aggregate")
	}

	var state innings.State
	if err := sonic.Unmarshal(document, &state); err != nil {
		return innings.State{}, false, crerr.Wrap(err, "unmarshal innings aggregate")
	}
	return state, true, nil
}
