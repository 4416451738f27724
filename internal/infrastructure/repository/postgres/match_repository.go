package postgres

import (
	"context"
	"database/sql"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

const matchColumns = `
id, public_id, team_a_public_id, team_b_public_id, toss_winner_public_id,
toss_decision, format, overs_limit, status, current_innings, created_at, updated_at`

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE public_id = $1`

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, matchID); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrap(err, "get match")
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
ORDER BY id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list matches")
	}
	return matchesFromRows(rows), nil
}

func (r *MatchRepository) ListByStatus(ctx context.Context, status string) ([]match.Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM matches
WHERE status = $1
ORDER BY id`

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, status); err != nil {
		return nil, crerr.Wrap(err, "list matches by status")
	}
	return matchesFromRows(rows), nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	const query = `
INSERT INTO matches (public_id, team_a_public_id, team_b_public_id, toss_winner_public_id,
  toss_decision, format, overs_limit, status, current_innings)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, item.TeamAID, item.TeamBID,
		nullString(item.TossWinnerID), nullString(item.TossDecision),
		string(item.Format), item.OversLimit, item.Status, item.CurrentInnings,
	); err != nil {
		return crerr.Wrap(err, "insert match")
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	const query = `
UPDATE matches SET
  toss_winner_public_id = $2,
  toss_decision = $3,
  status = $4,
  current_innings = $5,
  updated_at = now()
WHERE public_id = $1`

	if _, err := r.db.ExecContext(ctx, query,
		item.ID, nullString(item.TossWinnerID), nullString(item.TossDecision),
		item.Status, item.CurrentInnings,
	); err != nil {
		return crerr.Wrap(err, "update match")
	}
	return nil
}

func matchesFromRows(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:             row.PublicID,
		TeamAID:        row.TeamAPublicID,
		TeamBID:        row.TeamBPublicID,
		TossWinnerID:   row.TossWinnerID.String,
		TossDecision:   row.TossDecision.String,
		Format:         match.Format(row.Format),
		OversLimit:     row.OversLimit,
		Status:         row.Status,
		CurrentInnings: row.CurrentInnings,
	}
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
