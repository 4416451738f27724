package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-live/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	const query = `
SELECT id, public_id, team_public_id, name, role, batting_order, created_at, updated_at
FROM players
WHERE public_id = $1`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, crerr.Wrap(err, "get player")
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	const query = `
SELECT id, public_id, team_public_id, name, role, batting_order, created_at, updated_at
FROM players
WHERE team_public_id = $1
ORDER BY batting_order, id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, teamID); err != nil {
		return nil, crerr.Wrap(err, "list players by team")
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	const query = `
INSERT INTO players (public_id, team_public_id, name, role, batting_order)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (public_id) DO UPDATE SET
  team_public_id = EXCLUDED.team_public_id,
  name = EXCLUDED.name,
  role = EXCLUDED.role,
  batting_order = EXCLUDED.batting_order,
  updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.TeamID, item.Name, string(item.Role), item.BattingOrder); err != nil {
		return crerr.Wrap(err, "upsert player")
	}
	return nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PublicID,
		TeamID:       row.TeamPublicID,
		Name:         row.Name,
		Role:         player.Role(row.Role),
		BattingOrder: row.BattingOrder,
	}
}
