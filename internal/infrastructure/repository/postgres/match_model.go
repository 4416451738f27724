package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID             int64          `db:"id"`
	PublicID       string         `db:"public_id"`
	TeamAPublicID  string         `db:"team_a_public_id"`
	TeamBPublicID  string         `db:"team_b_public_id"`
	TossWinnerID   sql.NullString `db:"toss_winner_public_id"`
	TossDecision   sql.NullString `db:"toss_decision"`
	Format         string         `db:"format"`
	OversLimit     int            `db:"overs_limit"`
	Status         string         `db:"status"`
	CurrentInnings int            `db:"current_innings"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
