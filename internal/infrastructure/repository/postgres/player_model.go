package postgres

import "time"

type playerTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	TeamPublicID string    `db:"team_public_id"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	BattingOrder int       `db:"batting_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
