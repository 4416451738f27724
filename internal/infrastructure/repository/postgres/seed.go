package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo fixtures into an empty database. A non-empty
// teams table means real data is present and the seed is skipped.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return crerr.Wrap(err, "count teams for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		const query = `
INSERT INTO teams (public_id, name, short_name, logo_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (public_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, query, t.ID, t.Name, t.ShortName, t.LogoURL); err != nil {
			return crerr.Wrapf(err, "seed team %s", t.ID)
		}
	}

	for _, p := range memory.SeedPlayers() {
		const query = `
INSERT INTO players (public_id, team_public_id, name, role, batting_order)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (public_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, query, p.ID, p.TeamID, p.Name, string(p.Role), p.BattingOrder); err != nil {
			return crerr.Wrapf(err, "seed player %s", p.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		const query = `
INSERT INTO matches (public_id, team_a_public_id, team_b_public_id, toss_winner_public_id,
  toss_decision, format, overs_limit, status, current_innings)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (public_id) DO NOTHING`
		if _, err := tx.ExecContext(ctx, query,
			m.ID, m.TeamAID, m.TeamBID,
			nullString(m.TossWinnerID), nullString(m.TossDecision),
			string(m.Format), m.OversLimit, m.Status, m.CurrentInnings,
		); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}
