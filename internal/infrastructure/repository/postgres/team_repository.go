package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/cricket-live/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	const query = `
SELECT id, public_id, name, short_name, logo_url, created_at, updated_at
FROM teams
WHERE public_id = $1`

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, teamID); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrap(err, "get team")
	}
	return teamFromRow(row), true, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	const query = `
SELECT id, public_id, name, short_name, logo_url, created_at, updated_at
FROM teams
ORDER BY id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, crerr.Wrap(err, "list teams")
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	const query = `
INSERT INTO teams (public_id, name, short_name, logo_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (public_id) DO UPDATE SET
  name = EXCLUDED.name,
  short_name = EXCLUDED.short_name,
  logo_url = EXCLUDED.logo_url,
  updated_at = now()`

	if _, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.ShortName, item.LogoURL); err != nil {
		return crerr.Wrap(err, "upsert team")
	}
	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.PublicID,
		Name:      row.Name,
		ShortName: row.ShortName,
		LogoURL:   row.LogoURL,
	}
}
