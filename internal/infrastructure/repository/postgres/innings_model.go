package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cricket-live/internal/domain/innings"
)

type ballTableModel struct {
	ID              int64          `db:"id"`
	PublicID        string         `db:"public_id"`
	InningsPublicID string         `db:"innings_public_id"`
	Seq             int            `db:"seq"`
	OverNumber      int            `db:"over_number"`
	BallInOver      int            `db:"ball_in_over"`
	BatsmanID       string         `db:"batsman_public_id"`
	BowlerID        string         `db:"bowler_public_id"`
	RunsOffBat      int            `db:"runs_off_bat"`
	ExtraType       string         `db:"extra_type"`
	ExtraRuns       int            `db:"extra_runs"`
	WicketFell      bool           `db:"wicket_fell"`
	WicketKind      sql.NullString `db:"wicket_kind"`
	DismissedID     sql.NullString `db:"dismissed_public_id"`
	ReplacementID   sql.NullString `db:"replacement_public_id"`
	Commentary      string         `db:"commentary"`
	CreatedAt       time.Time      `db:"created_at"`
}

func ballFromRow(row ballTableModel) innings.Ball {
	return innings.Ball{
		ID:            row.PublicID,
		InningsID:     row.InningsPublicID,
		Seq:           row.Seq,
		Over:          row.OverNumber,
		BallInOver:    row.BallInOver,
		BatsmanID:     row.BatsmanID,
		BowlerID:      row.BowlerID,
		RunsOffBat:    row.RunsOffBat,
		ExtraType:     innings.ExtraType(row.ExtraType),
		ExtraRuns:     row.ExtraRuns,
		WicketFell:    row.WicketFell,
		WicketKind:    innings.WicketKind(row.WicketKind.String),
		DismissedID:   row.DismissedID.String,
		ReplacementID: row.ReplacementID.String,
		Commentary:    row.Commentary,
	}
}
