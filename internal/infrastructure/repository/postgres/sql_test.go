package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped ErrNoRows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(errors.New("pq: relation matches does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestNullString(t *testing.T) {
	t.Run("valid for non-empty value", func(t *testing.T) {
		got := nullString("bowled")
		if !got.Valid || got.String != "bowled" {
			t.Fatalf("unexpected null string: %+v", got)
		}
	})

	t.Run("null for empty value", func(t *testing.T) {
		if got := nullString(""); got.Valid {
			t.Fatalf("expected invalid null string, got %+v", got)
		}
	})
}
