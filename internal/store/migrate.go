package store

import (
	"context"
	"fmt"
)

func (s *SQL) schema() []string {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.driver == DriverPostgres {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS notes (
			id         ` + pk + `,
			title      TEXT NOT NULL,
			content    TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_notes_title ON notes (title)`,
		`CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes (updated_at)`,
		`CREATE TABLE IF NOT EXISTS links (
			id           ` + pk + `,
			from_note_id BIGINT NOT NULL REFERENCES notes (id),
			to_note_id   BIGINT NOT NULL REFERENCES notes (id),
			strength     INTEGER NOT NULL DEFAULT 1,
			created_at   TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_links_from ON links (from_note_id)`,
		`CREATE INDEX IF NOT EXISTS idx_links_to ON links (to_note_id)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id       ` + pk + `,
			note_id  BIGINT NOT NULL REFERENCES notes (id),
			tag_name TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tags_note ON tags (note_id)`,
	}
}

func (s *SQL) migrate(ctx context.Context) error {
	for _, stmt := range s.schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
