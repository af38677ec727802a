// Package store persists notes, links and tags in a SQL database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/Paintersrp/focusnest/internal/note"
	"github.com/Paintersrp/focusnest/internal/pathutil"
)

var (
	// ErrNotFound is returned when a requested note does not exist.
	ErrNotFound = errors.New("store: note not found")
	// ErrTitleExists is returned when another note already uses a title.
	ErrTitleExists = errors.New("store: note with this title already exists")
	// ErrEmptyTag is returned when a tag name is blank.
	ErrEmptyTag = errors.New("store: tag name is required")
	// ErrUnsupportedDriver is returned by Open for unknown drivers.
	ErrUnsupportedDriver = errors.New("store: unsupported driver")
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// timeLayout keeps stored timestamps lexically sortable.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store is the persistence contract consumed by the services.
type Store interface {
	ListNotes(ctx context.Context) ([]note.Note, error)
	ListLinks(ctx context.Context) ([]note.Link, error)
	FindNoteByID(ctx context.Context, id int64) (note.Note, error)
	FindNoteByTitle(ctx context.Context, title string) (note.Note, error)
	CreateNote(ctx context.Context, title, content string) (note.Note, error)
	CreateNoteWithLinks(ctx context.Context, title, content string, toIDs []int64, strength int) (note.Note, error)
	UpdateNote(ctx context.Context, id int64, title, content string) (note.Note, error)
	DeleteNote(ctx context.Context, id int64) error
	ReplaceOutgoingLinks(ctx context.Context, fromID int64, toIDs []int64, strength int) error
	AddTag(ctx context.Context, noteID int64, name string) (note.Tag, error)
	ListTags(ctx context.Context, noteID int64) ([]note.Tag, error)
	Close() error
}

// Config selects the database backend.
type Config struct {
	// Driver is "sqlite" (default) or "pgx".
	Driver string
	// DSN is a file path for sqlite or a connection string for Postgres.
	DSN string
}

// SQL implements Store on top of database/sql.
type SQL struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Open connects to the configured database and applies migrations.
func Open(ctx context.Context, cfg Config) (*SQL, error) {
	driver := strings.TrimSpace(cfg.Driver)
	if driver == "" {
		driver = DriverSQLite
	}

	dsn := cfg.DSN
	switch driver {
	case DriverSQLite:
		if dsn == "" {
			return nil, fmt.Errorf("store: sqlite requires a database path")
		}
		if pathutil.IsFileDSN(dsn) {
			dsn = pathutil.NormalizePath(dsn)
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres, "postgres":
		driver = DriverPostgres
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite allows a single writer.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect db: %w", err)
	}

	s := &SQL{db: db, driver: driver, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Driver reports the active database driver.
func (s *SQL) Driver() string {
	return s.driver
}

// Close closes the database.
func (s *SQL) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *SQL) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQL) timestamp() string {
	return s.now().UTC().Format(timeLayout)
}

func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, v)
	}
	return t
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (note.Note, error) {
	var (
		n                note.Note
		created, updated string
	)
	if err := row.Scan(&n.ID, &n.Title, &n.Content, &created, &updated); err != nil {
		return note.Note{}, err
	}
	n.CreatedAt = parseTime(created)
	n.UpdatedAt = parseTime(updated)
	return n, nil
}

const noteColumns = `id, title, content, created_at, updated_at`

// ListNotes returns every note, most recently updated first.
func (s *SQL) ListNotes(ctx context.Context) ([]note.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]note.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// ListLinks returns every stored link in insertion order.
func (s *SQL) ListLinks(ctx context.Context) ([]note.Link, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_note_id, to_note_id, strength, created_at FROM links ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	links := make([]note.Link, 0)
	for rows.Next() {
		var (
			l       note.Link
			created string
		)
		if err := rows.Scan(&l.ID, &l.FromNoteID, &l.ToNoteID, &l.Strength, &created); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		l.CreatedAt = parseTime(created)
		links = append(links, l)
	}
	return links, rows.Err()
}

// FindNoteByID returns ErrNotFound when no note has the id.
func (s *SQL) FindNoteByID(ctx context.Context, id int64) (note.Note, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+noteColumns+` FROM notes WHERE id = ?`), id)
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, ErrNotFound
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("find note %d: %w", id, err)
	}
	return n, nil
}

// FindNoteByTitle matches the trimmed title exactly.
func (s *SQL) FindNoteByTitle(ctx context.Context, title string) (note.Note, error) {
	row := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT `+noteColumns+` FROM notes WHERE title = ? ORDER BY id ASC LIMIT 1`),
		strings.TrimSpace(title))
	n, err := scanNote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, ErrNotFound
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("find note %q: %w", title, err)
	}
	return n, nil
}

// CreateNote inserts a note with a unique title.
func (s *SQL) CreateNote(ctx context.Context, title, content string) (note.Note, error) {
	return s.CreateNoteWithLinks(ctx, title, content, nil, note.DefaultStrength)
}

// CreateNoteWithLinks inserts a note and its outgoing links in a single
// transaction. Either both are stored or neither is.
func (s *SQL) CreateNoteWithLinks(ctx context.Context, title, content string, toIDs []int64, strength int) (note.Note, error) {
	title = strings.TrimSpace(title)
	if err := s.ensureTitleFree(ctx, title, 0); err != nil {
		return note.Note{}, err
	}

	ts := s.timestamp()
	var id int64
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			s.rebind(`INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`),
			title, content, ts, ts).Scan(&id)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrTitleExists
			}
			return fmt.Errorf("insert note: %w", err)
		}
		return s.insertLinks(ctx, tx, id, toIDs, strength, ts)
	})
	if err != nil {
		return note.Note{}, err
	}

	created := parseTime(ts)
	return note.Note{ID: id, Title: title, Content: content, CreatedAt: created, UpdatedAt: created}, nil
}

// UpdateNote replaces the title and content of an existing note.
func (s *SQL) UpdateNote(ctx context.Context, id int64, title, content string) (note.Note, error) {
	current, err := s.FindNoteByID(ctx, id)
	if err != nil {
		return note.Note{}, err
	}

	title = strings.TrimSpace(title)
	if title != current.Title {
		if err := s.ensureTitleFree(ctx, title, id); err != nil {
			return note.Note{}, err
		}
	}

	ts := s.timestamp()
	_, err = s.db.ExecContext(ctx,
		s.rebind(`UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?`),
		title, content, ts, id)
	if err != nil {
		if isUniqueViolation(err) {
			return note.Note{}, ErrTitleExists
		}
		return note.Note{}, fmt.Errorf("update note %d: %w", id, err)
	}

	current.Title = title
	current.Content = content
	current.UpdatedAt = parseTime(ts)
	return current, nil
}

// DeleteNote removes the note together with its links and tags.
func (s *SQL) DeleteNote(ctx context.Context, id int64) error {
	if _, err := s.FindNoteByID(ctx, id); err != nil {
		return err
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmts := []struct {
			query string
			args  []any
		}{
			{`DELETE FROM links WHERE from_note_id = ? OR to_note_id = ?`, []any{id, id}},
			{`DELETE FROM tags WHERE note_id = ?`, []any{id}},
			{`DELETE FROM notes WHERE id = ?`, []any{id}},
		}
		for _, st := range stmts {
			if _, err := tx.ExecContext(ctx, s.rebind(st.query), st.args...); err != nil {
				return fmt.Errorf("delete note %d: %w", id, err)
			}
		}
		return nil
	})
}

// ReplaceOutgoingLinks swaps every link leaving fromID for links to toIDs.
// Self-links and duplicate targets are dropped.
func (s *SQL) ReplaceOutgoingLinks(ctx context.Context, fromID int64, toIDs []int64, strength int) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.rebind(`DELETE FROM links WHERE from_note_id = ?`), fromID); err != nil {
			return fmt.Errorf("clear links: %w", err)
		}
		return s.insertLinks(ctx, tx, fromID, toIDs, strength, s.timestamp())
	})
}

// insertLinks writes one link per distinct target, skipping self-links.
func (s *SQL) insertLinks(ctx context.Context, tx *sql.Tx, fromID int64, toIDs []int64, strength int, ts string) error {
	if strength <= 0 {
		strength = note.DefaultStrength
	}

	seen := make(map[int64]struct{}, len(toIDs))
	for _, to := range toIDs {
		if to == fromID {
			continue
		}
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}

		if _, err := tx.ExecContext(ctx,
			s.rebind(`INSERT INTO links (from_note_id, to_note_id, strength, created_at) VALUES (?, ?, ?, ?)`),
			fromID, to, strength, ts); err != nil {
			return fmt.Errorf("insert link %d->%d: %w", fromID, to, err)
		}
	}
	return nil
}

// AddTag attaches a tag to an existing note.
func (s *SQL) AddTag(ctx context.Context, noteID int64, name string) (note.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return note.Tag{}, ErrEmptyTag
	}
	if _, err := s.FindNoteByID(ctx, noteID); err != nil {
		return note.Tag{}, err
	}

	var id int64
	err := s.db.QueryRowContext(ctx,
		s.rebind(`INSERT INTO tags (note_id, tag_name) VALUES (?, ?) RETURNING id`),
		noteID, name).Scan(&id)
	if err != nil {
		return note.Tag{}, fmt.Errorf("insert tag: %w", err)
	}
	return note.Tag{ID: id, NoteID: noteID, Name: name}, nil
}

// ListTags returns the tags of a note ordered by name.
func (s *SQL) ListTags(ctx context.Context, noteID int64) ([]note.Tag, error) {
	if _, err := s.FindNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		s.rebind(`SELECT id, note_id, tag_name FROM tags WHERE note_id = ? ORDER BY tag_name ASC, id ASC`),
		noteID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]note.Tag, 0)
	for rows.Next() {
		var t note.Tag
		if err := rows.Scan(&t.ID, &t.NoteID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (s *SQL) ensureTitleFree(ctx context.Context, title string, self int64) error {
	existing, err := s.FindNoteByTitle(ctx, title)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return ErrTitleExists
	}
	return nil
}

func (s *SQL) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
