package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrMarkNotFound is returned when no mark has the requested name.
	ErrMarkNotFound = errors.New("mark not set")
	// ErrMarkName is returned for names other than a single letter a-z.
	ErrMarkName = errors.New("mark names are a single letter a-z")
)

// Mark is a named file position.
type Mark struct {
	Name      string
	Path      string
	Line      int // 0-based
	CreatedAt time.Time
}

// String renders the mark as "name  path:line" with a 1-based line.
func (m Mark) String() string {
	return fmt.Sprintf("%s  %s:%d", m.Name, m.Path, m.Line+1)
}

// MarkStore keeps marks persisted in SQLite.
type MarkStore struct {
	db *sql.DB
}

// NewMarkStore creates a mark store using the given database.
func NewMarkStore(db *DB) *MarkStore {
	return &MarkStore{db: db.Conn()}
}

// ValidMarkName reports whether name can be used for a mark.
func ValidMarkName(name string) bool {
	return len(name) == 1 && name[0] >= 'a' && name[0] <= 'z'
}

// Set stores a mark, replacing any mark with the same name.
func (ms *MarkStore) Set(name, path string, line int) error {
	if !ValidMarkName(name) {
		return fmt.Errorf("%w: %q", ErrMarkName, name)
	}
	_, err := ms.db.Exec(
		`INSERT INTO marks (name, path, line) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET path = excluded.path, line = excluded.line,
		 created_at = datetime('now')`,
		name, path, line,
	)
	if err != nil {
		return fmt.Errorf("saving mark %s: %w", name, err)
	}
	return nil
}

// Get returns the mark with the given name.
func (ms *MarkStore) Get(name string) (Mark, error) {
	var m Mark
	var createdAt string
	err := ms.db.QueryRow(
		`SELECT name, path, line, created_at FROM marks WHERE name = ?`, name,
	).Scan(&m.Name, &m.Path, &m.Line, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Mark{}, fmt.Errorf("%w: %s", ErrMarkNotFound, name)
	}
	if err != nil {
		return Mark{}, fmt.Errorf("loading mark %s: %w", name, err)
	}
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// Remove deletes a mark.
func (ms *MarkStore) Remove(name string) error {
	res, err := ms.db.Exec(`DELETE FROM marks WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("removing mark %s: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrMarkNotFound, name)
	}
	return nil
}

// List returns all marks ordered by name.
func (ms *MarkStore) List() ([]Mark, error) {
	rows, err := ms.db.Query(`SELECT name, path, line, created_at FROM marks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing marks: %w", err)
	}
	defer rows.Close()

	var marks []Mark
	for rows.Next() {
		var m Mark
		var createdAt string
		if err := rows.Scan(&m.Name, &m.Path, &m.Line, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning mark: %w", err)
		}
		m.CreatedAt = parseTime(createdAt)
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// RenderMarks formats marks as a plain listing, one per line.
func RenderMarks(marks []Mark) string {
	if len(marks) == 0 {
		return "No marks set. Press m followed by a letter to set one."
	}
	var sb strings.Builder
	for _, m := range marks {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func parseTime(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
