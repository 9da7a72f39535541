package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/amharic-ner/internal/model"
	"github.com/rcliao/amharic-ner/internal/normalize"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS messages (
		id            TEXT PRIMARY KEY,
		channel       TEXT NOT NULL DEFAULT '',
		text          TEXT NOT NULL,
		normalized    TEXT,
		status        TEXT NOT NULL DEFAULT 'raw',
		created_at    TEXT NOT NULL,
		normalized_at TEXT
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_messages_channel_text ON messages(channel, text);
	CREATE INDEX IF NOT EXISTS idx_messages_status ON messages(status);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Add(ctx context.Context, p AddParams) (int, error) {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO messages (id, channel, text, status, created_at)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, text := range p.Texts {
		res, err := stmt.ExecContext(ctx, s.newID(), p.Channel, text, model.StatusRaw, now)
		if err != nil {
			return 0, fmt.Errorf("insert message: %w", err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Message, error) {
	if p.Status != "" && !model.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid status %q", p.Status)
	}

	where := []string{"1 = 1"}
	args := []interface{}{}

	if p.Channel != "" {
		where = append(where, "channel = ?")
		args = append(args, p.Channel)
	}
	if p.Status != "" {
		where = append(where, "status = ?")
		args = append(args, p.Status)
	}

	query := `SELECT id, channel, text, normalized, status, created_at, normalized_at
	          FROM messages WHERE ` + strings.Join(where, " AND ") + ` ORDER BY rowid`
	if p.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, p.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *SQLiteStore) SetNormalized(ctx context.Context, p NormalizedParams) error {
	now := time.Now().UTC().Format(time.RFC3339)

	status := model.StatusEmpty
	var normalized *string
	if p.OK {
		status = model.StatusNormalized
		normalized = &p.Normalized
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE messages SET normalized = ?, status = ?, normalized_at = ? WHERE id = ?`,
		normalized, status, now, p.ID)
	if err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("message not found: %s", p.ID)
	}
	return nil
}

func (s *SQLiteStore) TokenSequences(ctx context.Context, p ListParams) ([]TokenSequence, error) {
	p.Status = model.StatusNormalized
	messages, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}

	seqs := make([]TokenSequence, 0, len(messages))
	for _, m := range messages {
		seqs = append(seqs, TokenSequence{ID: m.ID, Tokens: normalize.Tokens(m.Normalized)})
	}
	return seqs, nil
}

func (s *SQLiteStore) Rm(ctx context.Context, p RmParams) (int, error) {
	var res sql.Result
	var err error
	switch {
	case p.Channel != "":
		res, err = s.db.ExecContext(ctx, `DELETE FROM messages WHERE channel = ?`, p.Channel)
	case p.All:
		res, err = s.db.ExecContext(ctx, `DELETE FROM messages`)
	default:
		return 0, fmt.Errorf("channel is required (or delete all)")
	}
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMessage(row scanner) (model.Message, error) {
	var m model.Message
	var normalized, normalizedAt sql.NullString
	var createdAt string

	err := row.Scan(&m.ID, &m.Channel, &m.Text, &normalized, &m.Status, &createdAt, &normalizedAt)
	if err != nil {
		return m, err
	}

	m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if normalized.Valid {
		m.Normalized = normalized.String
	}
	if normalizedAt.Valid {
		t, _ := time.Parse(time.RFC3339, normalizedAt.String)
		m.NormalizedAt = &t
	}

	return m, nil
}
