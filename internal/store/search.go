package store

import (
	"context"
	"strings"

	"github.com/rcliao/amharic-ner/internal/model"
)

// SearchParams holds parameters for searching messages.
type SearchParams struct {
	Channel string
	Query   string
	Limit   int
}

// Search finds messages whose raw or normalized text contains the query substring.
func (s *SQLiteStore) Search(ctx context.Context, p SearchParams) ([]model.Message, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	query := "%" + p.Query + "%"

	where := []string{"(text LIKE ? OR normalized LIKE ?)"}
	args := []interface{}{query, query}

	if p.Channel != "" {
		where = append(where, "channel = ?")
		args = append(args, p.Channel)
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, channel, text, normalized, status, created_at, normalized_at
		 FROM messages WHERE `+strings.Join(where, " AND ")+`
		 ORDER BY rowid LIMIT ?`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
