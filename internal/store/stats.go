package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath        string         `json:"db_path"`
	DBSizeBytes   int64          `json:"db_size_bytes"`
	TotalMessages int            `json:"total_messages"`
	Raw           int            `json:"raw"`
	Normalized    int            `json:"normalized"`
	Empty         int            `json:"empty"`
	Channels      []ChannelStats `json:"channels"`
}

// ChannelStats holds per-channel counts.
type ChannelStats struct {
	Channel    string `json:"channel"`
	Count      int    `json:"count"`
	Normalized int    `json:"normalized"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(status = 'raw'), 0),
		       COALESCE(SUM(status = 'normalized'), 0),
		       COALESCE(SUM(status = 'empty'), 0)
		FROM messages`).Scan(&st.TotalMessages, &st.Raw, &st.Normalized, &st.Empty)
	if err != nil {
		return st, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT channel, COUNT(*) AS cnt, COALESCE(SUM(status = 'normalized'), 0)
		FROM messages
		GROUP BY channel ORDER BY cnt DESC, channel`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var ch ChannelStats
		if err := rows.Scan(&ch.Channel, &ch.Count, &ch.Normalized); err != nil {
			return st, err
		}
		st.Channels = append(st.Channels, ch)
	}

	return st, rows.Err()
}
