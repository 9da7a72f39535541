package store

import (
	"context"

	"github.com/rcliao/amharic-ner/internal/model"
)

// ExportAll returns every message, optionally filtered by channel.
func (s *SQLiteStore) ExportAll(ctx context.Context, channel string) ([]model.Message, error) {
	return s.List(ctx, ListParams{Channel: channel})
}

// Import stores the raw text of exported messages under their original
// channels. Normalization state is not carried over; duplicates are skipped.
func (s *SQLiteStore) Import(ctx context.Context, messages []model.Message) (int, error) {
	byChannel := map[string][]string{}
	var order []string
	for _, m := range messages {
		if _, ok := byChannel[m.Channel]; !ok {
			order = append(order, m.Channel)
		}
		byChannel[m.Channel] = append(byChannel[m.Channel], m.Text)
	}

	imported := 0
	for _, ch := range order {
		n, err := s.Add(ctx, AddParams{Channel: ch, Texts: byChannel[ch]})
		if err != nil {
			return imported, err
		}
		imported += n
	}
	return imported, nil
}
