package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSearch_Basic(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	s.Add(ctx, AddParams{Channel: "@shop", Texts: []string{"ዋጋ 100 ብር", "ለመኪና ዋጋ 300"}})
	s.Add(ctx, AddParams{Channel: "@other", Texts: []string{"ሜክሲኮ ዋጋ"}})

	results, err := s.Search(ctx, SearchParams{Query: "ዋጋ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Search with channel filter
	results, err = s.Search(ctx, SearchParams{Channel: "@shop", Query: "ዋጋ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// No results
	results, err = s.Search(ctx, SearchParams{Query: "ኮሜርስ"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearch_MatchesNormalizedText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, AddParams{Texts: []string{"ዋጋ:100"}})
	msgs, _ := s.List(ctx, ListParams{})
	s.SetNormalized(ctx, NormalizedParams{ID: msgs[0].ID, Normalized: "ዋጋ100", OK: true})

	results, err := s.Search(ctx, SearchParams{Query: "ዋጋ100"})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1, got %d", len(results))
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()

	s.Add(ctx, AddParams{Channel: "a", Texts: []string{"1", "2"}})
	s.Add(ctx, AddParams{Channel: "b", Texts: []string{"3"}})
	msgs, _ := s.List(ctx, ListParams{})
	s.SetNormalized(ctx, NormalizedParams{ID: msgs[0].ID, Normalized: "1", OK: true})
	s.SetNormalized(ctx, NormalizedParams{ID: msgs[2].ID})

	stats, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMessages != 3 {
		t.Fatalf("expected 3 messages, got %d", stats.TotalMessages)
	}
	if stats.Raw != 1 || stats.Normalized != 1 || stats.Empty != 1 {
		t.Fatalf("expected 1/1/1 raw/normalized/empty, got %d/%d/%d", stats.Raw, stats.Normalized, stats.Empty)
	}
	if len(stats.Channels) != 2 {
		t.Fatalf("expected 2 channels, got %d", len(stats.Channels))
	}
	if stats.Channels[0].Channel != "a" || stats.Channels[0].Normalized != 1 {
		t.Fatalf("expected channel a first with 1 normalized, got %+v", stats.Channels[0])
	}
	if stats.DBSizeBytes == 0 {
		t.Fatal("expected non-zero db size")
	}
}

func TestStats_EmptyDB(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Stats(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalMessages != 0 || len(stats.Channels) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}

func TestExportImport(t *testing.T) {
	dir := t.TempDir()
	s1, _ := NewSQLiteStore(filepath.Join(dir, "src.db"))
	defer s1.Close()
	ctx := context.Background()

	s1.Add(ctx, AddParams{Channel: "a", Texts: []string{"alpha", "beta"}})
	s1.Add(ctx, AddParams{Channel: "b", Texts: []string{"gamma"}})

	exported, err := s1.ExportAll(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(exported) != 3 {
		t.Fatalf("expected 3 exported, got %d", len(exported))
	}

	s2, _ := NewSQLiteStore(filepath.Join(dir, "dst.db"))
	defer s2.Close()

	n, err := s2.Import(ctx, exported)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("expected 3 imported, got %d", n)
	}

	// Importing again skips everything.
	n, _ = s2.Import(ctx, exported)
	if n != 0 {
		t.Fatalf("expected 0 on re-import, got %d", n)
	}

	msgs, _ := s2.List(ctx, ListParams{Channel: "a"})
	if len(msgs) != 2 {
		t.Fatalf("expected 2 msgs after import, got %d", len(msgs))
	}
}
