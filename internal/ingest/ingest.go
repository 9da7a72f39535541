// Package ingest reads raw scraped messages from files: a CSV with a text
// column (the scraper's export format) or plain text with one message per line.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultColumn is the CSV header holding message text.
const DefaultColumn = "messages"

const bom = "\ufeff"

// ReadFile reads messages from path. Files ending in .csv are parsed as CSV
// using column; anything else is read line by line.
func ReadFile(path, column string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ReadCSV(f, column)
	}
	return ReadLines(f)
}

// ReadCSV returns the cells of column, one per row, in file order. Empty
// cells are kept so that row positions survive; the normalizer turns them
// into empty records.
func ReadCSV(r io.Reader, column string) ([]string, error) {
	if column == "" {
		column = DefaultColumn
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	idx := -1
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, bom)) == column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("csv column %q not found in header %q", column, header)
	}

	var texts []string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if idx < len(rec) {
			texts = append(texts, rec[idx])
		} else {
			texts = append(texts, "")
		}
	}
	return texts, nil
}

// ReadLines returns every non-blank line of r.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var texts []string
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		texts = append(texts, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return texts, nil
}
