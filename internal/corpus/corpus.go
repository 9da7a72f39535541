// Package corpus reads and writes labeled records in CoNLL style: one
// "token tag" line per token and a blank line after every record.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rcliao/amharic-ner/internal/tagger"
)

// Record is one labeled message ready for export.
type Record struct {
	ID    string        `json:"id"`
	Pairs []tagger.Pair `json:"pairs"`
}

// ExportError reports a failure to create or write a corpus file.
type ExportError struct {
	Path string
	Op   string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

// Writer emits records to an underlying writer.
type Writer struct {
	w     *bufio.Writer
	count int
}

// NewWriter returns a Writer buffering output to w. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write emits one record followed by its blank separator line.
func (cw *Writer) Write(pairs []tagger.Pair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(cw.w, "%s %s\n", p.Token, p.Tag); err != nil {
			return err
		}
	}
	if err := cw.w.WriteByte('\n'); err != nil {
		return err
	}
	cw.count++
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (cw *Writer) Flush() error {
	return cw.w.Flush()
}

// Count returns the number of records written so far.
func (cw *Writer) Count() int {
	return cw.count
}

// WriteFile creates (or truncates) path and writes every record to it.
// Missing parent directories are created. Any failure is an *ExportError
// naming path; the file handle is closed on every return path.
func WriteFile(path string, records []Record) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &ExportError{Path: path, Op: "create dir", Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &ExportError{Path: path, Op: "create", Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ExportError{Path: path, Op: "close", Err: cerr}
		}
	}()

	cw := NewWriter(f)
	for _, r := range records {
		if err := cw.Write(r.Pairs); err != nil {
			return &ExportError{Path: path, Op: "write", Err: err}
		}
	}
	if err := cw.Flush(); err != nil {
		return &ExportError{Path: path, Op: "write", Err: err}
	}
	return nil
}
