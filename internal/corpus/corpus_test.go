package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/amharic-ner/internal/tagger"
)

func sampleRecords() []Record {
	tg := tagger.NewDefault()
	return []Record{
		{ID: "a", Pairs: tg.Label([]string{"ሜክሲኮ", "ዋጋ", "500", "ብር"})},
		{ID: "b", Pairs: tg.Label([]string{"ለመኪና", "100ብር"})},
	}
}

func TestWriter_Format(t *testing.T) {
	var buf bytes.Buffer
	cw := NewWriter(&buf)
	for _, r := range sampleRecords() {
		require.NoError(t, cw.Write(r.Pairs))
	}
	require.NoError(t, cw.Flush())

	want := "ሜክሲኮ B-LOCATION\n" +
		"ዋጋ B-PRICE\n" +
		"500 I-PRICE\n" +
		"ብር I-PRICE\n" +
		"\n" +
		"ለመኪና B-PRODUCT\n" +
		"100ብር I-PRICE\n" +
		"\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, cw.Count())
}

func TestRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	cw := NewWriter(&buf)
	for _, r := range records {
		require.NoError(t, cw.Write(r.Pairs))
	}
	require.NoError(t, cw.Flush())

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i, r := range records {
		assert.Equal(t, r.Pairs, got[i])
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "labeled.conll")

	require.NoError(t, WriteFile(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "ሜክሲኮ B-LOCATION\n"))
	assert.True(t, strings.HasSuffix(string(data), "100ብር I-PRICE\n\n"))
	assert.Equal(t, 2, strings.Count(string(data), "\n\n"))
}

func TestWriteFile_NoRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.conll")

	require.NoError(t, WriteFile(path, nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteFile_DestinationIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, sampleRecords())
	require.Error(t, err)

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	assert.Equal(t, dir, exportErr.Path)
	assert.Equal(t, "create", exportErr.Op)
	assert.Contains(t, err.Error(), dir)
}

func TestWriteFile_ParentIsFile(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))
	path := filepath.Join(parent, "out.conll")

	err := WriteFile(path, sampleRecords())

	var exportErr *ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, path, exportErr.Path)
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	cw := NewWriter(failingWriter{})
	require.NoError(t, cw.Write(sampleRecords()[0].Pairs)) // buffered

	assert.ErrorIs(t, cw.Flush(), errDiskFull)
}

func TestRead(t *testing.T) {
	in := "\n\nዋጋ B-PRICE\n20 I-PRICE\n\n\n\nሜክሲኮ B-LOCATION"

	got, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]tagger.Pair{
		{{Token: "ዋጋ", Tag: tagger.BPrice}, {Token: "20", Tag: tagger.IPrice}},
		{{Token: "ሜክሲኮ", Tag: tagger.BLocation}},
	}, got)
}

func TestRead_SplitsOnLastSpace(t *testing.T) {
	got, err := Read(strings.NewReader(" 100  I-PRICE\n\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, tagger.Pair{Token: " 100 ", Tag: tagger.IPrice}, got[0][0])
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(strings.NewReader("ዋጋ B-PRICE\nብር\n"))
	assert.EqualError(t, err, `line 2: missing tag: "ብር"`)

	_, err = Read(strings.NewReader("ዋጋ B-COST\n"))
	assert.EqualError(t, err, `line 1: unknown tag: "B-COST"`)
}
