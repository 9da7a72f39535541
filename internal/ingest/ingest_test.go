package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "\ufeffmessages,views\n" +
		"\"ዋጋ 100 ብር\nሜክሲኮ\",12\n" +
		",3\n" +
		"ለመኪና\n"

	got, err := ReadCSV(strings.NewReader(in), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ዋጋ 100 ብር\nሜክሲኮ", "", "ለመኪና"}, got)
}

func TestReadCSV_OtherColumn(t *testing.T) {
	in := "id,text\n1,ዋጋ\n2,ብር\n"

	got, err := ReadCSV(strings.NewReader(in), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"ዋጋ", "ብር"}, got)
}

func TestReadCSV_MissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("id,text\n1,x\n"), "messages")
	assert.ErrorContains(t, err, `csv column "messages" not found`)
}

func TestReadCSV_Empty(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(""), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("\ufeffዋጋ 100\n\n   \nሜክሲኮ\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ዋጋ 100", "ሜክሲኮ"}, got)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "scraped.CSV")
	require.NoError(t, os.WriteFile(csvPath, []byte("messages\nዋጋ\n"), 0o644))
	got, err := ReadFile(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ዋጋ"}, got)

	txtPath := filepath.Join(dir, "messages.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte("messages\nዋጋ\n"), 0o644))
	got, err = ReadFile(txtPath, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"messages", "ዋጋ"}, got)

	_, err = ReadFile(filepath.Join(dir, "missing.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
