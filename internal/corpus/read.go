package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/amharic-ner/internal/tagger"
)

const maxLineBytes = 1 << 20

// Read parses a corpus back into records. Each line splits on its last
// space into token and tag. Runs of blank lines separate records, so a
// record with no tokens cannot be recovered.
func Read(r io.Reader) ([][]tagger.Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records [][]tagger.Pair
	var current []tagger.Pair
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if line == "" {
			if len(current) > 0 {
				records = append(records, current)
				current = nil
			}
			continue
		}

		idx := strings.LastIndexByte(line, ' ')
		if idx < 0 {
			return nil, fmt.Errorf("line %d: missing tag: %q", lineNum, line)
		}
		tag, err := tagger.ParseTag(line[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		current = append(current, tagger.Pair{Token: line[:idx], Tag: tag})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	if len(current) > 0 {
		records = append(records, current)
	}
	return records, nil
}
