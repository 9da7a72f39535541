// Package pipeline wires the normalizer, tagger and corpus writer together,
// reading messages from a store or directly from text.
package pipeline

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rcliao/amharic-ner/internal/corpus"
	"github.com/rcliao/amharic-ner/internal/logger"
	"github.com/rcliao/amharic-ner/internal/model"
	"github.com/rcliao/amharic-ner/internal/normalize"
	"github.com/rcliao/amharic-ner/internal/store"
	"github.com/rcliao/amharic-ner/internal/tagger"
)

// MessageStore is the subset of store.Store the pipeline needs.
type MessageStore interface {
	List(ctx context.Context, p store.ListParams) ([]model.Message, error)
	SetNormalized(ctx context.Context, p store.NormalizedParams) error
	TokenSequences(ctx context.Context, p store.ListParams) ([]store.TokenSequence, error)
}

// Pipeline labels messages with a fixed Tagger.
type Pipeline struct {
	tagger  *tagger.Tagger
	log     logger.Logger
	workers int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards output.
func WithLogger(log logger.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithWorkers bounds labeling concurrency; <= 0 uses every CPU.
func WithWorkers(n int) Option {
	return func(p *Pipeline) { p.workers = n }
}

// New returns a Pipeline around tg.
func New(tg *tagger.Tagger, opts ...Option) *Pipeline {
	p := &Pipeline{tagger: tg, log: logger.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Summary counts what a run produced.
type Summary struct {
	Records  int            `json:"records"`
	Skipped  int            `json:"skipped"`
	Tokens   int            `json:"tokens"`
	Entities map[string]int `json:"entities"`
}

func (s *Summary) add(pairs []tagger.Pair) {
	s.Records++
	s.Tokens += len(pairs)
	for _, p := range pairs {
		if p.Tag.IsEntity() {
			if s.Entities == nil {
				s.Entities = map[string]int{}
			}
			s.Entities[p.Tag.String()]++
		}
	}
}

// LabelText normalizes, tokenizes and labels one message. ok is false when
// normalization leaves nothing to label.
func (p *Pipeline) LabelText(text string) (pairs []tagger.Pair, ok bool) {
	clean, ok := normalize.Normalize(text)
	if !ok {
		return nil, false
	}
	return p.tagger.Label(normalize.Tokens(clean)), true
}

// LabelTexts labels in-memory messages. Records are numbered by their
// position in texts; messages with no usable text are skipped.
func (p *Pipeline) LabelTexts(ctx context.Context, texts []string) ([]corpus.Record, Summary, error) {
	var ids []string
	var seqs [][]string
	skipped := 0
	for i, text := range texts {
		clean, ok := normalize.Normalize(text)
		if !ok {
			skipped++
			continue
		}
		ids = append(ids, strconv.Itoa(i+1))
		seqs = append(seqs, normalize.Tokens(clean))
	}

	records, sum, err := p.label(ctx, ids, seqs)
	sum.Skipped = skipped
	return records, sum, err
}

// NormalizeResult counts the outcome of NormalizeStored.
type NormalizeResult struct {
	Processed  int `json:"processed"`
	Normalized int `json:"normalized"`
	Empty      int `json:"empty"`
}

// NormalizeStored normalizes every raw message in channel (all channels
// when empty) and saves the result back to the store.
func (p *Pipeline) NormalizeStored(ctx context.Context, st MessageStore, channel string) (NormalizeResult, error) {
	var res NormalizeResult

	msgs, err := st.List(ctx, store.ListParams{Channel: channel, Status: model.StatusRaw})
	if err != nil {
		return res, fmt.Errorf("list raw messages: %w", err)
	}

	for _, m := range msgs {
		clean, ok := normalize.Normalize(m.Text)
		if err := st.SetNormalized(ctx, store.NormalizedParams{ID: m.ID, Normalized: clean, OK: ok}); err != nil {
			return res, err
		}
		res.Processed++
		if ok {
			res.Normalized++
		} else {
			res.Empty++
			p.log.Debug("message has no usable text", "id", m.ID, "channel", m.Channel)
		}
	}

	p.log.Info("normalized messages", "channel", channel,
		"processed", res.Processed, "normalized", res.Normalized, "empty", res.Empty)
	return res, nil
}

// ExportParams selects stored messages to export.
type ExportParams struct {
	Path    string
	Channel string
	Limit   int
}

// Export labels the normalized messages selected by ep and writes them to
// ep.Path. Raw messages are normalized first so a fresh ingest exports in
// one step. Write failures are returned as *corpus.ExportError.
func (p *Pipeline) Export(ctx context.Context, st MessageStore, ep ExportParams) (Summary, error) {
	if _, err := p.NormalizeStored(ctx, st, ep.Channel); err != nil {
		return Summary{}, err
	}

	seqs, err := st.TokenSequences(ctx, store.ListParams{Channel: ep.Channel, Limit: ep.Limit})
	if err != nil {
		return Summary{}, fmt.Errorf("load token sequences: %w", err)
	}

	ids := make([]string, len(seqs))
	tokens := make([][]string, len(seqs))
	for i, s := range seqs {
		ids[i] = s.ID
		tokens[i] = s.Tokens
	}

	records, sum, err := p.label(ctx, ids, tokens)
	if err != nil {
		return sum, err
	}

	if err := corpus.WriteFile(ep.Path, records); err != nil {
		p.log.Error("export failed", "path", ep.Path, "error", err)
		return sum, err
	}

	p.log.Info("exported corpus", "path", ep.Path, "records", sum.Records, "tokens", sum.Tokens)
	return sum, nil
}

func (p *Pipeline) label(ctx context.Context, ids []string, seqs [][]string) ([]corpus.Record, Summary, error) {
	var sum Summary

	labeled, err := p.tagger.LabelBatch(ctx, seqs, p.workers)
	if err != nil {
		return nil, sum, fmt.Errorf("label: %w", err)
	}

	records := make([]corpus.Record, len(labeled))
	for i, pairs := range labeled {
		records[i] = corpus.Record{ID: ids[i], Pairs: pairs}
		sum.add(pairs)
	}
	p.log.Debug("labeled records", "records", sum.Records, "tokens", sum.Tokens)
	return records, sum, nil
}
