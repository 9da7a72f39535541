package tagger

import (
	"context"
	"runtime"
	"sync"
)

// LabelBatch labels many token sequences using up to workers goroutines
// (runtime.NumCPU() when workers <= 0). Results keep the input order.
// If ctx is cancelled, unlabeled records are left nil and ctx.Err() is returned.
func (t *Tagger) LabelBatch(ctx context.Context, records [][]string, workers int) ([][]Pair, error) {
	out := make([][]Pair, len(records))
	if len(records) == 0 {
		return out, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = t.Label(records[i])
			}
		}()
	}

	var err error
feed:
	for i := range records {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return out, err
}
