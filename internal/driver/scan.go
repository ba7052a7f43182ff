// Package driver orchestrates scans over multiple classifier output
// files: bounded parallelism, progress events, and result caching.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"taxscore/internal/classifier"
)

// ScanFunc scans a single file. The driver stays agnostic of the layout:
// the CLI binds either the native or the generic scanner here.
type ScanFunc func(path string) (*classifier.ScanResult, error)

// FileResult pairs one input file with its scan outcome. Exactly one of
// Result and Err is set.
type FileResult struct {
	Path   string
	Result *classifier.ScanResult
	Err    error
}

// ScanAll scans every file with up to jobs workers. Each file gets its
// own accumulator inside scan, so workers share nothing. A failing file
// does not abort the others; its error is carried in its FileResult.
// Results are returned in input order.
func ScanAll(ctx context.Context, files []string, jobs int, scan ScanFunc, sink Sink) []FileResult {
	if sink == nil {
		sink = NopSink{}
	}
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	results := make([]FileResult, len(files))
	for _, file := range files {
		sink.Publish(Event{File: file, Stage: StageQueued})
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{Path: file, Err: err}
				sink.Publish(Event{File: file, Stage: StageError, Err: err})
				return nil
			}
			sink.Publish(Event{File: file, Stage: StageScanning})
			res, err := scan(file)
			results[i] = FileResult{Path: file, Result: res, Err: err}
			if err != nil {
				sink.Publish(Event{File: file, Stage: StageError, Err: err})
			} else {
				sink.Publish(Event{File: file, Stage: StageDone})
			}
			return nil
		})
	}
	// Workers never return errors; failures live in the results.
	_ = g.Wait()
	return results
}
