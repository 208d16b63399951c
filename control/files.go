package control

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseFiles parses several control files concurrently, one independent
// Parser per file, using up to runtime.NumCPU() goroutines. Results are
// returned in the same order as the input paths.
//
// Each file gets its own document and cursor, so no mutable state is
// shared between goroutines; the per-document parse itself remains a
// single sequential pass. The handler h is shared across files and must
// be safe for concurrent use if it keeps state (DefaultHandler is).
//
// If any file fails, the first error is returned and the remaining
// results are discarded.
func ParseFiles(ctx context.Context, h Handler, paths ...string) ([]*Document, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Document, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			p := NewParser()
			p.Handler = h
			doc, err := p.ParseFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
