// Package driver is the CLI's collaborator: it turns a list of file
// paths (or stdin, or the clipboard) and a set of command-line choices
// into formatted output, file writes, and exit-relevant status, keeping
// every bit of IO out of the pure pqmfmt package. Control flow is stat,
// read, run the pipeline, compare, conditionally write, extended with a
// result cache and concurrency.
package driver

import (
	"context"
	"errors"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"pqmfmt"
	"pqmfmt/internal/cache"
)

// FormatOptions configures a FormatPaths run.
type FormatOptions struct {
	Config pqmfmt.Config
	Check  bool // report whether each file is already formatted, write nothing
	Write  bool // overwrite each input file in place when it changes
	Cache  *cache.Cache
	Events chan<- Event // optional; receives per-file progress, never closed by FormatPaths
}

// FormatResult captures the outcome of formatting one path.
type FormatResult struct {
	Path      string
	Formatted []byte
	Changed   bool
	Err       error
}

// FormatPaths formats every path independently and concurrently, bounded
// by GOMAXPROCS
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("driver: no paths given")
	}

	for _, path := range paths {
		emit(opts.Events, path, StatusQueued)
	}

	results := make([]FormatResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = formatOnePath(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOnePath(path string, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	emit(opts.Events, path, StatusWorking)
	defer func() {
		if res.Err != nil {
			emit(opts.Events, path, StatusError)
		} else {
			emit(opts.Events, path, StatusDone)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	key := cache.Key(data, int(opts.Config.Mode), opts.Config.IndentUnit, opts.Config.IndentChar == pqmfmt.IndentTab, opts.Config.LineLength)
	if payload, ok := opts.Cache.Get(key); ok {
		res.Formatted = payload.Formatted
		res.Changed = payload.Changed
		if opts.Write && !opts.Check && res.Changed {
			res.Err = writeBack(path, res.Formatted)
		}
		return res
	}

	formatted, err := pqmfmt.Format(string(data), opts.Config)
	if err != nil {
		res.Err = err
		return res
	}

	res.Formatted = []byte(formatted)
	res.Changed = string(data) != formatted
	_ = opts.Cache.Put(key, cache.Payload{Formatted: res.Formatted, Changed: res.Changed})

	if opts.Write && !opts.Check && res.Changed {
		res.Err = writeBack(path, res.Formatted)
	}
	return res
}

func writeBack(path string, formatted []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, formatted, mode.Perm())
}
