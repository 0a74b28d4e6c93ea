package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"pqmfmt/internal/driver"
	"pqmfmt/internal/ui"
)

// runWithProgress runs FormatPaths while driving a bubbletea progress bar
// off the same Event channel.
func runWithProgress(ctx context.Context, paths []string, opts driver.FormatOptions, events chan driver.Event) ([]driver.FormatResult, error) {
	program := tea.NewProgram(ui.NewProgressModel("formatting", paths, events))

	type outcome struct {
		results []driver.FormatResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := driver.FormatPaths(ctx, paths, opts)
		close(events)
		done <- outcome{results: results, err: err}
	}()

	if _, err := program.Run(); err != nil {
		out := <-done
		return out.results, out.err
	}
	out := <-done
	return out.results, out.err
}
