package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pqmfmt"
	"pqmfmt/internal/driver"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestFormatPaths_ReturnsFormattedOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.pq", "let x = 1 in x")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected per-file error: %v", results[0].Err)
	}
	if !results[0].Changed {
		t.Error("expected the unformatted source to be reported as changed")
	}
}

func TestFormatPaths_WriteModePersistsChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.pq", "let x = 1 in x")

	_, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
		Write:  true,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading back %s: %v", path, err)
	}
	again, err := pqmfmt.Format(string(after), pqmfmt.DefaultConfig())
	if err != nil {
		t.Fatalf("formatting written output: %v", err)
	}
	if string(after) != again {
		t.Errorf("the file on disk was not left in formatted shape: %q", after)
	}
}

func TestFormatPaths_AlreadyFormattedFileIsUnchanged(t *testing.T) {
	dir := t.TempDir()
	formatted, err := pqmfmt.Format("let x = 1 in x", pqmfmt.DefaultConfig())
	if err != nil {
		t.Fatalf("formatting fixture: %v", err)
	}
	path := writeTemp(t, dir, "a.pq", formatted)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Changed {
		t.Error("expected an already-formatted file to be reported as unchanged")
	}
}

func TestFormatPaths_PerFileErrorDoesNotAbortOthers(t *testing.T) {
	dir := t.TempDir()
	bad := writeTemp(t, dir, "bad.pq", `"unterminated`)
	good := writeTemp(t, dir, "good.pq", "let x = 1 in x")

	results, err := driver.FormatPaths(context.Background(), []string{bad, good}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	var sawError, sawSuccess bool
	for _, res := range results {
		switch res.Path {
		case bad:
			if res.Err == nil {
				t.Error("expected the unterminated-string file to report an error")
			}
			sawError = true
		case good:
			if res.Err != nil {
				t.Errorf("unexpected error for a well-formed file: %v", res.Err)
			}
			sawSuccess = true
		}
	}
	if !sawError || !sawSuccess {
		t.Fatalf("did not see both outcomes: results=%+v", results)
	}
}

func TestFormatPaths_MissingFileReportsError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does-not-exist.pq")

	results, err := driver.FormatPaths(context.Background(), []string{missing}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	if results[0].Err == nil {
		t.Error("expected an error reading a missing file")
	}
}

func TestFormatPaths_EmptyPathsIsAnError(t *testing.T) {
	_, err := driver.FormatPaths(context.Background(), nil, driver.FormatOptions{Config: pqmfmt.DefaultConfig()})
	if err == nil {
		t.Error("expected an error for an empty path list")
	}
}

func TestFormatPaths_EmitsQueueWorkingDoneEvents(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.pq", "let x = 1 in x")

	events := make(chan driver.Event, 8)
	_, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{
		Config: pqmfmt.DefaultConfig(),
		Events: events,
	})
	if err != nil {
		t.Fatalf("FormatPaths: %v", err)
	}
	close(events)

	var statuses []driver.Status
	for ev := range events {
		statuses = append(statuses, ev.Status)
	}
	if len(statuses) != 3 {
		t.Fatalf("got %d events, want 3 (queued, working, done): %v", len(statuses), statuses)
	}
	if statuses[0] != driver.StatusQueued || statuses[1] != driver.StatusWorking || statuses[2] != driver.StatusDone {
		t.Errorf("event order = %v, want [Queued Working Done]", statuses)
	}
}
