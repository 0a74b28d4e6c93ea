package driver

// Status is a per-file progress state, reported over an Event channel so a
// caller (the bubbletea progress bar in internal/ui) can render a live
// view of a multi-file run. Formatting a single file has no intermediate
// stages, so Status is the whole of the progress model here.
type Status int

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports a file's status transition during FormatPaths.
type Event struct {
	File   string
	Status Status
}

func emit(events chan<- Event, file string, status Status) {
	if events == nil {
		return
	}
	events <- Event{File: file, Status: status}
}
