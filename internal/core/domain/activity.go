package domain

import "time"

// Operation identifies which bridge operation produced an activity record.
type Operation string

// Bridge operations.
const (
	// OperationSave is a JSON save request.
	OperationSave Operation = "save"

	// OperationLoad is a file content request.
	OperationLoad Operation = "load"
)

// IsValid returns true if the operation is recognised.
func (o Operation) IsValid() bool {
	return o == OperationSave || o == OperationLoad
}

// String returns the string representation.
func (o Operation) String() string {
	return string(o)
}

// Activity is a journal record of one save or load request.
type Activity struct {
	// ID uniquely identifies the record.
	ID string

	// Operation is the request kind.
	Operation Operation

	// Path is the resolved local path. Empty for cancelled saves.
	Path string

	// Outcome is the SaveOutcome or LoadOutcome rendered as a string.
	Outcome string

	// Bytes is the number of bytes written or read.
	Bytes int

	// Error is the failure message, if any.
	Error string

	// At is when the request completed.
	At time.Time
}

// Succeeded returns true if the recorded request reached its goal.
func (a Activity) Succeeded() bool {
	switch a.Operation {
	case OperationSave:
		return a.Outcome == SaveWritten.String()
	case OperationLoad:
		return a.Outcome == LoadOK.String()
	default:
		return false
	}
}

// ActivityFromSave builds a journal record from a save result.
func ActivityFromSave(id string, r SaveResult, at time.Time) Activity {
	a := Activity{
		ID:        id,
		Operation: OperationSave,
		Path:      r.Path,
		Outcome:   r.Outcome.String(),
		Bytes:     r.BytesWritten,
		At:        at,
	}
	if r.Err != nil {
		a.Error = r.Err.Error()
	}
	return a
}

// ActivityFromLoad builds a journal record from a load result.
func ActivityFromLoad(id string, r LoadResult, at time.Time) Activity {
	a := Activity{
		ID:        id,
		Operation: OperationLoad,
		Path:      r.Path,
		Outcome:   r.Outcome.String(),
		Bytes:     len(r.Content),
		At:        at,
	}
	if r.Err != nil {
		a.Error = r.Err.Error()
	}
	return a
}
