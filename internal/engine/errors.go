package engine

import "fmt"

// InputError indicates a document that cannot be scored: missing, unnamed,
// or yielding no usable text. It is surfaced to the caller immediately and
// never retried; the engine does not invent partial results.
type InputError struct {
	Document string // "resume" or "jd"
	Message  string
	Cause    error
}

func (e *InputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s input: %s: %v", e.Document, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s input: %s", e.Document, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
