package cellshape

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cellshape package.
var (
	// ErrBufferCapacity is returned when a fixed-capacity cell buffer
	// cannot hold the shaped output of a run. Engines built without
	// WithMaxCells never return it.
	ErrBufferCapacity = errors.New("cellshape: cell buffer capacity exceeded")

	// ErrShapingFailed is returned when the backend cannot produce glyph
	// positions for a run.
	ErrShapingFailed = errors.New("cellshape: backend failed to shape run")

	// ErrFaceUnsupported is returned when a backend is handed a Face of a
	// concrete type it cannot shape with.
	ErrFaceUnsupported = errors.New("cellshape: face type not supported by backend")

	// ErrMissingGlyph is returned when a face unexpectedly has no glyph
	// for a codepoint the resolver reported as supported.
	ErrMissingGlyph = errors.New("cellshape: face has no glyph for codepoint")
)

// BackendError wraps a backend shaping failure with the run it occurred on.
// The failure is local to that run: engine buffers are cleared at the start
// of the next run regardless, so other rows continue to shape normally.
type BackendError struct {
	// Offset is the starting column of the failed run.
	Offset int

	// Err is the underlying backend error.
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("cellshape: shaping run at column %d: %v", e.Offset, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
