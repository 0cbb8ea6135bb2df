package xform

import "fmt"

// FileError is returned when a script file cannot be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("open script %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a marker is not followed by a valid payload.
type ParseError struct {
	Line  int  // 1-based line of the marker
	Kind  Kind // kind announced by the marker
	Order int  // order the operation would have received
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s (order %d): %v", e.Line, e.Kind.Marker(), e.Order, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidOperationError reports an operation whose parameters do not define
// a transform, such as a reflection plane with a zero normal.
type InvalidOperationError struct {
	Order  int
	Kind   Kind
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("invalid %s at order %d: %s", e.Kind, e.Order, e.Reason)
}
