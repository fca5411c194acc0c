package geom

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for conversion errors.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindMalformedRecord    ErrorKind = "malformed_record"
	KindUnexpectedGeometry ErrorKind = "unexpected_geometry"
	KindWrite              ErrorKind = "write"
)

// OpError wraps an underlying error with the operation, the offending file
// and, where known, the 1-based line or 0-based feature index.
type OpError struct {
	Op    string
	Kind  ErrorKind
	Path  string
	Line  int // 0 when not applicable
	Index int // -1 when not applicable
	Err   error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s", e.Path)
		if e.Line > 0 {
			base += fmt.Sprintf(" line=%d", e.Line)
		}
		if e.Index >= 0 {
			base += fmt.Sprintf(" feature=%d", e.Index)
		}
		base += ")"
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries an OpError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

func notFound(op, path string, err error) *OpError {
	return &OpError{Op: op, Kind: KindNotFound, Path: path, Index: -1, Err: err}
}

func malformed(op, path string, line int, err error) *OpError {
	return &OpError{Op: op, Kind: KindMalformedRecord, Path: path, Line: line, Index: -1, Err: err}
}

func unexpectedGeometry(op, path string, index int, err error) *OpError {
	return &OpError{Op: op, Kind: KindUnexpectedGeometry, Path: path, Index: index, Err: err}
}

func writeFailed(op, path string, err error) *OpError {
	return &OpError{Op: op, Kind: KindWrite, Path: path, Index: -1, Err: err}
}
