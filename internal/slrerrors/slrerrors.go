// Package slrerrors holds the error taxonomy of spec §7: sentinel
// categories an operator or caller can check with errors.Is, plus an Error
// type that carries a message and one or more causes. Grounded on
// server/serr's sentinel-plus-cause pattern.
package slrerrors

import "errors"

var (
	// ErrInputShape covers every reader rejection of spec §7: missing
	// arrow, multiple origins, epsilon on the left-hand side, empty
	// left-hand side, or a line count inconsistent with the lines present.
	ErrInputShape = errors.New("grammar text is not well-formed")

	// ErrIO covers file and stream failures encountered by the driver.
	ErrIO = errors.New("an I/O error occurred")

	// ErrRender covers a renderer failure (spec §7: "rendering errors are
	// fatal").
	ErrRender = errors.New("could not render table")
)

// Error is a message plus one or more causes, checkable with errors.Is
// against any of those causes. Error values are not comparable, so errors.Is
// never matches one Error against another.
type Error struct {
	msg   string
	cause []error
}

// New creates an Error with msg and the given causes. Causes are optional;
// when present, errors.Is(err, cause) reports true for each of them.
func New(msg string, causes ...error) Error {
	e := Error{msg: msg}
	if len(causes) > 0 {
		e.cause = make([]error, len(causes))
		copy(e.cause, causes)
	}
	return e
}

// Error returns msg, with the first cause's message appended if one is set.
func (e Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}
	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}
	return e.msg
}

// Unwrap returns e's causes, for use by errors.Is/errors.As.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// InputShape wraps err, if non-nil, as an ErrInputShape-tagged Error.
func InputShape(msg string, err error) error {
	if err == nil {
		return New(msg, ErrInputShape)
	}
	return New(msg, err, ErrInputShape)
}

// IO wraps err as an ErrIO-tagged Error, naming the path that failed.
func IO(path string, err error) error {
	return New("could not access "+path, err, ErrIO)
}

// Render wraps err as an ErrRender-tagged Error.
func Render(err error) error {
	return New("render failed", err, ErrRender)
}
