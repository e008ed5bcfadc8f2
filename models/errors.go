package models

import (
	"errors"
	"fmt"
)

// Sentinels for the three error kinds. Every typed error below unwraps to one
// of these so callers can branch with errors.Is.
var (
	ErrParse     = errors.New("parse error")
	ErrDimension = errors.New("dimension error")
	ErrIO        = errors.New("io error")

	// ErrFieldCount marks a row holding the wrong number of values.
	ErrFieldCount = errors.New("wrong number of fields")

	ErrInvalidChannels = fmt.Errorf("%w: channel count must be >= 1", ErrDimension)
	ErrInvalidStep     = errors.New("time step must be positive")
	ErrRaggedChannels  = fmt.Errorf("%w: channels differ in length", ErrDimension)
	ErrShapeMismatch   = fmt.Errorf("%w: interpolated shape does not match original", ErrDimension)
)

// ParseError reports a token or line that could not be read as numbers.
// Line is 1-based; zero means the token came from a flat stream.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Token != "":
		return fmt.Sprintf("line %d: invalid number %q: %v", e.Line, e.Token, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("invalid number %q: %v", e.Token, e.Err)
	}
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.Err} }

// DimensionError reports a flat value count that cannot be split into
// Expected equal channels.
type DimensionError struct {
	Expected int // required divisor (channel count)
	Got      int // number of values supplied
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("data should be arranged in multiples of %d (got %d values)", e.Expected, e.Got)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// IOError reports a failed file operation.
type IOError struct {
	Op   string // "open", "read", "create", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Err} }
