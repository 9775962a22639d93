package svgpath

import (
	"errors"
	"fmt"
)

// Errors reported while parsing path data. A parse that fails returns one
// of them wrapped in a *ParseError and never a partial path.
var (
	ErrMalformedToken     = errors.New("malformed token")
	ErrUnexpectedCommand  = errors.New("unexpected command")
	ErrArityMismatch      = errors.New("wrong number of operands")
	ErrUnsupportedCommand = errors.New("unsupported command")
	ErrMalformedTransform = errors.New("malformed transform")
)

// ParseError records where in the path data parsing stopped.
type ParseError struct {
	Pos     int  // byte offset in the input
	Command byte // command being interpreted, 0 if none
	Err     error
}

func (e *ParseError) Error() string {
	if e.Command != 0 {
		return fmt.Sprintf("svgpath: %q at offset %d: %s", e.Command, e.Pos, e.Err)
	}
	return fmt.Sprintf("svgpath: offset %d: %s", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
