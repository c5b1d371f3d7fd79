package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBadKey       = errors.New("bad key")
	ErrMissingSep   = errors.New("missing separator")
	ErrBadSection   = errors.New("bad section header")
	ErrTrailing     = errors.New("trailing characters")
)

// FormatError reports a lexically invalid document.
type FormatError struct {
	Err error
	Pos Pos
}

func NewFormatError(e error, p Pos) *FormatError {
	return &FormatError{Err: e, Pos: p}
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p Pos) error {
	return NewFormatError(fmt.Errorf("%w: expected %s", ErrMissingSep, what), p)
}

func UnexpectedErr(what string, p Pos) error {
	return NewFormatError(fmt.Errorf("%w: unexpected %s", ErrTrailing, what), p)
}
