package ir

import (
	"errors"

	"github.com/signadot/prefs/ir/kpath"
)

var (
	ErrNoValue  = errors.New("no value")
	ErrCoerce   = errors.New("cannot coerce value")
	ErrBadValue = errors.New("value is not valid utf8")
)

// PathError reports a malformed path passed to Set.
type PathError = kpath.PathError
