package spell

import "errors"

var (
	ErrNoDictionary = errors.New("no dictionary for language")
	ErrBadLanguage  = errors.New("bad language tag")
)
