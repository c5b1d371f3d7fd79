package mergeop

import "errors"

var (
	ErrRemoveUnsupported = errors.New("removing keys is not supported")
)
