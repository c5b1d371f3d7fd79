package export

import "errors"

var (
	ErrNotObject   = errors.New("document is not an object")
	ErrUnsupported = errors.New("unsupported value")
)
