package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse        = errors.New("parse error")
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrParse)
)
