package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Truth reports whether the node's scalar reads as true. Nodes without
// a scalar are false.
func Truth(node *Node) bool {
	b, err := node.Bool()
	return err == nil && b
}

// Bool interprets the scalar as a boolean. Besides the strconv forms it
// accepts yes/no and on/off in any case.
func (y *Node) Bool() (bool, error) {
	if !y.hasValue {
		return false, fmt.Errorf("%w at %q", ErrNoValue, y.Path())
	}
	switch strings.ToLower(strings.TrimSpace(y.value)) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(y.value))
	if err != nil {
		return false, fmt.Errorf("%w %q to bool", ErrCoerce, y.value)
	}
	return b, nil
}

func (y *Node) Int() (int64, error) {
	if !y.hasValue {
		return 0, fmt.Errorf("%w at %q", ErrNoValue, y.Path())
	}
	i, err := strconv.ParseInt(strings.TrimSpace(y.value), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q to int", ErrCoerce, y.value)
	}
	return i, nil
}

func (y *Node) Float() (float64, error) {
	if !y.hasValue {
		return 0, fmt.Errorf("%w at %q", ErrNoValue, y.Path())
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(y.value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q to float", ErrCoerce, y.value)
	}
	return f, nil
}
