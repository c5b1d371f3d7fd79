// Package export renders preferences trees as nested JSON or YAML
// documents and reads such documents back as flat path/value maps.
//
// Keys keep their document order. A key that has both a scalar and
// children is rendered as an object whose "" member holds the scalar:
//
//	a = 1
//	a.b = 2
//
// exports as {"a": {"": "1", "b": "2"}}.
package export
