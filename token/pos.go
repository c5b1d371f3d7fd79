package token

import (
	"fmt"
	"strconv"
)

// Pos is a position in a document. Line and Col are 1-based; Col counts
// bytes.
type Pos struct {
	I       int
	Line    int
	Col     int
	Context []byte // context snippet around this position (for error messages)
}

func posIn(body []byte, lineOff, lineNo, col int) Pos {
	start := max(0, col-10)
	end := min(col+10, len(body))
	var ctx []byte
	if start < end {
		ctx = body[start:end]
	}
	return Pos{
		I:       lineOff + col,
		Line:    lineNo,
		Col:     col + 1,
		Context: ctx,
	}
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Context) > 0 {
		sample = string(p.Context)
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line, p.Col)
}
