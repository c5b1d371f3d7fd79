package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Logf writes a debug message to stderr. Maps, slices and json numbers
// are rendered as indented JSON; byte slices are quoted so raw line
// trivia stays visible.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case []byte:
			args[i] = strconv.Quote(string(x))
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
