package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokenize bool
	Parse    bool
	Encode   bool
	Web      bool
	Eval     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokenize = boolEnv("PREFS_DEBUG_TOKENIZE")
	d.Parse = boolEnv("PREFS_DEBUG_PARSE")
	d.Encode = boolEnv("PREFS_DEBUG_ENCODE")
	d.Web = boolEnv("PREFS_DEBUG_WEB")
	d.Eval = boolEnv("PREFS_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokenize() bool {
	return d.Tokenize
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Web() bool {
	return d.Web
}
func Eval() bool {
	return d.Eval
}
