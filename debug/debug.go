// Package debug holds env-var gated debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("SGF_DEBUG_LEX")
	d.Parse = boolEnv("SGF_DEBUG_PARSE")
	d.Query = boolEnv("SGF_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
