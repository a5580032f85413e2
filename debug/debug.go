package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Schema bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RJSON_DEBUG_PARSE")
	d.Encode = boolEnv("RJSON_DEBUG_ENCODE")
	d.Schema = boolEnv("RJSON_DEBUG_SCHEMA")
	d.Eval = boolEnv("RJSON_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Schema() bool {
	return d.Schema
}
func Eval() bool {
	return d.Eval
}
