package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Convert bool
	Load    bool
	Persist bool
	Eval    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Convert = boolEnv("HP_DEBUG_CONVERT")
	d.Load = boolEnv("HP_DEBUG_LOAD")
	d.Persist = boolEnv("HP_DEBUG_PERSIST")
	d.Eval = boolEnv("HP_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Convert() bool {
	return d.Convert
}
func Load() bool {
	return d.Load
}
func Persist() bool {
	return d.Persist
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(d)
}
