package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Walk   bool
	Schema bool
	Codec  bool
	Text   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("OBJFORM_DEBUG_WALK")
	d.Schema = boolEnv("OBJFORM_DEBUG_SCHEMA")
	d.Codec = boolEnv("OBJFORM_DEBUG_CODEC")
	d.Text = boolEnv("OBJFORM_DEBUG_TEXT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}
func Schema() bool {
	return d.Schema
}
func Codec() bool {
	return d.Codec
}
func Text() bool {
	return d.Text
}
