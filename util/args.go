package util

import (
	"strconv"
	"strings"
)

// KeywordArgs splits command line arguments into key=value pairs. The
// bare (keyless) argument, if any, ends up under the empty key.
func KeywordArgs(args []string) map[string]string {
	ret := map[string]string{}
	for _, arg := range args {
		if key, value, ok := strings.Cut(arg, "="); ok {
			ret[key] = value
		} else {
			ret[""] = arg
		}
	}
	return ret
}

// ParseArg converts numeric values, leaving anything else a string.
func ParseArg(value string) interface{} {
	if num, err := strconv.ParseFloat(value, 64); err == nil {
		return num
	}
	return value
}

// ParseArgs turns command line arguments into a command plus event
// fields, for building command events from the CLI.
func ParseArgs(args []string) (string, map[string]interface{}) {
	command := ""
	fields := map[string]interface{}{}
	for field, value := range KeywordArgs(args) {
		if field == "" {
			command = value
		} else {
			fields[field] = ParseArg(value)
		}
	}
	return command, fields
}
