// Package flagx lets several packages parse their own subset of the
// command line without tripping over each other's flags.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Filter returns the arguments belonging to the named flags, in order.
// Names are given without dashes; both -name and --name spellings match.
//
// A value is taken from "-name=value" or from the following argument when
// that argument does not itself start with a dash. Everything else,
// including positional arguments, is dropped.
func Filter(args []string, names ...string) []string {
	known := make(map[string]struct{}, len(names))
	for _, n := range names {
		known[strings.TrimLeft(n, "-")] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if _, ok := known[name]; !ok {
			continue
		}
		out = append(out, arg)
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// NewFlagSet returns a silent ContinueOnError flag set for use with Filter.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ConfigPath extracts the JSON config path given with -c or -config.
// The last occurrence wins; an empty string means none was given.
func ConfigPath(args []string) string {
	var path string

	fs := NewFlagSet("config")
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(Filter(args, "c", "config"))

	return path
}
