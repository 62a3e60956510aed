// Package buildinfo reports the version stamped into the binary, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/weeksoflife/internal/buildinfo.Version=v1.2.0" ./cmd/cli
package buildinfo

import (
	"fmt"
	"io"
	"runtime/debug"
)

const notAvailable = "N/A"

// Set with -ldflags -X.
var (
	Version = ""
	Date    = ""
	Commit  = ""
)

// Data returns version, date and commit, falling back to the module build
// info and then to "N/A".
func Data() (version, date, commit string) {
	version, date, commit = Version, Date, Commit

	if info, ok := debug.ReadBuildInfo(); ok {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			}
		}
	}

	return orNA(version), orNA(date), orNA(commit)
}

// PrintBuildData writes the three build lines to w.
func PrintBuildData(w io.Writer) {
	version, date, commit := Data()
	fmt.Fprintf(w, "Build version: %s\n", version)
	fmt.Fprintf(w, "Build date: %s\n", date)
	fmt.Fprintf(w, "Build commit: %s\n", commit)
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
