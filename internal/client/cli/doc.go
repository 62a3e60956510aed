// Package cli provides the interactive weeksoflife command-line client.
//
// It wires configuration, the storage backend, the profile service and the
// life calculator behind a small REPL. Typical flow: onboard once with a name
// and birth date, then work with statistics and the week grid.
//
// A background refresher recomputes statistics on an interval so a
// long-running session rolls over to the next week without a restart.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartStatsRefresher, and runREPL for details.
package cli
