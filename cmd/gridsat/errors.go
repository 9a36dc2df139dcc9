package main

import "errors"

// errUnsatisfiable is returned by a solve subcommand when the search
// exhausts without finding a solution — an expected outcome (spec
// section 7), not an internal failure, but still a nonzero exit so
// scripts can branch on it.
var errUnsatisfiable = errors.New("no solution exists")

// exitCodeFor maps a command error to the process exit code the spec's
// CLI surface requires: 0 is handled by cobra before this is ever
// called, 1 for unsatisfiability, 2 for anything else (parse failure,
// structural misuse, I/O error).
func exitCodeFor(err error) int {
	if errors.Is(err, errUnsatisfiable) {
		return 1
	}
	return 2
}
