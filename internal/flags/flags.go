// Package flags scans a command line for single-character option flags.
//
// A flag argument starts with '-' and may bundle several flag characters,
// so "-fv" sets both f and v. Arguments that do not start with '-' are
// never inspected.
package flags

// Marker is the byte that introduces a flag argument.
const Marker = '-'

// Recognised flag characters.
const (
	Force   byte = 'f'
	Verbose byte = 'v'
	Help    byte = 'h'
)

// Set is the flag state derived once from the command line.
type Set struct {
	Force   bool
	Verbose bool
	Help    bool
}

// Scan returns the index of the first argument that carries flag, and
// whether one was found.
func Scan(args []string, flag byte) (int, bool) {
	for i, arg := range args {
		if !isFlagArg(arg) {
			continue
		}
		for j := 1; j < len(arg); j++ {
			if arg[j] == flag {
				return i, true
			}
		}
	}
	return -1, false
}

// Parse derives the flag state from args.
func Parse(args []string) Set {
	_, force := Scan(args, Force)
	_, verbose := Scan(args, Verbose)
	_, help := Scan(args, Help)
	return Set{Force: force, Verbose: verbose, Help: help}
}

// Trailing reports whether any of the given flags appears in the last n
// arguments.
func Trailing(args []string, n int, want ...byte) bool {
	if n > len(args) {
		n = len(args)
	}
	tail := args[len(args)-n:]
	for _, f := range want {
		if _, ok := Scan(tail, f); ok {
			return true
		}
	}
	return false
}

func isFlagArg(arg string) bool {
	return len(arg) > 0 && arg[0] == Marker
}
