// Package diag holds the simulation's non-gameplay diagnostics: fatal
// assertions, stall logging, and the desync checksum used to prove two
// peers' states are bit-identical (spec.md §8's determinism contract).
package diag

import (
	"fmt"
	"os"

	"github.com/gookit/color"
)

var (
	fatalStyle = color.Style{color.FgRed, color.OpBold}
	warnStyle  = color.Style{color.FgYellow, color.OpBold}
)

// Assert halts the process with a colored message if cond is false. Used
// only for programmer errors the simulation's own invariants rule out
// (e.g. an id_array insert past capacity) — never for recoverable game
// conditions, which surface as Status events instead.
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	Fatal(format, args...)
}

// Fatal prints a colored error and exits. Mirrors the teacher's halt-on-
// invariant-violation style rather than returning an error up a call
// stack the lockstep driver has no sane way to recover from mid-tick.
func Fatal(format string, args ...any) {
	fmt.Fprintln(os.Stderr, fatalStyle.Sprint("FATAL: "+fmt.Sprintf(format, args...)))
	os.Exit(1)
}

// LogStall reports a deterministic lockstep stall: turn N is waiting on
// one or more players' input bundles. Never triggers a retry by itself —
// the driver decides whether and how to keep waiting.
func LogStall(turn uint32, waitingOn []uint8) {
	msg := fmt.Sprintf("stall: turn %d waiting on players %v", turn, waitingOn)
	fmt.Fprintln(os.Stderr, warnStyle.Sprint(msg))
}
