package seq

import "fmt"

// Invariant panics with a formatted, package-prefixed message when cond is
// false. Every engine in this module calls it for programmer-error contract
// violations (empty range, out-of-bounds position, querying before Build,
// an input that fails the ±1 property) rather than returning an error: these
// are not recoverable conditions, they indicate a caller bug, and the
// corpus's own convention (see builder.options's panic(fmt.Sprintf(...)))
// is to fail loudly at the call site instead of threading a sentinel error
// through every Query call.
func Invariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
