// Package trace defines the optional trace-sink hook threaded through
// every allocation protocol. A sink receives human-readable progress
// strings at each decision point; the Discard default makes tracing fully
// optional and never required for correctness.
package trace

import "fmt"

// Sink consumes one human-readable trace line.
type Sink func(msg string)

// Discard is the no-op default sink.
func Discard(string) {}

// Printf formats a trace line and hands it to the sink. A nil sink is
// treated as Discard.
func Printf(s Sink, format string, args ...any) {
	if s == nil {
		return
	}
	s(fmt.Sprintf(format, args...))
}
