package rwav

import (
	"errors"

	"github.com/famdiv/famdiv/trace"
)

// Sentinel errors for protocol configuration.
var (
	// ErrFamilyCount indicates a protocol variant was invoked with a family
	// count it does not support; all rwav variants require exactly 2.
	ErrFamilyCount = errors.New("rwav: exactly two families are supported")

	// ErrNonIdenticalFamilies indicates AllocateTwoThirds was invoked with
	// families whose member lists differ.
	ErrNonIdenticalFamilies = errors.New("rwav: the two-thirds protocol requires two identical families")

	// ErrBadThreshold indicates an enhanced-RWAV threshold outside [0,1].
	ErrBadThreshold = errors.New("rwav: threshold must be within [0,1]")
)

// Options configures a protocol run.
type Options struct {
	// Trace receives human-readable progress lines at each decision point.
	// Nil disables tracing.
	Trace trace.Sink
}

// DefaultOptions returns the canonical silent configuration.
func DefaultOptions() Options {
	return Options{Trace: trace.Discard}
}
