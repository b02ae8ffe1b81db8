package rwav_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/rwav"
)

func binaryFamily(t *testing.T, crit criteria.Criterion, name string, members ...struct {
	desired     string
	cardinality int
}) *family.Family {
	t.Helper()
	agents := make([]agent.Agent, len(members))
	for i, m := range members {
		a, err := agent.NewBinary(goods.Set(m.desired), m.cardinality)
		require.NoError(t, err)
		agents[i] = a
	}
	f, err := family.New(agents, crit, name)
	require.NoError(t, err)
	return f
}

type member = struct {
	desired     string
	cardinality int
}

// referenceFamilies builds the two-family instance used throughout the
// reference traces: 1-of-best-2 fairness, members wx/xy/yz/zw against
// wz/zy with growing cardinalities.
func referenceFamilies(t *testing.T) []*family.Family {
	t.Helper()
	crit := criteria.OneOfBestC{C: 2}
	f1 := binaryFamily(t, crit, "Group 1",
		member{"wx", 1}, member{"xy", 2}, member{"yz", 3}, member{"zw", 4})
	f2 := binaryFamily(t, crit, "Group 2",
		member{"wz", 2}, member{"zy", 3})
	return []*family.Family{f1, f2}
}

// TestAllocate_ReferenceInstance reproduces the documented outcome:
// Group 1 receives {x,z} and Group 2 receives {w,y}.
func TestAllocate_ReferenceInstance(t *testing.T) {
	alloc, err := rwav.Allocate(referenceFamilies(t), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, alloc, 2)
	assert.Equal(t, "x,z", alloc[0].Key())
	assert.Equal(t, "w,y", alloc[1].Key())
}

// TestAllocate_ExactPartition verifies the partition invariant over a
// spread of instances.
func TestAllocate_ExactPartition(t *testing.T) {
	universes := []string{"w", "wx", "wxyz", "uvwxyz"}
	for _, u := range universes {
		alloc, err := rwav.Allocate(referenceFamilies(t), goods.FromRunes(u), rwav.DefaultOptions())
		require.NoError(t, err, "universe=%s", u)
		assert.NoError(t, alloc.Validate(goods.FromRunes(u)), "universe=%s", u)
	}
}

// TestAllocate_Deterministic verifies bit-identical re-runs.
func TestAllocate_Deterministic(t *testing.T) {
	first, err := rwav.Allocate(referenceFamilies(t), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	require.NoError(t, err)
	second, err := rwav.Allocate(referenceFamilies(t), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestAllocate_RejectsBadFamilyCount covers the configuration sentinel.
func TestAllocate_RejectsBadFamilyCount(t *testing.T) {
	fams := referenceFamilies(t)

	_, err := rwav.Allocate(fams[:1], goods.FromRunes("wxyz"), rwav.DefaultOptions())
	assert.ErrorIs(t, err, rwav.ErrFamilyCount)

	_, err = rwav.Allocate(append(fams, fams[0]), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	assert.ErrorIs(t, err, rwav.ErrFamilyCount)
}

// TestAllocate_TraceIsOptional ensures a run with a sink produces lines
// and the silent default stays silent.
func TestAllocate_TraceIsOptional(t *testing.T) {
	var lines []string
	opts := rwav.Options{Trace: func(msg string) { lines = append(lines, msg) }}
	_, err := rwav.Allocate(referenceFamilies(t), goods.FromRunes("wxyz"), opts)
	require.NoError(t, err)
	assert.NotEmpty(t, lines)
}

// TestAllocateEnhanced_ThresholdShortCircuit reproduces the documented
// enhanced outcome: one good crosses the 0.6 threshold for Group 1, which
// receives it while Group 2 takes the rest — in both family orders.
func TestAllocateEnhanced_ThresholdShortCircuit(t *testing.T) {
	crit := criteria.OneOfBestC{C: 2}
	build := func() (*family.Family, *family.Family) {
		f1 := binaryFamily(t, crit, "Group 1",
			member{"wx", 1}, member{"xy", 3}, member{"yz", 3}, member{"wv", 3})
		f2 := binaryFamily(t, crit, "Group 2",
			member{"wx", 5}, member{"yz", 5})
		return f1, f2
	}
	universe := goods.FromRunes("vwxyz")

	f1, f2 := build()
	alloc, err := rwav.AllocateEnhanced([]*family.Family{f1, f2}, universe, 0.6, rwav.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "y", alloc[0].Key())
	assert.Equal(t, "v,w,x,z", alloc[1].Key())

	f1, f2 = build()
	alloc, err = rwav.AllocateEnhanced([]*family.Family{f2, f1}, universe, 0.6, rwav.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "v,w,x,z", alloc[0].Key())
	assert.Equal(t, "y", alloc[1].Key())
}

// TestAllocateEnhanced_FallsBackToTurnLoop ensures that when no good
// crosses the threshold the result matches plain RWAV. No single good
// here is desired by 0.8 of either family: the heaviest are z at 7/10
// of Group 1 and x and y at 3/5 of Group 2.
func TestAllocateEnhanced_FallsBackToTurnLoop(t *testing.T) {
	crit := criteria.OneOfBestC{C: 2}
	build := func() []*family.Family {
		f1 := binaryFamily(t, crit, "Group 1",
			member{"wx", 1}, member{"xy", 2}, member{"yz", 3}, member{"zw", 4})
		f2 := binaryFamily(t, crit, "Group 2",
			member{"wz", 2}, member{"xy", 3})
		return []*family.Family{f1, f2}
	}

	enhanced, err := rwav.AllocateEnhanced(build(), goods.FromRunes("wxyz"), 0.8, rwav.DefaultOptions())
	require.NoError(t, err)
	plain, err := rwav.Allocate(build(), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, plain, enhanced)
}

// TestAllocateEnhanced_RejectsBadThreshold covers the threshold sentinel.
func TestAllocateEnhanced_RejectsBadThreshold(t *testing.T) {
	_, err := rwav.AllocateEnhanced(referenceFamilies(t), goods.FromRunes("wxyz"), 1.5, rwav.DefaultOptions())
	assert.ErrorIs(t, err, rwav.ErrBadThreshold)

	_, err = rwav.AllocateEnhanced(referenceFamilies(t), goods.FromRunes("wxyz"), -0.1, rwav.DefaultOptions())
	assert.ErrorIs(t, err, rwav.ErrBadThreshold)
}

// TestAllocateTwoThirds_IdenticalFamilies checks the reference instance:
// two identical wx/yz families split four goods evenly.
func TestAllocateTwoThirds_IdenticalFamilies(t *testing.T) {
	crit := criteria.OneOfBestC{C: 2}
	f1 := binaryFamily(t, crit, "Group 1", member{"wx", 1}, member{"yz", 1})
	f2 := binaryFamily(t, crit, "Group 2", member{"wx", 1}, member{"yz", 1})

	alloc, err := rwav.AllocateTwoThirds([]*family.Family{f1, f2}, goods.FromRunes("wxyz"), rwav.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, alloc[0].Len())
	assert.Equal(t, 2, alloc[1].Len())
	assert.NoError(t, alloc.Validate(goods.FromRunes("wxyz")))
}

// TestAllocateTwoThirds_RejectsNonIdentical covers the identity sentinel.
func TestAllocateTwoThirds_RejectsNonIdentical(t *testing.T) {
	_, err := rwav.AllocateTwoThirds(referenceFamilies(t), goods.FromRunes("wxyz"), rwav.DefaultOptions())
	assert.ErrorIs(t, err, rwav.ErrNonIdenticalFamilies)
}
