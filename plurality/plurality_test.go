package plurality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/plurality"
)

func binaryFamily(t *testing.T, name string, desires ...string) *family.Family {
	t.Helper()
	agents := make([]agent.Agent, len(desires))
	for i, d := range desires {
		a, err := agent.NewBinary(goods.Set(d), 1)
		require.NoError(t, err)
		agents[i] = a
	}
	f, err := family.New(agents, criteria.OneOfBestC{C: 2}, name)
	require.NoError(t, err)
	return f
}

// TestBestIndexByPlurality_WeightedMajority checks the weighted vote with
// the lowest-index tie-break.
func TestBestIndexByPlurality_WeightedMajority(t *testing.T) {
	a1, err := agent.NewBinary(goods.Set("xy"), 1)
	require.NoError(t, err)
	a2, err := agent.NewBinary(goods.Set("yz"), 2)
	require.NoError(t, err)
	f, err := family.New([]agent.Agent{a1, a2}, criteria.OneOfBestC{C: 2}, "Family 1")
	require.NoError(t, err)

	i, err := plurality.BestIndexByPlurality(f, []goods.Bundle{goods.Set("xy"), goods.Set("yz")}, plurality.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

// TestFindEnvyFreeAllocation_DistinctWinners reproduces the documented
// permutation for both family orders.
func TestFindEnvyFreeAllocation_DistinctWinners(t *testing.T) {
	f1 := binaryFamily(t, "Family 1", "wx", "wxy", "yz")
	f2 := binaryFamily(t, "Family 2", "wx", "xyz", "yz")
	part := []goods.Bundle{goods.Set("wx"), goods.Set("yz")}

	alloc, ok, err := plurality.FindEnvyFreeAllocation([]*family.Family{f1, f2}, part, plurality.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "w,x", alloc[0].Key())
	assert.Equal(t, "y,z", alloc[1].Key())

	alloc, ok, err = plurality.FindEnvyFreeAllocation([]*family.Family{f2, f1}, part, plurality.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "y,z", alloc[0].Key())
	assert.Equal(t, "w,x", alloc[1].Key())
}

// TestFindEnvyFreeAllocation_Collision verifies the expected no-result
// outcome when two families cast the same vote.
func TestFindEnvyFreeAllocation_Collision(t *testing.T) {
	f1 := binaryFamily(t, "Family 1", "wx", "wxy", "yz")
	twin := binaryFamily(t, "Family 1 twin", "wx", "wxy", "yz")
	part := []goods.Bundle{goods.Set("wx"), goods.Set("yz")}

	alloc, ok, err := plurality.FindEnvyFreeAllocation([]*family.Family{f1, twin}, part, plurality.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, alloc)
}

// TestFindEF2Allocation_SubsimplexVertices reproduces the documented
// EF2 allocation from two partial partitions.
func TestFindEF2Allocation_SubsimplexVertices(t *testing.T) {
	f1 := binaryFamily(t, "Family 1", "wx", "wyz", "yz")
	f2 := binaryFamily(t, "Family 2", "wx", "xy", "yz")
	vertex1 := []goods.Bundle{goods.Set("w"), goods.Set("yz")}
	vertex2 := []goods.Bundle{goods.Set("wx"), goods.Set("z")}
	vertices := [][]goods.Bundle{vertex1, vertex2}

	alloc, ok, err := plurality.FindEF2Allocation([]*family.Family{f1, f2}, vertices, plurality.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "y,z", alloc[0].Key())
	assert.Equal(t, "w,x", alloc[1].Key())

	// Swapping the family order swaps the winning indices but yields the
	// same bundles per family.
	alloc, ok, err = plurality.FindEF2Allocation([]*family.Family{f2, f1}, vertices, plurality.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "y,z", alloc[0].Key())
	assert.Equal(t, "w,x", alloc[1].Key())
}

// TestFindEF2Allocation_BundlesAreVertexUnions verifies the returned
// bundles are disjoint unions of the supplied sub-bundles.
func TestFindEF2Allocation_BundlesAreVertexUnions(t *testing.T) {
	f1 := binaryFamily(t, "Family 1", "wx", "wyz", "yz")
	f2 := binaryFamily(t, "Family 2", "wx", "xy", "yz")
	vertices := [][]goods.Bundle{
		{goods.Set("w"), goods.Set("yz")},
		{goods.Set("wx"), goods.Set("z")},
	}
	alloc, ok, err := plurality.FindEF2Allocation([]*family.Family{f1, f2}, vertices, plurality.DefaultOptions())
	require.NoError(t, err)
	require.True(t, ok)
	assert.NoError(t, alloc.Validate(goods.FromRunes("wxyz")))
}

// TestShapeValidation covers the arity sentinel for both entry points.
func TestShapeValidation(t *testing.T) {
	f1 := binaryFamily(t, "Family 1", "wx")
	f2 := binaryFamily(t, "Family 2", "yz")
	fams := []*family.Family{f1, f2}

	_, _, err := plurality.FindEnvyFreeAllocation(fams, []goods.Bundle{goods.Set("wx")}, plurality.DefaultOptions())
	assert.ErrorIs(t, err, plurality.ErrVertexShape)

	_, _, err = plurality.FindEF2Allocation(fams, [][]goods.Bundle{{goods.Set("wx")}}, plurality.DefaultOptions())
	assert.ErrorIs(t, err, plurality.ErrVertexShape)
}
