package family_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
)

func binary(t *testing.T, desired string, cardinality int) agent.Agent {
	t.Helper()
	a, err := agent.NewBinary(goods.Set(desired), cardinality)
	require.NoError(t, err)
	return a
}

// TestNew_BindsCriterionTargets verifies that construction writes each
// member's target value from its total value, once.
func TestNew_BindsCriterionTargets(t *testing.T) {
	wantsTwo := binary(t, "xy", 2)
	wantsFour := binary(t, "wxyz", 1)
	f, err := family.New([]agent.Agent{wantsTwo, wantsFour}, criteria.MaximinShareOneOfC{C: 2}, "Group 1")
	require.NoError(t, err)

	assert.Equal(t, 3, f.NumOfMembers())
	assert.Equal(t, 1.0, wantsTwo.TargetValue())  // floor(2/2)
	assert.Equal(t, 2.0, wantsFour.TargetValue()) // floor(4/2)
	assert.Equal(t, "Group 1", f.Name())
}

// TestNew_RejectsBadConfig covers the construction sentinels.
func TestNew_RejectsBadConfig(t *testing.T) {
	_, err := family.New(nil, criteria.OneOfBestC{C: 1}, "empty")
	assert.ErrorIs(t, err, family.ErrNoMembers)

	_, err = family.New([]agent.Agent{binary(t, "x", 1)}, nil, "no criterion")
	assert.ErrorIs(t, err, family.ErrNoCriterion)
}

// TestCountMembers_WeightsByCardinality checks the weighted counting of
// both predicate flavors.
func TestCountMembers_WeightsByCardinality(t *testing.T) {
	f, err := family.New([]agent.Agent{
		binary(t, "xy", 2),
		binary(t, "yz", 1),
	}, criteria.OneOfBestC{C: 2}, "Group 1")
	require.NoError(t, err)

	wantY := f.CountMembers(func(m agent.Agent) bool {
		return m.DesiredGoods().Contains("y")
	})
	assert.Equal(t, 3, wantY)

	wantX, err := f.CountMembersErr(func(m agent.Agent) (bool, error) {
		return m.DesiredGoods().Contains("x"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, wantX)
}

// TestHappyMembers_UsesBoundCriterion reproduces the reference counts for
// a 1-of-2-maximin-share family over growing bundles.
func TestHappyMembers_UsesBoundCriterion(t *testing.T) {
	f, err := family.New([]agent.Agent{
		binary(t, "vwxy", 2),
		binary(t, "yz", 1),
	}, criteria.MaximinShareOneOfC{C: 2}, "Group 1")
	require.NoError(t, err)

	// Targets: floor(4/2)=2 for the first member, floor(2/2)=1 for the second.
	for bundle, want := range map[string]int{
		"x":  0,
		"y":  1,
		"z":  1,
		"wx": 2,
		"xy": 3,
	} {
		happy, err := f.HappyMembers(goods.Set(bundle), nil)
		require.NoError(t, err)
		assert.Equal(t, want, happy, "bundle=%s", bundle)
	}
}

// TestAllocationDescription_Formats smoke-checks the display string.
func TestAllocationDescription_Formats(t *testing.T) {
	f, err := family.New([]agent.Agent{binary(t, "xy", 1)}, criteria.OneOfBestC{C: 2}, "Group 1")
	require.NoError(t, err)

	desc, err := f.AllocationDescription(goods.Set("x"), []goods.Bundle{goods.Set("x"), goods.Set("y")})
	require.NoError(t, err)
	assert.Equal(t, "Group 1: allocated bundle = {x}, happy members = 1/1", desc)
}
