package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResult_States(t *testing.T) {
	result := NewCheckResult(2)
	tool := ItemRef{Tier: TierTools, Group: 0, Index: 1}
	comp := ItemRef{Tier: TierComponents, Group: 1, Index: 0}
	early := ItemRef{Tier: TierComponents, Group: 0, Index: 2}

	assert.Equal(t, AvailabilityUnknown, result.State(tool), "state before check")

	result.SetState(tool, AvailabilityTrue)
	result.SetState(comp, AvailabilityInsufficient)
	result.SetState(early, AvailabilityInsufficient)

	assert.True(t, result.GroupHasAvailable(TierTools, 0))
	assert.False(t, result.GroupHasAvailable(TierComponents, 1), "insufficient alternatives are not available")
	assert.Equal(t, []ItemRef{early, comp}, result.Insufficient())
}

func TestCheckResult_SatisfiedAndEqual(t *testing.T) {
	a := NewCheckResult(1)
	a.QualitiesMet, a.ToolsMet, a.ComponentsMet = true, true, true
	assert.False(t, a.Satisfied(), "materials check still fails")
	a.MaterialsMet = true
	assert.True(t, a.Satisfied())

	b := NewCheckResult(1)
	b.QualitiesMet, b.ToolsMet, b.ComponentsMet, b.MaterialsMet = true, true, true, true
	ref := ItemRef{Tier: TierQualities}
	a.SetState(ref, AvailabilityTrue)
	assert.False(t, a.Equal(b), "different annotations")
	b.SetState(ref, AvailabilityTrue)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestEnumStrings(t *testing.T) {
	testCases := []struct {
		got  string
		want string
	}{
		{AvailabilityInsufficient.String(), "Insufficient"},
		{TierComponents.String(), "Components"},
		{ColorWarning.String(), "brown"},
		{ColorAssisted.String(), "ltgreen"},
		{ColorNeutral.String(), "dkgray"},
		{ColorPlain.String(), "white"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.got)
	}
}
