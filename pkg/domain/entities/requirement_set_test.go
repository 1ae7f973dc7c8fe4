package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFrameRequirement() *RequirementSet {
	return &RequirementSet{
		ID: "plank_frame",
		Qualities: [][]QualityRequirement{
			{{Type: "HAMMER", Level: 2, Count: 1}},
		},
		Tools: [][]ToolComponent{
			{{Type: "welder", Count: 20}, {Type: "welder_crude", Count: 30}},
			{{Type: "vise", Count: -2}},
			{{Type: "clamp", Count: -1}},
		},
		Components: [][]ItemComponent{
			{{Type: "nail", Count: 10, Recoverable: true}},
			{{Type: "plank", Count: 4, Recoverable: true}, {Type: "log", Count: 1, Recoverable: true}},
		},
	}
}

func TestRequirementSet_Scale(t *testing.T) {
	base := buildFrameRequirement()

	for _, n := range []int{1, 2, 5} {
		scaled, err := base.Scale(n)
		require.NoError(t, err)

		assert.Equal(t, NullRequirementID, scaled.ID)
		for g, group := range base.Tools {
			for i, tool := range group {
				if tool.ByCharges() {
					assert.Equal(t, tool.Count*n, scaled.Tools[g][i].Count)
				} else {
					assert.Equal(t, max(tool.Count*n, -1), scaled.Tools[g][i].Count)
				}
			}
		}
		for g, group := range base.Components {
			for i, comp := range group {
				assert.Equal(t, comp.Count*n, scaled.Components[g][i].Count)
			}
		}
		assert.Equal(t, base.Qualities, scaled.Qualities, "quality counts must not scale")
	}

	// Base set untouched
	assert.Equal(t, 20, base.Tools[0][0].Count)
	assert.Equal(t, RequirementID("plank_frame"), base.ID)
}

func TestRequirementSet_ScaleRejectsNonPositive(t *testing.T) {
	_, err := buildFrameRequirement().Scale(0)
	require.Error(t, err)
	assert.Equal(t, "multiplier must be positive, got 0", err.Error())
}

func TestRequirementSet_Combine(t *testing.T) {
	a := buildFrameRequirement()
	b := &RequirementSet{
		ID:         "glue_up",
		Qualities:  [][]QualityRequirement{{{Type: "HAMMER", Level: 1, Count: 1}}},
		Tools:      [][]ToolComponent{{{Type: "clamp", Count: -1}}},
		Components: [][]ItemComponent{{{Type: "glue", Count: 1, Recoverable: true}}},
	}

	combined := a.Combine(b)

	assert.Equal(t, NullRequirementID, combined.ID)
	assert.Len(t, combined.Qualities, len(a.Qualities)+len(b.Qualities))
	assert.Len(t, combined.Tools, len(a.Tools)+len(b.Tools))
	assert.Len(t, combined.Components, len(a.Components)+len(b.Components))
	assert.Equal(t, b.Components[0], combined.Components[len(a.Components)])
	// Duplicate HAMMER qualities are kept side by side
	assert.Equal(t, QualityID("HAMMER"), combined.Qualities[0][0].Type)
	assert.Equal(t, QualityID("HAMMER"), combined.Qualities[1][0].Type)

	// No shared state with the operands
	combined.Components[0][0].Count = 99
	assert.Equal(t, 10, a.Components[0][0].Count)
}

func TestRequirementSet_CloneIsIndependent(t *testing.T) {
	base := buildFrameRequirement()
	clone := base.Clone()

	clone.Tools[0][0].Count = 1
	clone.Components = append(clone.Components, []ItemComponent{{Type: "glue", Count: 1}})

	assert.Equal(t, 20, base.Tools[0][0].Count)
	assert.Len(t, base.Components, 2)
	assert.Equal(t, base.ID, clone.ID)
}

func TestRequirementSet_RemoveItem(t *testing.T) {
	set := buildFrameRequirement()

	set.RemoveItem("plank")
	require.Len(t, set.Components, 2)
	assert.Equal(t, []ItemComponent{{Type: "log", Count: 1, Recoverable: true}}, set.Components[1])

	set.RemoveItem("nail")
	assert.Len(t, set.Components, 1, "empty group must be pruned")

	set.RemoveItem("vise")
	assert.Len(t, set.Tools, 2)
}

func TestRequirementSet_Find(t *testing.T) {
	set := buildFrameRequirement()

	ref, tool := set.FindTool("welder_crude")
	require.NotNil(t, tool)
	assert.Equal(t, ItemRef{Tier: TierTools, Group: 0, Index: 1}, ref)

	_, missing := set.FindTool("anvil")
	assert.Nil(t, missing)

	qref, quality := set.FindQuality("HAMMER")
	require.NotNil(t, quality)
	assert.Equal(t, ItemRef{Tier: TierQualities}, qref)
}

func TestNullRequirementSet(t *testing.T) {
	null := NullRequirementSet()
	assert.True(t, null.IsEmpty())
	assert.True(t, null.ID.IsNull())
}
