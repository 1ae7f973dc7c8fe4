package entities

import (
	"fmt"
	"slices"
)

// RequirementSet is an AND of alternative groups across three tiers.
// Every group in every tier needs at least one satisfied member.
type RequirementSet struct {
	ID         RequirementID
	Qualities  [][]QualityRequirement
	Tools      [][]ToolComponent
	Components [][]ItemComponent
}

// NullRequirementSet returns the empty set handed out for unknown ids
func NullRequirementSet() *RequirementSet {
	return &RequirementSet{ID: NullRequirementID}
}

// IsEmpty reports whether the set requires nothing at all
func (r *RequirementSet) IsEmpty() bool {
	return len(r.Qualities) == 0 && len(r.Tools) == 0 && len(r.Components) == 0
}

// Clone returns a deep copy sharing no slices with the receiver
func (r *RequirementSet) Clone() *RequirementSet {
	return &RequirementSet{
		ID:         r.ID,
		Qualities:  cloneGroups(r.Qualities),
		Tools:      cloneGroups(r.Tools),
		Components: cloneGroups(r.Components),
	}
}

// Scale multiplies every tool and component count by multiplier.
// Negative (held) counts clamp to -1; quality counts are untouched.
func (r *RequirementSet) Scale(multiplier int) (*RequirementSet, error) {
	if multiplier < 1 {
		return nil, fmt.Errorf("multiplier must be positive, got %d", multiplier)
	}

	res := r.Clone()
	res.ID = NullRequirementID
	for _, group := range res.Components {
		for i := range group {
			group[i].Count = max(group[i].Count*multiplier, -1)
		}
	}
	for _, group := range res.Tools {
		for i := range group {
			group[i].Count = max(group[i].Count*multiplier, -1)
		}
	}
	return res, nil
}

// Combine appends the groups of other after the receiver's groups.
// Nothing is merged or deduplicated; the result is anonymous until registered.
func (r *RequirementSet) Combine(other *RequirementSet) *RequirementSet {
	res := r.Clone()
	res.ID = NullRequirementID
	if other == nil {
		return res
	}
	res.Qualities = append(res.Qualities, cloneGroups(other.Qualities)...)
	res.Tools = append(res.Tools, cloneGroups(other.Tools)...)
	res.Components = append(res.Components, cloneGroups(other.Components)...)
	return res
}

// RemoveItem drops every tool and component alternative of the item type,
// pruning groups that end up empty.
func (r *RequirementSet) RemoveItem(itemType ItemTypeID) {
	r.Tools = removeFromGroups(r.Tools, func(t ToolComponent) bool { return t.Type == itemType })
	r.Components = removeFromGroups(r.Components, func(c ItemComponent) bool { return c.Type == itemType })
}

// FindTool returns the first tool alternative of the item type and its position
func (r *RequirementSet) FindTool(itemType ItemTypeID) (ItemRef, *ToolComponent) {
	for g, group := range r.Tools {
		for i := range group {
			if group[i].Type == itemType {
				return ItemRef{Tier: TierTools, Group: g, Index: i}, &group[i]
			}
		}
	}
	return ItemRef{}, nil
}

// FindQuality returns the first quality requirement for the quality and its position
func (r *RequirementSet) FindQuality(quality QualityID) (ItemRef, *QualityRequirement) {
	for g, group := range r.Qualities {
		for i := range group {
			if group[i].Type == quality {
				return ItemRef{Tier: TierQualities, Group: g, Index: i}, &group[i]
			}
		}
	}
	return ItemRef{}, nil
}

// GroupCount returns the number of groups in a tier
func (r *RequirementSet) GroupCount(tier Tier) int {
	switch tier {
	case TierQualities:
		return len(r.Qualities)
	case TierTools:
		return len(r.Tools)
	case TierComponents:
		return len(r.Components)
	default:
		return 0
	}
}

func cloneGroups[T any](groups [][]T) [][]T {
	if groups == nil {
		return nil
	}
	out := make([][]T, len(groups))
	for i, group := range groups {
		out[i] = slices.Clone(group)
	}
	return out
}

func removeFromGroups[T any](groups [][]T, drop func(T) bool) [][]T {
	for i := range groups {
		groups[i] = slices.DeleteFunc(groups[i], drop)
	}
	return slices.DeleteFunc(groups, func(group []T) bool { return len(group) == 0 })
}
