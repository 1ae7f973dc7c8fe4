package entities

import "sort"

// Availability is the per-alternative outcome of a satisfiability check
type Availability int

const (
	AvailabilityUnknown Availability = iota
	AvailabilityTrue
	AvailabilityFalse
	// AvailabilityInsufficient means the item is visible but cannot cover
	// both its component role and a tool or quality role at once.
	AvailabilityInsufficient
)

// String method for Availability enum
func (a Availability) String() string {
	switch a {
	case AvailabilityUnknown:
		return "Unknown"
	case AvailabilityTrue:
		return "True"
	case AvailabilityFalse:
		return "False"
	case AvailabilityInsufficient:
		return "Insufficient"
	default:
		return "Unknown"
	}
}

// Tier selects one of the three group lists of a RequirementSet
type Tier int

const (
	TierQualities Tier = iota
	TierTools
	TierComponents
)

// String method for Tier enum
func (t Tier) String() string {
	switch t {
	case TierQualities:
		return "Qualities"
	case TierTools:
		return "Tools"
	case TierComponents:
		return "Components"
	default:
		return "Unknown"
	}
}

// ItemRef addresses one alternative inside a RequirementSet
type ItemRef struct {
	Tier  Tier
	Group int
	Index int
}

// CheckResult holds the annotations produced by checking a RequirementSet
// against an inventory. The set itself is never written to.
type CheckResult struct {
	Batch         int
	QualitiesMet  bool
	ToolsMet      bool
	ComponentsMet bool
	MaterialsMet  bool

	states map[ItemRef]Availability
}

// NewCheckResult creates an empty result for the given batch size
func NewCheckResult(batch int) *CheckResult {
	return &CheckResult{
		Batch:  batch,
		states: make(map[ItemRef]Availability),
	}
}

// Satisfied reports whether every tier and the materials check passed
func (r *CheckResult) Satisfied() bool {
	return r.QualitiesMet && r.ToolsMet && r.ComponentsMet && r.MaterialsMet
}

// State returns the availability recorded for ref, Unknown if never checked
func (r *CheckResult) State(ref ItemRef) Availability {
	if state, ok := r.states[ref]; ok {
		return state
	}
	return AvailabilityUnknown
}

// SetState records the availability of ref
func (r *CheckResult) SetState(ref ItemRef, state Availability) {
	r.states[ref] = state
}

// GroupHasAvailable reports whether any alternative of the group is marked available
func (r *CheckResult) GroupHasAvailable(tier Tier, group int) bool {
	for ref, state := range r.states {
		if ref.Tier == tier && ref.Group == group && state == AvailabilityTrue {
			return true
		}
	}
	return false
}

// Insufficient returns the refs demoted by the materials check, in set order
func (r *CheckResult) Insufficient() []ItemRef {
	var refs []ItemRef
	for ref, state := range r.states {
		if state == AvailabilityInsufficient {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Tier != refs[j].Tier {
			return refs[i].Tier < refs[j].Tier
		}
		if refs[i].Group != refs[j].Group {
			return refs[i].Group < refs[j].Group
		}
		return refs[i].Index < refs[j].Index
	})
	return refs
}

// Equal reports whether two results carry the same outcome and annotations
func (r *CheckResult) Equal(other *CheckResult) bool {
	if other == nil || r.Batch != other.Batch || r.QualitiesMet != other.QualitiesMet ||
		r.ToolsMet != other.ToolsMet || r.ComponentsMet != other.ComponentsMet ||
		r.MaterialsMet != other.MaterialsMet || len(r.states) != len(other.states) {
		return false
	}
	for ref, state := range r.states {
		if other.states[ref] != state {
			return false
		}
	}
	return true
}

// ColorTag names how an alternative should be painted
type ColorTag int

const (
	ColorPlain ColorTag = iota
	ColorGood
	ColorNeutral
	ColorBad
	ColorWarning
	ColorAssisted
)

// String returns the legacy color name for the tag
func (c ColorTag) String() string {
	switch c {
	case ColorGood:
		return "green"
	case ColorNeutral:
		return "dkgray"
	case ColorBad:
		return "red"
	case ColorWarning:
		return "brown"
	case ColorAssisted:
		return "ltgreen"
	default:
		return "white"
	}
}
