package services

import (
	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// RequirementChecker decides whether a RequirementSet can be met from an inventory
type RequirementChecker struct {
	items      repositories.ItemTypeRepository
	substitute SubstituteRule
}

// NewRequirementChecker creates a checker; a nil rule means no substitutes
func NewRequirementChecker(items repositories.ItemTypeRepository, substitute SubstituteRule) *RequirementChecker {
	if substitute == nil {
		substitute = NoSubstitutes{}
	}
	return &RequirementChecker{
		items:      items,
		substitute: substitute,
	}
}

// CanSatisfy checks every tier of set against inv for a batch of the given size.
// All four passes always run: later passes read the annotations of earlier ones,
// and renderers need every alternative annotated.
func (c *RequirementChecker) CanSatisfy(
	set *entities.RequirementSet,
	inv repositories.Inventory,
	batch int,
) *entities.CheckResult {
	if batch < 1 {
		batch = 1
	}
	result := entities.NewCheckResult(batch)

	result.QualitiesMet = checkGroups(result, entities.TierQualities, set.Qualities,
		func(q entities.QualityRequirement) bool { return c.IsSatisfied(inv, q, batch) })
	result.ToolsMet = checkGroups(result, entities.TierTools, set.Tools,
		func(t entities.ToolComponent) bool { return c.IsSatisfied(inv, t, batch) })
	result.ComponentsMet = checkGroups(result, entities.TierComponents, set.Components,
		func(comp entities.ItemComponent) bool { return c.IsSatisfied(inv, comp, batch) })
	result.MaterialsMet = c.checkEnoughMaterials(set, inv, result)

	return result
}

// IsSatisfied reports whether a single alternative is available in inv
func (c *RequirementChecker) IsSatisfied(inv repositories.Inventory, req entities.Requirement, batch int) bool {
	switch r := req.(type) {
	case entities.QualityRequirement:
		return inv.HasQuality(r.Type, r.Level, r.Count)
	case entities.ToolComponent:
		return c.hasTool(inv, r, batch)
	case entities.ItemComponent:
		if c.substitute.Satisfies(r.Type, batch) {
			return true
		}
		return c.hasComponent(inv, r, batch)
	default:
		return false
	}
}

func (c *RequirementChecker) hasTool(inv repositories.Inventory, tool entities.ToolComponent, batch int) bool {
	if !tool.ByCharges() {
		return inv.HasTools(tool.Type, tool.Magnitude())
	}
	return inv.HasCharges(tool.Type, tool.Count*batch)
}

// hasComponent asks the inventory only; substitutes are handled by the caller
func (c *RequirementChecker) hasComponent(inv repositories.Inventory, comp entities.ItemComponent, batch int) bool {
	count := comp.Magnitude() * batch
	if c.countByCharges(comp.Type) {
		return inv.HasCharges(comp.Type, count)
	}
	return inv.HasComponents(comp.Type, count)
}

func (c *RequirementChecker) countByCharges(itemType entities.ItemTypeID) bool {
	if c.items == nil {
		return false
	}
	t, err := c.items.GetItemType(itemType)
	if err != nil {
		return false
	}
	return t.CountByCharges
}

// checkGroups annotates every alternative of every group and reports whether
// each group has at least one available alternative.
func checkGroups[T entities.Requirement](
	result *entities.CheckResult,
	tier entities.Tier,
	groups [][]T,
	has func(T) bool,
) bool {
	met := true
	for g, group := range groups {
		found := false
		for i, alt := range group {
			state := entities.AvailabilityFalse
			if has(alt) {
				state = entities.AvailabilityTrue
				found = true
			}
			result.SetState(entities.ItemRef{Tier: tier, Group: g, Index: i}, state)
		}
		if !found {
			met = false
		}
	}
	return met
}

// checkEnoughMaterials demotes components whose item type is also claimed as a
// tool or as a quality provider when the inventory cannot cover both roles.
func (c *RequirementChecker) checkEnoughMaterials(
	set *entities.RequirementSet,
	inv repositories.Inventory,
	result *entities.CheckResult,
) bool {
	met := true
	for g, group := range set.Components {
		enough := false
		for i, comp := range group {
			ref := entities.ItemRef{Tier: entities.TierComponents, Group: g, Index: i}
			if c.checkComponentMaterials(set, inv, result, ref, comp) {
				enough = true
			}
		}
		if !enough {
			met = false
		}
	}
	return met
}

func (c *RequirementChecker) checkComponentMaterials(
	set *entities.RequirementSet,
	inv repositories.Inventory,
	result *entities.CheckResult,
	ref entities.ItemRef,
	comp entities.ItemComponent,
) bool {
	if result.State(ref) != entities.AvailabilityTrue {
		return false
	}

	count := comp.Magnitude() * result.Batch
	if toolRef, tool := set.FindTool(comp.Type); tool != nil && result.State(toolRef) == entities.AvailabilityTrue {
		// A charge-consumed tool still occupies one item.
		toolCount := tool.Magnitude()
		if tool.ByCharges() {
			toolCount = 1
		}
		total := count + toolCount
		// Real items cover the component check, integrated tools only the
		// tool check, so either probe passing is enough. Batch is already in total.
		asComponent := entities.ItemComponent{Type: comp.Type, Count: total, Recoverable: true}
		asTool := entities.ToolComponent{Type: comp.Type, Count: -total}
		if !c.IsSatisfied(inv, asComponent, 1) && !c.IsSatisfied(inv, asTool, 1) {
			result.SetState(ref, entities.AvailabilityInsufficient)
		}
	}

	if c.items != nil {
		if itemType, err := c.items.GetItemType(comp.Type); err == nil {
			for quality, level := range itemType.Qualities {
				_, qr := set.FindQuality(quality)
				if qr == nil || qr.Level > level {
					continue
				}
				if !inv.HasQuality(qr.Type, qr.Level, qr.Count+comp.Magnitude()) {
					result.SetState(ref, entities.AvailabilityInsufficient)
				}
			}
		}
	}

	return result.State(ref) == entities.AvailabilityTrue
}

// Color picks the paint for one alternative of a checked set
func (c *RequirementChecker) Color(
	set *entities.RequirementSet,
	result *entities.CheckResult,
	ref entities.ItemRef,
	inv repositories.Inventory,
) entities.ColorTag {
	hasOne := result.GroupHasAvailable(ref.Tier, ref.Group)
	state := result.State(ref)
	fallback := entities.ColorBad
	if hasOne {
		fallback = entities.ColorNeutral
	}

	switch ref.Tier {
	case entities.TierQualities:
		if state == entities.AvailabilityTrue {
			return entities.ColorGood
		}
		return entities.ColorBad
	case entities.TierTools:
		tool, ok := itemAt(set.Tools, ref)
		if !ok {
			return entities.ColorPlain
		}
		if state == entities.AvailabilityInsufficient {
			return entities.ColorWarning
		}
		if c.hasTool(inv, tool, result.Batch) {
			return entities.ColorGood
		}
		return fallback
	case entities.TierComponents:
		comp, ok := itemAt(set.Components, ref)
		if !ok {
			return entities.ColorPlain
		}
		if c.substitute.Satisfies(comp.Type, result.Batch) {
			return entities.ColorAssisted
		}
		if state == entities.AvailabilityInsufficient {
			return entities.ColorWarning
		}
		if c.hasComponent(inv, comp, result.Batch) {
			return entities.ColorGood
		}
		return fallback
	default:
		return entities.ColorPlain
	}
}

func itemAt[T any](groups [][]T, ref entities.ItemRef) (T, bool) {
	var zero T
	if ref.Group < 0 || ref.Group >= len(groups) {
		return zero, false
	}
	group := groups[ref.Group]
	if ref.Index < 0 || ref.Index >= len(group) {
		return zero, false
	}
	return group[ref.Index], true
}
