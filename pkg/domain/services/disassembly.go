package services

import (
	"slices"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// toolSubstitution replaces a whole tool group containing any of tools.
// A nil quality clears the group without adding anything.
type toolSubstitution struct {
	tools   []entities.ItemTypeID
	quality *entities.QualityRequirement
}

// defaultDisassemblySubstitutions maps crafting tools to what undoing the craft needs
var defaultDisassemblySubstitutions = []toolSubstitution{
	{
		// Welded or forged joints have to be sawn apart
		tools:   []entities.ItemTypeID{"welder", "welder_crude", "oxy_torch", "forge", "char_forge"},
		quality: &entities.QualityRequirement{Type: "SAW_M_FINE", Level: 1, Count: 1},
	},
	{
		tools:   []entities.ItemTypeID{"sewing_kit", "mold_plastic"},
		quality: &entities.QualityRequirement{Type: "CUT", Level: 1, Count: 1},
	},
	{
		tools: []entities.ItemTypeID{"crucible"},
	},
}

// DisassemblyDeriver builds the requirement set needed to take a product apart
type DisassemblyDeriver struct {
	items         repositories.ItemTypeRepository
	substitutions []toolSubstitution
}

// NewDisassemblyDeriver creates a deriver using the default substitution table
func NewDisassemblyDeriver(items repositories.ItemTypeRepository) *DisassemblyDeriver {
	return &DisassemblyDeriver{
		items:         items,
		substitutions: defaultDisassemblySubstitutions,
	}
}

// Derive returns a new set derived from base; base is left untouched.
//
// Quality groups are assumed to be single mandatory entries: replacement
// qualities all go into the first quality group. Definitions with real quality
// alternatives would make that insertion point meaningless.
func (d *DisassemblyDeriver) Derive(base *entities.RequirementSet) *entities.RequirementSet {
	ret := base.Clone()

	var newQualities []entities.QualityRequirement
	for g, group := range ret.Tools {
		replaced := false
		for _, tool := range group {
			if sub, ok := d.substitutionFor(tool.Type); ok {
				if sub.quality != nil {
					newQualities = append(newQualities, *sub.quality)
				}
				replaced = true
				break
			}
		}
		if replaced {
			// The whole block of variants goes, integrated toolsets included
			ret.Tools[g] = nil
		}
	}

	if len(newQualities) > 0 {
		if len(ret.Qualities) == 0 {
			ret.Qualities = append(ret.Qualities, nil)
		}
		ret.Qualities[0] = dedupeQualities(append(ret.Qualities[0], newQualities...))
	}

	ret.Tools = slices.DeleteFunc(ret.Tools, func(group []entities.ToolComponent) bool {
		return len(group) == 0
	})

	for g := range ret.Components {
		ret.Components[g] = slices.DeleteFunc(ret.Components[g], d.unrecoverable)
	}
	ret.Components = slices.DeleteFunc(ret.Components, func(group []entities.ItemComponent) bool {
		return len(group) == 0
	})

	return ret
}

func (d *DisassemblyDeriver) substitutionFor(itemType entities.ItemTypeID) (toolSubstitution, bool) {
	for _, sub := range d.substitutions {
		if slices.Contains(sub.tools, itemType) {
			return sub, true
		}
	}
	return toolSubstitution{}, false
}

func (d *DisassemblyDeriver) unrecoverable(comp entities.ItemComponent) bool {
	if !comp.Recoverable {
		return true
	}
	if d.items == nil {
		return false
	}
	t, err := d.items.GetItemType(comp.Type)
	if err != nil {
		return false
	}
	return t.HasFlag(entities.FlagUnrecoverable)
}

// dedupeQualities keeps the first requirement for each quality id
func dedupeQualities(qualities []entities.QualityRequirement) []entities.QualityRequirement {
	seen := make(map[entities.QualityID]bool, len(qualities))
	out := qualities[:0]
	for _, q := range qualities {
		if seen[q.Type] {
			continue
		}
		seen[q.Type] = true
		out = append(out, q)
	}
	return out
}
