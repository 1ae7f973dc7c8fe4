package services

import (
	"fmt"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// Describer turns requirement alternatives into display text.
// Unknown ids are printed verbatim.
type Describer struct {
	items     repositories.ItemTypeRepository
	qualities repositories.QualityRepository
}

// NewDescriber creates a describer backed by the given registries
func NewDescriber(items repositories.ItemTypeRepository, qualities repositories.QualityRepository) *Describer {
	return &Describer{
		items:     items,
		qualities: qualities,
	}
}

// Describe returns the display text of req for a batch of the given size
func (d *Describer) Describe(req entities.Requirement, batch int) string {
	switch r := req.(type) {
	case entities.QualityRequirement:
		return d.DescribeQuality(r)
	case entities.ToolComponent:
		return d.DescribeTool(r, batch)
	case entities.ItemComponent:
		return d.DescribeComponent(r, batch)
	default:
		return ""
	}
}

// DescribeQuality renders e.g. "1 tool with hammering of 2 or more."
func (d *Describer) DescribeQuality(q entities.QualityRequirement) string {
	noun := "tools"
	if q.Count == 1 {
		noun = "tool"
	}
	return fmt.Sprintf("%d %s with %s of %d or more.", q.Count, noun, d.qualityName(q.Type), q.Level)
}

// DescribeTool renders "welder (20 charges)" or the held tool's name
func (d *Describer) DescribeTool(t entities.ToolComponent, batch int) string {
	if t.ByCharges() {
		charges := t.Count * batch
		unit := "charges"
		if charges == 1 {
			unit = "charge"
		}
		return fmt.Sprintf("%s (%d %s)", d.itemName(t.Type, 1), charges, unit)
	}
	return d.itemName(t.Type, t.Magnitude())
}

// DescribeComponent renders e.g. "10 nails"
func (d *Describer) DescribeComponent(comp entities.ItemComponent, batch int) string {
	count := comp.Magnitude() * batch
	return fmt.Sprintf("%d %s", count, d.itemName(comp.Type, count))
}

func (d *Describer) itemName(id entities.ItemTypeID, count int) string {
	if d.items != nil {
		if t, err := d.items.GetItemType(id); err == nil {
			return t.NameFor(count)
		}
	}
	return string(id)
}

func (d *Describer) qualityName(id entities.QualityID) string {
	if d.qualities != nil {
		if q, err := d.qualities.GetQuality(id); err == nil {
			return q.Name
		}
	}
	return string(id)
}
