package services

import (
	"strings"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

const (
	MissingToolsHeader      = "These tools are missing:"
	MissingComponentsHeader = "Those components are missing:"
)

// ListMissing describes every group of set with no available alternative in result.
// Tools come first, then qualities (under the same header), then components.
func ListMissing(set *entities.RequirementSet, result *entities.CheckResult, d *Describer) string {
	var sb strings.Builder
	sb.WriteString(missingGroups(MissingToolsHeader, entities.TierTools, set.Tools, result,
		func(t entities.ToolComponent) string { return d.DescribeTool(t, result.Batch) }))
	sb.WriteString(missingGroups(MissingToolsHeader, entities.TierQualities, set.Qualities, result,
		func(q entities.QualityRequirement) string { return d.DescribeQuality(q) }))
	sb.WriteString(missingGroups(MissingComponentsHeader, entities.TierComponents, set.Components, result,
		func(c entities.ItemComponent) string { return d.DescribeComponent(c, result.Batch) }))
	return sb.String()
}

func missingGroups[T entities.Requirement](
	header string,
	tier entities.Tier,
	groups [][]T,
	result *entities.CheckResult,
	describe func(T) string,
) string {
	var buffer strings.Builder
	for g, group := range groups {
		if result.GroupHasAvailable(tier, g) {
			continue
		}
		if buffer.Len() > 0 {
			buffer.WriteString("\nand ")
		}
		for i, alt := range group {
			if i > 0 {
				buffer.WriteString(" or ")
			}
			buffer.WriteString(describe(alt))
		}
	}
	if buffer.Len() == 0 {
		return ""
	}
	return header + "\n" + buffer.String() + "\n"
}
