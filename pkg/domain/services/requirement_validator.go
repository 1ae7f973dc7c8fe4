package services

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// RequirementValidator checks that registered requirement sets only reference
// known qualities and item types.
type RequirementValidator struct {
	items     repositories.ItemTypeRepository
	qualities repositories.QualityRepository
	logger    *slog.Logger
}

// NewRequirementValidator creates a new requirement validator
func NewRequirementValidator(
	items repositories.ItemTypeRepository,
	qualities repositories.QualityRepository,
	logger *slog.Logger,
) *RequirementValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequirementValidator{
		items:     items,
		qualities: qualities,
		logger:    logger,
	}
}

// Reference points at one dangling or malformed entry of a requirement set
type Reference struct {
	Requirement entities.RequirementID
	Tier        entities.Tier
	Group       int
	ID          string
}

// ValidationResult contains the results of requirement validation
type ValidationResult struct {
	UnknownQualities []Reference
	UnknownItemTypes []Reference
	EmptyGroups      []Reference
	Errors           []string
}

// HasErrors reports whether anything was found
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

func newValidationResult() *ValidationResult {
	return &ValidationResult{
		UnknownQualities: make([]Reference, 0),
		UnknownItemTypes: make([]Reference, 0),
		EmptyGroups:      make([]Reference, 0),
		Errors:           make([]string, 0),
	}
}

// ValidateCatalog checks every registered set. Findings are logged and
// returned; nothing is removed and the sets stay usable.
func (v *RequirementValidator) ValidateCatalog(catalog repositories.RequirementRepository) *ValidationResult {
	result := newValidationResult()

	all := catalog.All()
	ids := make([]entities.RequirementID, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		v.validateInto(all[id], string(id), result)
	}
	return result
}

// ValidateRequirement checks a single set
func (v *RequirementValidator) ValidateRequirement(set *entities.RequirementSet) *ValidationResult {
	result := newValidationResult()
	v.validateInto(set, string(set.ID), result)
	return result
}

func (v *RequirementValidator) validateInto(set *entities.RequirementSet, displayName string, result *ValidationResult) {
	for g, group := range set.Tools {
		if len(group) == 0 {
			v.emptyGroup(set.ID, entities.TierTools, g, displayName, result)
		}
		for _, tool := range group {
			v.checkItemType(set.ID, entities.TierTools, g, tool.Type, displayName, result)
		}
	}
	for g, group := range set.Components {
		if len(group) == 0 {
			v.emptyGroup(set.ID, entities.TierComponents, g, displayName, result)
		}
		for _, comp := range group {
			v.checkItemType(set.ID, entities.TierComponents, g, comp.Type, displayName, result)
		}
	}
	for g, group := range set.Qualities {
		if len(group) == 0 {
			v.emptyGroup(set.ID, entities.TierQualities, g, displayName, result)
		}
		for _, q := range group {
			if v.qualities != nil && v.qualities.IsValid(q.Type) {
				continue
			}
			ref := Reference{Requirement: set.ID, Tier: entities.TierQualities, Group: g, ID: string(q.Type)}
			result.UnknownQualities = append(result.UnknownQualities, ref)
			msg := fmt.Sprintf("Unknown quality %s in %s", q.Type, displayName)
			result.Errors = append(result.Errors, msg)
			v.logger.Warn(msg, "requirement", displayName, "quality", q.Type)
		}
	}
}

func (v *RequirementValidator) checkItemType(
	id entities.RequirementID,
	tier entities.Tier,
	group int,
	itemType entities.ItemTypeID,
	displayName string,
	result *ValidationResult,
) {
	if v.items != nil && v.items.TypeIsDefined(itemType) {
		return
	}
	result.UnknownItemTypes = append(result.UnknownItemTypes,
		Reference{Requirement: id, Tier: tier, Group: group, ID: string(itemType)})
	msg := fmt.Sprintf("%s in %s is not a valid item template", itemType, displayName)
	result.Errors = append(result.Errors, msg)
	v.logger.Warn(msg, "requirement", displayName, "item_type", itemType, "tier", tier.String())
}

func (v *RequirementValidator) emptyGroup(
	id entities.RequirementID,
	tier entities.Tier,
	group int,
	displayName string,
	result *ValidationResult,
) {
	result.EmptyGroups = append(result.EmptyGroups, Reference{Requirement: id, Tier: tier, Group: group})
	msg := fmt.Sprintf("Empty %s group %d in %s", tier, group, displayName)
	result.Errors = append(result.Errors, msg)
	v.logger.Warn(msg, "requirement", displayName)
}
