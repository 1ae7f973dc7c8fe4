package events

import (
	"github.com/vsinha/craftreq/pkg/domain/entities"
)

const (
	RequirementAddedEvent   = "requirement.added"
	RequirementUpdatedEvent = "requirement.updated"
	CatalogResetEvent       = "catalog.reset"

	// CatalogStream is the stream every catalog change is appended to
	CatalogStream = "catalog"
)

type RequirementAdded struct {
	RequirementID entities.RequirementID `json:"requirement_id"`
	Groups        int                    `json:"groups"`
}

type RequirementUpdated struct {
	RequirementID entities.RequirementID `json:"requirement_id"`
	OldGroups     int                    `json:"old_groups"`
	NewGroups     int                    `json:"new_groups"`
}

type CatalogReset struct {
	Removed int `json:"removed"`
}

// GroupCount totals the alternative groups of a set across all tiers
func GroupCount(set *entities.RequirementSet) int {
	return len(set.Qualities) + len(set.Tools) + len(set.Components)
}
