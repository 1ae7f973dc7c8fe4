package repositories

import "github.com/vsinha/craftreq/pkg/domain/entities"

// RequirementRepository is the catalog of registered requirement sets.
// Registration happens during loading, strictly before lookups.
type RequirementRepository interface {
	// Register stores a copy of set under its id, replacing any previous entry
	Register(set *entities.RequirementSet) error
	// Lookup returns a copy of the stored set, or the null set when id is unknown
	Lookup(id entities.RequirementID) *entities.RequirementSet
	Has(id entities.RequirementID) bool
	All() map[entities.RequirementID]*entities.RequirementSet
	Reset()
}
