package memory

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
	"github.com/vsinha/craftreq/pkg/infrastructure/events"
)

// RequirementRepository is the in-memory requirement catalog.
// It is not safe for concurrent registration; load everything before checking.
type RequirementRepository struct {
	sets   map[entities.RequirementID]*entities.RequirementSet
	logger *slog.Logger
	events events.EventStore
}

// NewRequirementRepository creates an empty catalog
func NewRequirementRepository(logger *slog.Logger) *RequirementRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequirementRepository{
		sets:   make(map[entities.RequirementID]*entities.RequirementSet),
		logger: logger,
	}
}

// WithEventStore makes the catalog append a change event for every mutation
func (r *RequirementRepository) WithEventStore(store events.EventStore) *RequirementRepository {
	r.events = store
	return r
}

var _ repositories.RequirementRepository = (*RequirementRepository)(nil)

// Register stores a copy of set under set.ID, replacing any previous entry
func (r *RequirementRepository) Register(set *entities.RequirementSet) error {
	if set == nil {
		return fmt.Errorf("cannot register nil requirement set")
	}
	if set.ID.IsNull() {
		return fmt.Errorf("cannot register requirement set without an id")
	}

	stored := set.Clone()
	previous, replaced := r.sets[stored.ID]
	r.sets[stored.ID] = stored

	if replaced {
		r.logger.Debug("Updated requirement", "id", stored.ID,
			"old_groups", events.GroupCount(previous), "new_groups", events.GroupCount(stored))
		r.publish(events.RequirementUpdatedEvent, events.RequirementUpdated{
			RequirementID: stored.ID,
			OldGroups:     events.GroupCount(previous),
			NewGroups:     events.GroupCount(stored),
		})
		return nil
	}

	r.logger.Debug("Added requirement", "id", stored.ID, "groups", events.GroupCount(stored))
	r.publish(events.RequirementAddedEvent, events.RequirementAdded{
		RequirementID: stored.ID,
		Groups:        events.GroupCount(stored),
	})
	return nil
}

// RegisterAs stores a copy of set under id, for derived sets that carry the null id
func (r *RequirementRepository) RegisterAs(id entities.RequirementID, set *entities.RequirementSet) error {
	if set == nil {
		return fmt.Errorf("cannot register nil requirement set")
	}
	named := set.Clone()
	named.ID = id
	return r.Register(named)
}

// LoadRequirements registers every set in order, stopping at the first failure
func (r *RequirementRepository) LoadRequirements(sets []*entities.RequirementSet) error {
	for _, set := range sets {
		if err := r.Register(set); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns a copy of the registered set. Unknown ids yield the null set.
func (r *RequirementRepository) Lookup(id entities.RequirementID) *entities.RequirementSet {
	set, exists := r.sets[id]
	if !exists {
		if !id.IsNull() {
			r.logger.Warn("Requirement not found", "id", id)
		}
		return entities.NullRequirementSet()
	}
	return set.Clone()
}

func (r *RequirementRepository) Has(id entities.RequirementID) bool {
	_, exists := r.sets[id]
	return exists
}

// All returns copies of every registered set keyed by id
func (r *RequirementRepository) All() map[entities.RequirementID]*entities.RequirementSet {
	all := make(map[entities.RequirementID]*entities.RequirementSet, len(r.sets))
	for id, set := range r.sets {
		all[id] = set.Clone()
	}
	return all
}

// IDs returns the registered ids in sorted order
func (r *RequirementRepository) IDs() []entities.RequirementID {
	ids := make([]entities.RequirementID, 0, len(r.sets))
	for id := range r.sets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Reset empties the catalog
func (r *RequirementRepository) Reset() {
	removed := len(r.sets)
	r.sets = make(map[entities.RequirementID]*entities.RequirementSet)
	r.logger.Debug("Reset requirement catalog", "removed", removed)
	r.publish(events.CatalogResetEvent, events.CatalogReset{Removed: removed})
}

func (r *RequirementRepository) publish(eventType string, payload any) {
	if r.events == nil {
		return
	}
	if err := r.events.AppendEvent(events.CatalogStream, events.NewEvent(eventType, events.CatalogStream, payload)); err != nil {
		r.logger.Error("Failed to append catalog event", "type", eventType, "error", err)
	}
}
