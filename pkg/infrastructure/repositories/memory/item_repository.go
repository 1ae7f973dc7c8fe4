package memory

import (
	"fmt"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// ItemTypeRepository provides in-memory item type storage
type ItemTypeRepository struct {
	types    []entities.ItemType
	typesMap map[entities.ItemTypeID]int
}

// NewItemTypeRepository creates a new in-memory item type repository
func NewItemTypeRepository(expectedTypes int) *ItemTypeRepository {
	return &ItemTypeRepository{
		types:    make([]entities.ItemType, 0, expectedTypes),
		typesMap: make(map[entities.ItemTypeID]int, expectedTypes),
	}
}

// Verify interface compliance
var _ repositories.ItemTypeRepository = (*ItemTypeRepository)(nil)

// LoadItemTypes loads item types into the repository
func (r *ItemTypeRepository) LoadItemTypes(types []*entities.ItemType) error {
	for _, t := range types {
		if t == nil {
			return fmt.Errorf("cannot load nil item type")
		}
		r.AddItemType(*t)
	}
	return nil
}

// AddItemType adds an item type, replacing an earlier definition with the same id
func (r *ItemTypeRepository) AddItemType(t entities.ItemType) {
	if index, exists := r.typesMap[t.ID]; exists {
		r.types[index] = t
		return
	}
	r.typesMap[t.ID] = len(r.types)
	r.types = append(r.types, t)
}

func (r *ItemTypeRepository) TypeIsDefined(id entities.ItemTypeID) bool {
	_, exists := r.typesMap[id]
	return exists
}

// GetItemType returns the definition of an item type
func (r *ItemTypeRepository) GetItemType(id entities.ItemTypeID) (*entities.ItemType, error) {
	index, exists := r.typesMap[id]
	if !exists {
		return nil, fmt.Errorf("item type not found: %s", id)
	}
	return &r.types[index], nil
}

// GetAllItemTypes returns all item types in load order
func (r *ItemTypeRepository) GetAllItemTypes() ([]*entities.ItemType, error) {
	types := make([]*entities.ItemType, 0, len(r.types))
	for i := range r.types {
		types = append(types, &r.types[i])
	}
	return types, nil
}
