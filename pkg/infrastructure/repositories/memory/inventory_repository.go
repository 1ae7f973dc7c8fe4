package memory

import (
	"fmt"
	"sort"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// InventoryRepository provides in-memory inventory stack storage
type InventoryRepository struct {
	stacks []entities.InventoryStack
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		stacks: []entities.InventoryStack{},
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadStacks loads inventory stacks into the repository
func (r *InventoryRepository) LoadStacks(stacks []*entities.InventoryStack) error {
	for _, stack := range stacks {
		if stack == nil {
			return fmt.Errorf("cannot load nil inventory stack")
		}
		r.AddStack(*stack)
	}
	return nil
}

// AddStack adds a stack to the repository
func (r *InventoryRepository) AddStack(stack entities.InventoryStack) {
	r.stacks = append(r.stacks, stack)
}

// GetStacks returns the stacks held at a location, ordered by item type
func (r *InventoryRepository) GetStacks(location string) ([]*entities.InventoryStack, error) {
	var stacks []*entities.InventoryStack
	for i := range r.stacks {
		if r.stacks[i].Location == location {
			stacks = append(stacks, &r.stacks[i])
		}
	}
	sortStacks(stacks)
	return stacks, nil
}

// GetAllStacks returns every stack regardless of location
func (r *InventoryRepository) GetAllStacks() ([]*entities.InventoryStack, error) {
	stacks := make([]*entities.InventoryStack, 0, len(r.stacks))
	for i := range r.stacks {
		stacks = append(stacks, &r.stacks[i])
	}
	sortStacks(stacks)
	return stacks, nil
}

// Locations returns the distinct locations holding stacks
func (r *InventoryRepository) Locations() []string {
	seen := make(map[string]bool)
	var locations []string
	for _, stack := range r.stacks {
		if !seen[stack.Location] {
			seen[stack.Location] = true
			locations = append(locations, stack.Location)
		}
	}
	sort.Strings(locations)
	return locations
}

func sortStacks(stacks []*entities.InventoryStack) {
	sort.SliceStable(stacks, func(i, j int) bool {
		if stacks[i].Location != stacks[j].Location {
			return stacks[i].Location < stacks[j].Location
		}
		return stacks[i].ItemType < stacks[j].ItemType
	})
}
