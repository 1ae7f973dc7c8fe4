package memory

import (
	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

// Inventory answers availability queries over a fixed set of stacks
type Inventory struct {
	stacks map[entities.ItemTypeID][]entities.InventoryStack
	items  repositories.ItemTypeRepository
}

var _ repositories.Inventory = (*Inventory)(nil)

// NewInventory indexes stacks by item type. items may be nil, in which case
// no quality is ever provided and nothing counts by charges.
func NewInventory(stacks []*entities.InventoryStack, items repositories.ItemTypeRepository) *Inventory {
	inv := &Inventory{
		stacks: make(map[entities.ItemTypeID][]entities.InventoryStack),
		items:  items,
	}
	for _, stack := range stacks {
		if stack == nil {
			continue
		}
		inv.stacks[stack.ItemType] = append(inv.stacks[stack.ItemType], *stack)
	}
	return inv
}

// HasTools counts every stack of the type, integrated tools included.
// A count-by-charges stack is a single item.
func (inv *Inventory) HasTools(itemType entities.ItemTypeID, count int) bool {
	if count <= 0 {
		return true
	}
	byCharges := inv.countsByCharges(itemType)
	total := 0
	for _, stack := range inv.stacks[itemType] {
		total += units(stack, byCharges)
	}
	return total >= count
}

func (inv *Inventory) HasCharges(itemType entities.ItemTypeID, charges int) bool {
	if charges <= 0 {
		return true
	}
	byCharges := inv.countsByCharges(itemType)
	total := 0
	for _, stack := range inv.stacks[itemType] {
		if byCharges {
			total += stack.Quantity
		} else {
			total += stack.Charges
		}
	}
	return total >= charges
}

// HasComponents only counts real stacks
func (inv *Inventory) HasComponents(itemType entities.ItemTypeID, count int) bool {
	if count <= 0 {
		return true
	}
	total := 0
	for _, stack := range inv.stacks[itemType] {
		if !stack.Pseudo {
			total += stack.Quantity
		}
	}
	return total >= count
}

func (inv *Inventory) HasQuality(quality entities.QualityID, level, count int) bool {
	if count <= 0 {
		return true
	}
	if inv.items == nil {
		return false
	}
	total := 0
	for itemType, stacks := range inv.stacks {
		t, err := inv.items.GetItemType(itemType)
		if err != nil {
			continue
		}
		provided, ok := t.QualityLevel(quality)
		if !ok || provided < level {
			continue
		}
		for _, stack := range stacks {
			total += units(stack, t.CountByCharges)
		}
		if total >= count {
			return true
		}
	}
	return false
}

func (inv *Inventory) countsByCharges(itemType entities.ItemTypeID) bool {
	if inv.items == nil {
		return false
	}
	t, err := inv.items.GetItemType(itemType)
	if err != nil {
		return false
	}
	return t.CountByCharges
}

func units(stack entities.InventoryStack, byCharges bool) int {
	if byCharges {
		if stack.Quantity > 0 {
			return 1
		}
		return 0
	}
	return stack.Quantity
}
