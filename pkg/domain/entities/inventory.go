package entities

import (
	"fmt"
)

// InventoryStack represents a quantity of one item type held at a location
type InventoryStack struct {
	ItemType ItemTypeID
	Location string
	Quantity int
	Charges  int
	// Pseudo stacks come from integrated tools (a welding rig acting as a welder).
	// They serve as tools and quality providers but never as components.
	Pseudo bool
}

// NewInventoryStack creates a validated InventoryStack
func NewInventoryStack(itemType ItemTypeID, location string, quantity, charges int, pseudo bool) (*InventoryStack, error) {
	if string(itemType) == "" {
		return nil, fmt.Errorf("item type cannot be empty")
	}
	if location == "" {
		return nil, fmt.Errorf("location cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}
	if charges < 0 {
		return nil, fmt.Errorf("charges cannot be negative, got %d", charges)
	}

	return &InventoryStack{
		ItemType: itemType,
		Location: location,
		Quantity: quantity,
		Charges:  charges,
		Pseudo:   pseudo,
	}, nil
}
