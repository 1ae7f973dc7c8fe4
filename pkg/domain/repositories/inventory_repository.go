package repositories

import "github.com/vsinha/craftreq/pkg/domain/entities"

// Inventory is the read-only query contract the requirement engine checks against
type Inventory interface {
	// HasQuality reports whether count items provide quality at level or better
	HasQuality(quality entities.QualityID, level, count int) bool
	// HasTools reports whether count tools of the type are held, integrated tools included
	HasTools(itemType entities.ItemTypeID, count int) bool
	// HasCharges reports whether charges of the type add up to at least charges
	HasCharges(itemType entities.ItemTypeID, charges int) bool
	// HasComponents reports whether count real items of the type are available
	HasComponents(itemType entities.ItemTypeID, count int) bool
}

// InventoryRepository provides access to stored inventory stacks
type InventoryRepository interface {
	GetStacks(location string) ([]*entities.InventoryStack, error)
	GetAllStacks() ([]*entities.InventoryStack, error)
	LoadStacks(stacks []*entities.InventoryStack) error
}
