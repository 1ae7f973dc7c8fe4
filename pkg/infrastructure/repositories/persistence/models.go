package persistence

import "time"

// InventoryStackModel represents the inventory_stacks table
type InventoryStackModel struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ItemType  string    `gorm:"column:item_type;not null;index"`
	Location  string    `gorm:"column:location;not null;index"`
	Quantity  int       `gorm:"column:quantity;not null"`
	Charges   int       `gorm:"column:charges;not null"`
	Pseudo    bool      `gorm:"column:pseudo;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (InventoryStackModel) TableName() string {
	return "inventory_stacks"
}
