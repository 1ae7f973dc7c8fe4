package persistence

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
)

// GormInventoryRepository persists inventory stacks using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// SaveStacks replaces the stored stacks of every location present in stacks.
// Nil entries are skipped.
func (r *GormInventoryRepository) SaveStacks(ctx context.Context, stacks []*entities.InventoryStack) error {
	byLocation := make(map[string][]InventoryStackModel)
	for _, stack := range stacks {
		if stack == nil {
			continue
		}
		byLocation[stack.Location] = append(byLocation[stack.Location], stackToModel(stack))
	}

	locations := make([]string, 0, len(byLocation))
	for location := range byLocation {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, location := range locations {
			if err := replaceLocation(tx, location, byLocation[location]); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceLocation makes stacks the only stacks held at location
func (r *GormInventoryRepository) ReplaceLocation(ctx context.Context, location string, stacks []*entities.InventoryStack) error {
	models := make([]InventoryStackModel, 0, len(stacks))
	for _, stack := range stacks {
		if stack == nil {
			continue
		}
		if stack.Location != location {
			return fmt.Errorf("stack of %s is at %s, not %s", stack.ItemType, stack.Location, location)
		}
		models = append(models, stackToModel(stack))
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceLocation(tx, location, models)
	})
}

func replaceLocation(tx *gorm.DB, location string, models []InventoryStackModel) error {
	if err := tx.Where("location = ?", location).Delete(&InventoryStackModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear inventory at %s: %w", location, err)
	}
	if len(models) == 0 {
		return nil
	}
	if err := tx.Create(&models).Error; err != nil {
		return fmt.Errorf("failed to save inventory at %s: %w", location, err)
	}
	return nil
}

// GetStacks retrieves the stacks held at a location, ordered by item type
func (r *GormInventoryRepository) GetStacks(ctx context.Context, location string) ([]*entities.InventoryStack, error) {
	var models []InventoryStackModel
	result := r.db.WithContext(ctx).
		Where("location = ?", location).
		Order("item_type, id").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get inventory at %s: %w", location, result.Error)
	}
	return modelsToStacks(models), nil
}

func (r *GormInventoryRepository) GetAllStacks(ctx context.Context) ([]*entities.InventoryStack, error) {
	var models []InventoryStackModel
	result := r.db.WithContext(ctx).Order("location, item_type, id").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", result.Error)
	}
	return modelsToStacks(models), nil
}

// Locations lists the distinct locations holding stacks
func (r *GormInventoryRepository) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	result := r.db.WithContext(ctx).
		Model(&InventoryStackModel{}).
		Distinct("location").
		Order("location").
		Pluck("location", &locations)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list locations: %w", result.Error)
	}
	return locations, nil
}

// Snapshot loads a location into an in-memory query view
func (r *GormInventoryRepository) Snapshot(
	ctx context.Context,
	location string,
	items repositories.ItemTypeRepository,
) (*memory.Inventory, error) {
	stacks, err := r.GetStacks(ctx, location)
	if err != nil {
		return nil, err
	}
	return memory.NewInventory(stacks, items), nil
}

func stackToModel(stack *entities.InventoryStack) InventoryStackModel {
	return InventoryStackModel{
		ItemType: string(stack.ItemType),
		Location: stack.Location,
		Quantity: stack.Quantity,
		Charges:  stack.Charges,
		Pseudo:   stack.Pseudo,
	}
}

func modelsToStacks(models []InventoryStackModel) []*entities.InventoryStack {
	stacks := make([]*entities.InventoryStack, 0, len(models))
	for _, model := range models {
		stacks = append(stacks, &entities.InventoryStack{
			ItemType: entities.ItemTypeID(model.ItemType),
			Location: model.Location,
			Quantity: model.Quantity,
			Charges:  model.Charges,
			Pseudo:   model.Pseudo,
		})
	}
	return stacks
}
