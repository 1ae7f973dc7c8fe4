package repositories

import "github.com/vsinha/craftreq/pkg/domain/entities"

// ItemTypeRepository provides access to item type definitions
type ItemTypeRepository interface {
	TypeIsDefined(id entities.ItemTypeID) bool
	GetItemType(id entities.ItemTypeID) (*entities.ItemType, error)
	GetAllItemTypes() ([]*entities.ItemType, error)
	LoadItemTypes(types []*entities.ItemType) error
}

// QualityRepository provides access to tool quality definitions
type QualityRepository interface {
	IsValid(id entities.QualityID) bool
	GetQuality(id entities.QualityID) (*entities.Quality, error)
	GetAllQualities() ([]*entities.Quality, error)
	LoadQualities(qualities []*entities.Quality) error
}
