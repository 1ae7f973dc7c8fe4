package entities

import (
	"fmt"
	"slices"
)

// ItemTypeID represents a unique item type identifier
type ItemTypeID string

// QualityID represents a unique tool quality identifier
type QualityID string

// RequirementID represents a unique requirement set identifier
type RequirementID string

// NullRequirementID is the id carried by anonymous and derived requirement sets
const NullRequirementID RequirementID = "null"

// IsNull reports whether the id is the sentinel or empty
func (id RequirementID) IsNull() bool {
	return id == "" || id == NullRequirementID
}

// FlagUnrecoverable marks item types that are destroyed when the product is taken apart
const FlagUnrecoverable = "UNRECOVERABLE"

// ItemType represents the static definition of an item type
type ItemType struct {
	ID             ItemTypeID `validate:"required"`
	Name           string     `validate:"required"`
	PluralName     string
	CountByCharges bool
	Qualities      map[QualityID]int
	Flags          []string
}

// NewItemType creates a validated ItemType
func NewItemType(id ItemTypeID, name string, countByCharges bool) (*ItemType, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("item type id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("item type name cannot be empty")
	}

	return &ItemType{
		ID:             id,
		Name:           name,
		CountByCharges: countByCharges,
		Qualities:      map[QualityID]int{},
	}, nil
}

// NameFor returns the display name for the given amount
func (t *ItemType) NameFor(count int) string {
	if count != 1 && t.PluralName != "" {
		return t.PluralName
	}
	return t.Name
}

// HasFlag reports whether the item type carries the flag
func (t *ItemType) HasFlag(flag string) bool {
	return slices.Contains(t.Flags, flag)
}

// QualityLevel returns the level at which the item type provides a quality
func (t *ItemType) QualityLevel(quality QualityID) (int, bool) {
	level, ok := t.Qualities[quality]
	return level, ok
}

// QualityUsage names an action a quality enables from a given level upwards
type QualityUsage struct {
	Level  int
	Action string
}

// Quality represents an abstract graded tool capability such as cutting or sawing
type Quality struct {
	ID     QualityID `validate:"required"`
	Name   string    `validate:"required"`
	Usages []QualityUsage
}

// ActionsAt returns the actions available with the quality at the given level
func (q *Quality) ActionsAt(level int) []string {
	var actions []string
	for _, usage := range q.Usages {
		if usage.Level <= level {
			actions = append(actions, usage.Action)
		}
	}
	return actions
}
