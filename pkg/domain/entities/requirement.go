package entities

import (
	"fmt"
)

// Kind identifies which variant a Requirement is
type Kind int

const (
	KindQuality Kind = iota
	KindTool
	KindComponent
)

// String method for Kind enum
func (k Kind) String() string {
	switch k {
	case KindQuality:
		return "Quality"
	case KindTool:
		return "Tool"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Requirement is one alternative inside an alternative group.
// It is implemented only by QualityRequirement, ToolComponent and ItemComponent;
// callers switch on the concrete type.
type Requirement interface {
	Kind() Kind
	requirement()
}

// QualityRequirement asks for count tools providing a quality at level or better.
// Level is not validated: zero and negative levels are used for inverse grading.
type QualityRequirement struct {
	Type  QualityID
	Level int
	Count int
}

// NewQualityRequirement creates a validated QualityRequirement
func NewQualityRequirement(quality QualityID, level, count int) (*QualityRequirement, error) {
	if string(quality) == "" {
		return nil, fmt.Errorf("quality id cannot be empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("quality amount must be a positive number")
	}

	return &QualityRequirement{
		Type:  quality,
		Level: level,
		Count: count,
	}, nil
}

func (QualityRequirement) Kind() Kind   { return KindQuality }
func (QualityRequirement) requirement() {}

// ToolComponent asks for a tool item type.
// A positive count is the number of charges consumed, a negative count
// is the number of tools that must simply be held.
type ToolComponent struct {
	Type  ItemTypeID
	Count int
}

// NewToolComponent creates a validated ToolComponent
func NewToolComponent(itemType ItemTypeID, count int) (*ToolComponent, error) {
	if string(itemType) == "" {
		return nil, fmt.Errorf("tool type cannot be empty")
	}
	if count == 0 {
		return nil, fmt.Errorf("tool count must not be 0")
	}

	return &ToolComponent{
		Type:  itemType,
		Count: count,
	}, nil
}

func (ToolComponent) Kind() Kind   { return KindTool }
func (ToolComponent) requirement() {}

// ByCharges reports whether the tool is consumed by charges rather than held
func (t ToolComponent) ByCharges() bool {
	return t.Count > 0
}

// Magnitude returns the absolute charges or tool count
func (t ToolComponent) Magnitude() int {
	return abs(t.Count)
}

// ItemComponent asks for count units (or charges) of a raw material
type ItemComponent struct {
	Type        ItemTypeID
	Count       int
	Recoverable bool
}

// NewItemComponent creates a validated, recoverable ItemComponent
func NewItemComponent(itemType ItemTypeID, count int) (*ItemComponent, error) {
	if string(itemType) == "" {
		return nil, fmt.Errorf("item type cannot be empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("item count must be a positive number")
	}

	return &ItemComponent{
		Type:        itemType,
		Count:       count,
		Recoverable: true,
	}, nil
}

func (ItemComponent) Kind() Kind   { return KindComponent }
func (ItemComponent) requirement() {}

// Magnitude returns the absolute unit count
func (c ItemComponent) Magnitude() int {
	return abs(c.Count)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
