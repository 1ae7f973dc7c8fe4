package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/domain/repositories"
)

const (
	TypeRequirement = "requirement"
	TypeToolQuality = "tool_quality"
	TypeItemType    = "item_type"

	noRecover = "NO_RECOVER"
)

// Definitions holds everything read from one definitions document
type Definitions struct {
	Requirements []*entities.RequirementSet
	Qualities    []*entities.Quality
	ItemTypes    []*entities.ItemType
}

// Register loads the definitions into the given repositories.
// Registries are filled before the catalog so validation can follow.
func (d *Definitions) Register(
	items repositories.ItemTypeRepository,
	qualities repositories.QualityRepository,
	catalog repositories.RequirementRepository,
) error {
	if err := qualities.LoadQualities(d.Qualities); err != nil {
		return fmt.Errorf("failed to load qualities: %w", err)
	}
	if err := items.LoadItemTypes(d.ItemTypes); err != nil {
		return fmt.Errorf("failed to load item types: %w", err)
	}
	for _, set := range d.Requirements {
		if err := catalog.Register(set); err != nil {
			return fmt.Errorf("failed to register requirement %s: %w", set.ID, err)
		}
	}
	return nil
}

// Merge appends other's definitions after d's
func (d *Definitions) Merge(other *Definitions) {
	d.Requirements = append(d.Requirements, other.Requirements...)
	d.Qualities = append(d.Qualities, other.Qualities...)
	d.ItemTypes = append(d.ItemTypes, other.ItemTypes...)
}

// Loader reads definitions documents. YAML and JSON are both accepted.
type Loader struct {
	validate *validator.Validate
}

func NewLoader() *Loader {
	return &Loader{validate: validator.New()}
}

// LoadFile loads a definitions document from disk
func (l *Loader) LoadFile(filename string) (*Definitions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", filename, err)
	}
	defs, err := l.Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return defs, nil
}

// LoadFiles loads several documents into one set of definitions
func (l *Loader) LoadFiles(filenames ...string) (*Definitions, error) {
	all := &Definitions{}
	for _, filename := range filenames {
		defs, err := l.LoadFile(filename)
		if err != nil {
			return nil, err
		}
		all.Merge(defs)
	}
	return all, nil
}

// Load parses a document holding an array of typed definition objects.
// The first malformed definition aborts the whole call.
func (l *Loader) Load(r io.Reader) (*Definitions, error) {
	var doc yamlv3.Node
	if err := yamlv3.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Definitions{}, nil
		}
		return nil, fmt.Errorf("failed to parse definitions: %w", err)
	}

	root := &doc
	if root.Kind == yamlv3.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yamlv3.SequenceNode {
		return nil, &LoadError{Line: root.Line, Message: "definitions must be an array of objects"}
	}

	defs := &Definitions{}
	for _, node := range root.Content {
		if err := l.loadDefinition(node, defs); err != nil {
			return nil, err
		}
	}
	return defs, nil
}

// LoadRequirement parses a single requirement object. When id is not empty it
// takes precedence over the object's own id field.
func (l *Loader) LoadRequirement(node *yamlv3.Node, id entities.RequirementID) (*entities.RequirementSet, error) {
	var raw rawDefinition
	if err := node.Decode(&raw); err != nil {
		return nil, &LoadError{Type: TypeRequirement, Line: node.Line, Message: err.Error()}
	}
	if id != "" {
		raw.ID = string(id)
	}
	return l.requirement(node, &raw)
}

type rawDefinition struct {
	Type           string      `yaml:"type"`
	ID             string      `yaml:"id"`
	Name           string      `yaml:"name"`
	NamePlural     string      `yaml:"name_plural"`
	CountByCharges bool        `yaml:"count_by_charges"`
	Flags          []string    `yaml:"flags"`
	Usages         yamlv3.Node `yaml:"usages"`
	Qualities      yamlv3.Node `yaml:"qualities"`
	Tools          yamlv3.Node `yaml:"tools"`
	Components     yamlv3.Node `yaml:"components"`
}

type rawQuality struct {
	ID     string `yaml:"id"`
	Level  *int   `yaml:"level"`
	Amount *int   `yaml:"amount"`
}

func (l *Loader) loadDefinition(node *yamlv3.Node, defs *Definitions) error {
	if node.Kind != yamlv3.MappingNode {
		return &LoadError{Line: node.Line, Message: "definition must be an object"}
	}

	var raw rawDefinition
	if err := node.Decode(&raw); err != nil {
		return &LoadError{Line: node.Line, Message: err.Error()}
	}

	switch raw.Type {
	case TypeRequirement:
		set, err := l.requirement(node, &raw)
		if err != nil {
			return err
		}
		defs.Requirements = append(defs.Requirements, set)
	case TypeToolQuality:
		quality, err := l.quality(node, &raw)
		if err != nil {
			return err
		}
		defs.Qualities = append(defs.Qualities, quality)
	case TypeItemType:
		itemType, err := l.itemType(node, &raw)
		if err != nil {
			return err
		}
		defs.ItemTypes = append(defs.ItemTypes, itemType)
	case "":
		return &LoadError{ID: raw.ID, Field: "type", Line: node.Line, Message: "missing definition type"}
	default:
		return &LoadError{Type: raw.Type, ID: raw.ID, Field: "type", Line: node.Line, Message: "unknown definition type"}
	}
	return nil
}

func (l *Loader) requirement(node *yamlv3.Node, raw *rawDefinition) (*entities.RequirementSet, error) {
	p := &parser{kind: TypeRequirement, id: raw.ID}
	if raw.ID == "" {
		return nil, p.fail("id", node, "requirement id is required")
	}

	set := &entities.RequirementSet{ID: entities.RequirementID(raw.ID)}
	var err error
	if set.Qualities, err = p.qualityGroups(&raw.Qualities); err != nil {
		return nil, err
	}
	if set.Tools, err = p.toolGroups(&raw.Tools); err != nil {
		return nil, err
	}
	if set.Components, err = p.componentGroups(&raw.Components); err != nil {
		return nil, err
	}
	return set, nil
}

func (l *Loader) quality(node *yamlv3.Node, raw *rawDefinition) (*entities.Quality, error) {
	p := &parser{kind: TypeToolQuality, id: raw.ID}
	quality := &entities.Quality{ID: entities.QualityID(raw.ID), Name: raw.Name}
	if err := l.validate.Struct(quality); err != nil {
		return nil, p.fail("", node, "%s", validationMessage(err))
	}

	usages, err := p.usages(&raw.Usages)
	if err != nil {
		return nil, err
	}
	quality.Usages = usages
	return quality, nil
}

func (l *Loader) itemType(node *yamlv3.Node, raw *rawDefinition) (*entities.ItemType, error) {
	p := &parser{kind: TypeItemType, id: raw.ID}
	itemType := &entities.ItemType{
		ID:             entities.ItemTypeID(raw.ID),
		Name:           raw.Name,
		PluralName:     raw.NamePlural,
		CountByCharges: raw.CountByCharges,
		Flags:          raw.Flags,
	}
	if err := l.validate.Struct(itemType); err != nil {
		return nil, p.fail("", node, "%s", validationMessage(err))
	}

	qualities, err := p.providedQualities(&raw.Qualities)
	if err != nil {
		return nil, err
	}
	itemType.Qualities = qualities
	return itemType, nil
}

func validationMessage(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return fmt.Sprintf("%s is %s", errs[0].Field(), errs[0].Tag())
	}
	return err.Error()
}
