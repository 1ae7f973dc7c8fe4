package yaml

import (
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

// parser turns the nested group arrays of one definition into entities
type parser struct {
	kind string
	id   string
}

func (p *parser) fail(field string, node *yamlv3.Node, format string, args ...any) *LoadError {
	return &LoadError{
		Type:    p.kind,
		ID:      p.id,
		Field:   field,
		Line:    node.Line,
		Message: fmt.Sprintf(format, args...),
	}
}

// groups splits a list field into alternative groups. An entry whose first
// element is itself an array is an OR group, anything else is one mandatory item.
func (p *parser) groups(field string, node *yamlv3.Node, nested func(*yamlv3.Node) bool) ([][]*yamlv3.Node, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yamlv3.SequenceNode {
		return nil, p.fail(field, node, "%s must be an array", field)
	}

	var groups [][]*yamlv3.Node
	for _, entry := range node.Content {
		if nested(entry) {
			if len(entry.Content) == 0 {
				return nil, p.fail(field, entry, "empty alternative group")
			}
			groups = append(groups, entry.Content)
			continue
		}
		groups = append(groups, []*yamlv3.Node{entry})
	}
	return groups, nil
}

func isNestedArray(entry *yamlv3.Node) bool {
	return entry.Kind == yamlv3.SequenceNode && len(entry.Content) > 0 && entry.Content[0].Kind == yamlv3.SequenceNode
}

func (p *parser) componentGroups(node *yamlv3.Node) ([][]entities.ItemComponent, error) {
	raw, err := p.groups("components", node, isNestedArray)
	if err != nil {
		return nil, err
	}

	var out [][]entities.ItemComponent
	for _, group := range raw {
		var alternatives []entities.ItemComponent
		for _, item := range group {
			comp, err := p.component(item)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, comp)
		}
		out = append(out, alternatives)
	}
	return out, nil
}

func (p *parser) component(node *yamlv3.Node) (entities.ItemComponent, error) {
	if node.Kind != yamlv3.SequenceNode || len(node.Content) < 2 || len(node.Content) > 3 {
		return entities.ItemComponent{}, p.fail("components", node, "component must be [type, count] or [type, count, %q]", noRecover)
	}

	itemType, count, err := p.typeAndCount("components", node)
	if err != nil {
		return entities.ItemComponent{}, err
	}
	comp, err := entities.NewItemComponent(itemType, count)
	if err != nil {
		return entities.ItemComponent{}, p.fail("components", node, "%s", err)
	}

	if len(node.Content) == 3 {
		if flag := node.Content[2].Value; flag != noRecover {
			return entities.ItemComponent{}, p.fail("components", node.Content[2], "unknown component flag %q", flag)
		}
		comp.Recoverable = false
	}
	return *comp, nil
}

// Tool groups also accept bare strings, which mean one held tool
func (p *parser) toolGroups(node *yamlv3.Node) ([][]entities.ToolComponent, error) {
	raw, err := p.groups("tools", node, isToolGroup)
	if err != nil {
		return nil, err
	}

	var out [][]entities.ToolComponent
	for _, group := range raw {
		var alternatives []entities.ToolComponent
		for _, item := range group {
			tool, err := p.tool(item)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, tool)
		}
		out = append(out, alternatives)
	}
	return out, nil
}

// isToolGroup tells ["welder", 20] apart from ["hammer", "saw"] and [["welder", 20], "hammer"]
func isToolGroup(entry *yamlv3.Node) bool {
	if entry.Kind != yamlv3.SequenceNode || len(entry.Content) == 0 {
		return false
	}
	allNames := true
	for _, item := range entry.Content {
		if item.Kind == yamlv3.SequenceNode {
			return true
		}
		if item.Kind != yamlv3.ScalarNode || item.Tag != "!!str" {
			allNames = false
		}
	}
	return allNames
}

func (p *parser) tool(node *yamlv3.Node) (entities.ToolComponent, error) {
	if node.Kind == yamlv3.ScalarNode {
		tool, err := entities.NewToolComponent(entities.ItemTypeID(node.Value), -1)
		if err != nil {
			return entities.ToolComponent{}, p.fail("tools", node, "%s", err)
		}
		return *tool, nil
	}
	if node.Kind != yamlv3.SequenceNode || len(node.Content) != 2 {
		return entities.ToolComponent{}, p.fail("tools", node, "tool must be a type or [type, count]")
	}

	itemType, count, err := p.typeAndCount("tools", node)
	if err != nil {
		return entities.ToolComponent{}, err
	}
	tool, err := entities.NewToolComponent(itemType, count)
	if err != nil {
		return entities.ToolComponent{}, p.fail("tools", node, "%s", err)
	}
	return *tool, nil
}

func (p *parser) typeAndCount(field string, node *yamlv3.Node) (entities.ItemTypeID, int, error) {
	typeNode, countNode := node.Content[0], node.Content[1]
	if typeNode.Kind != yamlv3.ScalarNode {
		return "", 0, p.fail(field, typeNode, "item type must be a string")
	}
	var count int
	if err := countNode.Decode(&count); err != nil {
		return "", 0, p.fail(field, countNode, "count must be an integer, got %q", countNode.Value)
	}
	return entities.ItemTypeID(typeNode.Value), count, nil
}

func (p *parser) qualityGroups(node *yamlv3.Node) ([][]entities.QualityRequirement, error) {
	raw, err := p.groups("qualities", node, func(entry *yamlv3.Node) bool {
		return entry.Kind == yamlv3.SequenceNode
	})
	if err != nil {
		return nil, err
	}

	var out [][]entities.QualityRequirement
	for _, group := range raw {
		var alternatives []entities.QualityRequirement
		for _, item := range group {
			q, err := p.qualityRequirement(item)
			if err != nil {
				return nil, err
			}
			alternatives = append(alternatives, q)
		}
		out = append(out, alternatives)
	}
	return out, nil
}

// qualityRequirement reads {id, level, amount}; level and amount default to 1
func (p *parser) qualityRequirement(node *yamlv3.Node) (entities.QualityRequirement, error) {
	if node.Kind != yamlv3.MappingNode {
		return entities.QualityRequirement{}, p.fail("qualities", node, "quality must be an object with id, level and amount")
	}
	var raw rawQuality
	if err := node.Decode(&raw); err != nil {
		return entities.QualityRequirement{}, p.fail("qualities", node, "%s", err)
	}

	level, amount := 1, 1
	if raw.Level != nil {
		level = *raw.Level
	}
	if raw.Amount != nil {
		amount = *raw.Amount
	}
	q, err := entities.NewQualityRequirement(entities.QualityID(raw.ID), level, amount)
	if err != nil {
		return entities.QualityRequirement{}, p.fail("qualities", node, "%s", err)
	}
	return *q, nil
}

// providedQualities reads an item type's [[quality, level], ...] list
func (p *parser) providedQualities(node *yamlv3.Node) (map[entities.QualityID]int, error) {
	qualities := make(map[entities.QualityID]int)
	if node.Kind == 0 {
		return qualities, nil
	}
	if node.Kind != yamlv3.SequenceNode {
		return nil, p.fail("qualities", node, "qualities must be an array")
	}
	for _, entry := range node.Content {
		if entry.Kind != yamlv3.SequenceNode || len(entry.Content) != 2 {
			return nil, p.fail("qualities", entry, "quality must be [id, level]")
		}
		var level int
		if err := entry.Content[1].Decode(&level); err != nil {
			return nil, p.fail("qualities", entry.Content[1], "level must be an integer, got %q", entry.Content[1].Value)
		}
		qualities[entities.QualityID(entry.Content[0].Value)] = level
	}
	return qualities, nil
}

// usages reads [[level, [action, ...]], ...]; a single action may be a bare string
func (p *parser) usages(node *yamlv3.Node) ([]entities.QualityUsage, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yamlv3.SequenceNode {
		return nil, p.fail("usages", node, "usages must be an array")
	}

	var usages []entities.QualityUsage
	for _, entry := range node.Content {
		if entry.Kind != yamlv3.SequenceNode || len(entry.Content) != 2 {
			return nil, p.fail("usages", entry, "usage must be [level, actions]")
		}
		var level int
		if err := entry.Content[0].Decode(&level); err != nil {
			return nil, p.fail("usages", entry.Content[0], "level must be an integer, got %q", entry.Content[0].Value)
		}

		actions := entry.Content[1]
		switch actions.Kind {
		case yamlv3.ScalarNode:
			usages = append(usages, entities.QualityUsage{Level: level, Action: actions.Value})
		case yamlv3.SequenceNode:
			for _, action := range actions.Content {
				usages = append(usages, entities.QualityUsage{Level: level, Action: action.Value})
			}
		default:
			return nil, p.fail("usages", actions, "actions must be a string or an array of strings")
		}
	}
	return usages, nil
}
