package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
)

func TestListMissing_Layout(t *testing.T) {
	items := newItemTypes(t,
		entities.ItemType{ID: "welder", Name: "welder"},
		entities.ItemType{ID: "oxy_torch", Name: "oxy-torch"},
		entities.ItemType{ID: "plank", Name: "plank", PluralName: "planks"},
		entities.ItemType{ID: "log", Name: "log", PluralName: "logs"},
		entities.ItemType{ID: "nail", Name: "nail", PluralName: "nails"},
	)
	qualities := newQualities(t, entities.Quality{ID: "SAW_W", Name: "wood sawing"})
	set := &entities.RequirementSet{
		Qualities: [][]entities.QualityRequirement{{{Type: "SAW_W", Level: 1, Count: 1}}},
		Tools:     [][]entities.ToolComponent{{{Type: "welder", Count: 10}, {Type: "oxy_torch", Count: 5}}},
		Components: [][]entities.ItemComponent{
			{{Type: "plank", Count: 2, Recoverable: true}, {Type: "log", Count: 1, Recoverable: true}},
			{{Type: "nail", Count: 4, Recoverable: true}},
		},
	}

	checker := NewRequirementChecker(items, nil)
	result := checker.CanSatisfy(set, memory.NewInventory(nil, items), 2)

	want := "These tools are missing:\n" +
		"welder (20 charges) or oxy-torch (10 charges)\n" +
		"These tools are missing:\n" +
		"1 tool with wood sawing of 1 or more.\n" +
		"Those components are missing:\n" +
		"4 planks or 2 logs\n" +
		"and 8 nails\n"
	assert.Equal(t, want, ListMissing(set, result, NewDescriber(items, qualities)))
}

func TestListMissing_OnlyUnavailableGroups(t *testing.T) {
	items := newItemTypes(t, entities.ItemType{ID: "nail", Name: "nail", PluralName: "nails"})
	set := &entities.RequirementSet{
		Components: [][]entities.ItemComponent{
			{{Type: "nail", Count: 4, Recoverable: true}},
			{{Type: "rope_6", Count: 1, Recoverable: true}},
		},
	}

	result := NewRequirementChecker(items, nil).CanSatisfy(set, memory.NewInventory(stacks("nail", 4), items), 1)
	assert.Equal(t, "Those components are missing:\n1 rope_6\n", ListMissing(set, result, NewDescriber(items, nil)))
}
