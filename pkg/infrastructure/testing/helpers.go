package testing

import (
	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
)

// WorkshopLocation is where BuildWorkshopTestData puts its inventory
const WorkshopLocation = "workshop"

// Workshop bundles the repositories of the workshop test scenario
type Workshop struct {
	Requirements *memory.RequirementRepository
	ItemTypes    *memory.ItemTypeRepository
	Qualities    *memory.QualityRepository
	Inventory    *memory.InventoryRepository
}

// Stacks returns the stacks at the workshop location
func (w *Workshop) Stacks() []*entities.InventoryStack {
	stacks, err := w.Inventory.GetStacks(WorkshopLocation)
	if err != nil {
		panic(err)
	}
	return stacks
}

// View returns a query view over the workshop stacks
func (w *Workshop) View() *memory.Inventory {
	return memory.NewInventory(w.Stacks(), w.ItemTypes)
}

// BuildWorkshopTestData builds a small carpentry and metalwork scenario
func BuildWorkshopTestData() *Workshop {
	w := &Workshop{
		Requirements: memory.NewRequirementRepository(nil),
		ItemTypes:    memory.NewItemTypeRepository(16),
		Qualities:    memory.NewQualityRepository(),
		Inventory:    memory.NewInventoryRepository(),
	}

	qualities := []*entities.Quality{
		{ID: "HAMMER", Name: "hammering", Usages: []entities.QualityUsage{{Level: 1, Action: "drive nails"}}},
		{ID: "CUT", Name: "cutting", Usages: []entities.QualityUsage{{Level: 1, Action: "cut up"}}},
		{ID: "SAW_M_FINE", Name: "fine metal sawing"},
		{ID: "SAW_W", Name: "wood sawing"},
	}
	if err := w.Qualities.LoadQualities(qualities); err != nil {
		panic(err)
	}

	types := []*entities.ItemType{
		{ID: "hammer", Name: "hammer", Qualities: map[entities.QualityID]int{"HAMMER": 1}},
		{ID: "nail", Name: "nail", PluralName: "nails"},
		{ID: "plank", Name: "plank", PluralName: "planks"},
		{ID: "welder", Name: "welder"},
		{ID: "oxy_torch", Name: "oxy-torch"},
		{ID: "steel_chunk", Name: "chunk of steel", PluralName: "chunks of steel"},
		{ID: "sewing_kit", Name: "sewing kit"},
		{ID: "thread", Name: "thread", CountByCharges: true},
		{ID: "rag", Name: "rag", PluralName: "rags"},
		{ID: "glue", Name: "glue", Flags: []string{entities.FlagUnrecoverable}},
		{ID: "knife", Name: "knife", Qualities: map[entities.QualityID]int{"CUT": 2}},
		{ID: "rope_30", Name: "long rope"},
		{ID: "rope_6", Name: "short rope", PluralName: "short ropes"},
		{ID: "crucible", Name: "crucible"},
	}
	if err := w.ItemTypes.LoadItemTypes(types); err != nil {
		panic(err)
	}

	sets := []*entities.RequirementSet{
		{
			ID:         "plank_frame",
			Qualities:  [][]entities.QualityRequirement{{{Type: "HAMMER", Level: 1, Count: 1}}},
			Components: [][]entities.ItemComponent{{{Type: "plank", Count: 2, Recoverable: true}}, {{Type: "nail", Count: 8, Recoverable: true}}},
		},
		{
			ID:         "welded_bracket",
			Tools:      [][]entities.ToolComponent{{{Type: "welder", Count: 20}, {Type: "oxy_torch", Count: 10}}},
			Components: [][]entities.ItemComponent{{{Type: "steel_chunk", Count: 2, Recoverable: true}}},
		},
		{
			ID:    "stitched_bag",
			Tools: [][]entities.ToolComponent{{{Type: "sewing_kit", Count: 10}}},
			Components: [][]entities.ItemComponent{
				{{Type: "rag", Count: 4, Recoverable: true}},
				{{Type: "thread", Count: 10, Recoverable: true}},
				{{Type: "glue", Count: 1, Recoverable: true}},
			},
		},
		{
			ID:         "rope_ladder",
			Components: [][]entities.ItemComponent{{{Type: "rope_30", Count: 1, Recoverable: true}, {Type: "rope_6", Count: 5, Recoverable: true}}, {{Type: "plank", Count: 4, Recoverable: true}}},
		},
	}
	if err := w.Requirements.LoadRequirements(sets); err != nil {
		panic(err)
	}

	stacks := []*entities.InventoryStack{
		{ItemType: "hammer", Location: WorkshopLocation, Quantity: 1},
		{ItemType: "nail", Location: WorkshopLocation, Quantity: 20},
		{ItemType: "plank", Location: WorkshopLocation, Quantity: 3},
		{ItemType: "welder", Location: WorkshopLocation, Quantity: 1, Charges: 50},
		{ItemType: "steel_chunk", Location: WorkshopLocation, Quantity: 1},
		{ItemType: "sewing_kit", Location: WorkshopLocation, Quantity: 1, Charges: 5},
		{ItemType: "rag", Location: WorkshopLocation, Quantity: 10},
		{ItemType: "thread", Location: WorkshopLocation, Quantity: 30},
		{ItemType: "knife", Location: WorkshopLocation, Quantity: 1},
		{ItemType: "plank", Location: "shed", Quantity: 10},
	}
	if err := w.Inventory.LoadStacks(stacks); err != nil {
		panic(err)
	}

	return w
}
