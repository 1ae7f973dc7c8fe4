package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
)

func newItemTypes(t *testing.T, types ...entities.ItemType) *memory.ItemTypeRepository {
	t.Helper()
	repo := memory.NewItemTypeRepository(len(types))
	for _, it := range types {
		repo.AddItemType(it)
	}
	return repo
}

func newQualities(t *testing.T, qualities ...entities.Quality) *memory.QualityRepository {
	t.Helper()
	repo := memory.NewQualityRepository()
	for i := range qualities {
		require.NoError(t, repo.LoadQualities([]*entities.Quality{&qualities[i]}))
	}
	return repo
}

func stacks(pairs ...any) []*entities.InventoryStack {
	var out []*entities.InventoryStack
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, &entities.InventoryStack{
			ItemType: entities.ItemTypeID(pairs[i].(string)),
			Location: "workshop",
			Quantity: pairs[i+1].(int),
		})
	}
	return out
}

func ref(tier entities.Tier, group, index int) entities.ItemRef {
	return entities.ItemRef{Tier: tier, Group: group, Index: index}
}
