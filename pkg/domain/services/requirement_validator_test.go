package services

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/craftreq/pkg/domain/entities"
	"github.com/vsinha/craftreq/pkg/infrastructure/repositories/memory"
)

func TestRequirementValidator_ValidateCatalog(t *testing.T) {
	items := newItemTypes(t, entities.ItemType{ID: "plank", Name: "plank"})
	qualities := newQualities(t, entities.Quality{ID: "HAMMER", Name: "hammering"})

	catalog := memory.NewRequirementRepository(nil)
	require.NoError(t, catalog.Register(&entities.RequirementSet{
		ID:         "b_frame",
		Qualities:  [][]entities.QualityRequirement{{{Type: "HAMMER", Level: 1, Count: 1}}, {{Type: "DRILL", Level: 1, Count: 1}}},
		Components: [][]entities.ItemComponent{{{Type: "plank", Count: 2, Recoverable: true}}},
	}))
	require.NoError(t, catalog.Register(&entities.RequirementSet{
		ID:    "a_bench",
		Tools: [][]entities.ToolComponent{{{Type: "sawhorse", Count: -1}}, {}},
	}))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	validator := NewRequirementValidator(items, qualities, logger)

	result := validator.ValidateCatalog(catalog)

	assert.True(t, result.HasErrors())
	assert.Equal(t, []string{
		"sawhorse in a_bench is not a valid item template",
		"Empty Tools group 1 in a_bench",
		"Unknown quality DRILL in b_frame",
	}, result.Errors)
	require.Len(t, result.UnknownQualities, 1)
	assert.Equal(t, Reference{Requirement: "b_frame", Tier: entities.TierQualities, Group: 1, ID: "DRILL"}, result.UnknownQualities[0])
	require.Len(t, result.EmptyGroups, 1)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "Unknown quality DRILL in b_frame")

	// Nothing is removed
	assert.True(t, catalog.Has("a_bench"))
	assert.Len(t, catalog.Lookup("b_frame").Qualities, 2)
}

func TestRequirementValidator_ValidateRequirement_Clean(t *testing.T) {
	items := newItemTypes(t, entities.ItemType{ID: "plank", Name: "plank"})
	validator := NewRequirementValidator(items, newQualities(t), nil)

	result := validator.ValidateRequirement(&entities.RequirementSet{
		ID:         "shelf",
		Components: [][]entities.ItemComponent{{{Type: "plank", Count: 1, Recoverable: true}}},
	})
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.UnknownItemTypes)
}
