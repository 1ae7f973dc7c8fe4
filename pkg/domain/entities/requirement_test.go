package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirement_Validation(t *testing.T) {
	t.Run("quality", func(t *testing.T) {
		q, err := NewQualityRequirement("CUT", 0, 1)
		require.NoError(t, err, "zero level is accepted")
		assert.Equal(t, 0, q.Level)
		assert.Equal(t, 1, q.Count)

		_, err = NewQualityRequirement("BUTCHER", -20, 1)
		assert.NoError(t, err, "negative level is accepted")
	})

	testCases := []struct {
		name        string
		build       func() error
		expectError string
	}{
		{"zero quality amount", func() error { _, err := NewQualityRequirement("CUT", 1, 0); return err }, "quality amount must be a positive number"},
		{"negative quality amount", func() error { _, err := NewQualityRequirement("CUT", 1, -2); return err }, "quality amount must be a positive number"},
		{"empty quality", func() error { _, err := NewQualityRequirement("", 1, 1); return err }, "quality id cannot be empty"},
		{"zero tool count", func() error { _, err := NewToolComponent("welder", 0); return err }, "tool count must not be 0"},
		{"empty tool", func() error { _, err := NewToolComponent("", 1); return err }, "tool type cannot be empty"},
		{"zero item count", func() error { _, err := NewItemComponent("nail", 0); return err }, "item count must be a positive number"},
		{"negative item count", func() error { _, err := NewItemComponent("nail", -1); return err }, "item count must be a positive number"},
		{"empty item", func() error { _, err := NewItemComponent("", 1); return err }, "item type cannot be empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			require.Error(t, err)
			assert.EqualError(t, err, tc.expectError)
		})
	}
}

func TestToolComponent_ByCharges(t *testing.T) {
	welder, err := NewToolComponent("welder", 20)
	require.NoError(t, err)
	assert.True(t, welder.ByCharges())
	assert.Equal(t, 20, welder.Magnitude())

	hammer, err := NewToolComponent("hammer", -1)
	require.NoError(t, err)
	assert.False(t, hammer.ByCharges())
	assert.Equal(t, 1, hammer.Magnitude())
}

func TestItemComponent_DefaultsToRecoverable(t *testing.T) {
	nail, err := NewItemComponent("nail", 10)
	require.NoError(t, err)
	assert.True(t, nail.Recoverable)
}

func TestRequirement_Kinds(t *testing.T) {
	reqs := []Requirement{
		QualityRequirement{Type: "CUT", Level: 1, Count: 1},
		ToolComponent{Type: "hammer", Count: -1},
		ItemComponent{Type: "nail", Count: 1},
	}
	expected := []Kind{KindQuality, KindTool, KindComponent}
	for i, req := range reqs {
		assert.Equal(t, expected[i], req.Kind())
	}
}
