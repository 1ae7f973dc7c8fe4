package csv

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

func TestLoader_LoadInventory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.csv")
	content := `item_type,location,quantity,charges,pseudo
# tools on the bench
hammer,workshop,1,,
welder,workshop,1,50,false
welder,workshop,1,0,true
nail,workshop,20,,
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	stacks, err := NewLoader().LoadInventory(path)
	require.NoError(t, err)
	require.Len(t, stacks, 4)

	assert.Equal(t, entities.ItemTypeID("hammer"), stacks[0].ItemType)
	assert.Equal(t, 50, stacks[1].Charges)
	assert.True(t, stacks[2].Pseudo)
	assert.Equal(t, 20, stacks[3].Quantity)
}

func TestLoader_LoadInventory_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadInventory(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open inventory file")
}

func TestLoader_ReadInventory_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty", "", "must have a header"},
		{"bad header", "type,where,qty,charges,pseudo\n", "header mismatch"},
		{"bad quantity", "item_type,location,quantity,charges,pseudo\nnail,workshop,many,,\n", "row 2: invalid quantity"},
		{"negative quantity", "item_type,location,quantity,charges,pseudo\nnail,workshop,-1,,\n", "row 2: quantity cannot be negative"},
		{"bad pseudo", "item_type,location,quantity,charges,pseudo\nnail,workshop,1,,maybe\n", "row 2: invalid pseudo flag"},
		{"missing location", "item_type,location,quantity,charges,pseudo\nnail,,1,,\n", "row 2: location cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().ReadInventory(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoader_WriteInventory_RoundTrip(t *testing.T) {
	stacks := []*entities.InventoryStack{
		{ItemType: "thread", Location: "workshop", Quantity: 30},
		{ItemType: "welder", Location: "workshop", Quantity: 1, Pseudo: true},
	}

	var buf bytes.Buffer
	loader := NewLoader()
	require.NoError(t, loader.WriteInventory(&buf, stacks))

	got, err := loader.ReadInventory(&buf)
	require.NoError(t, err)
	assert.Equal(t, stacks, got)
}
