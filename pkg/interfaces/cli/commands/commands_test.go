package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/craftreq/pkg/application/services"
)

const testDefinitions = `
- type: tool_quality
  id: HAMMER
  name: hammering
- type: item_type
  id: hammer
  name: hammer
  qualities: [[HAMMER, 1]]
- type: item_type
  id: nail
  name: nail
  name_plural: nails
- type: item_type
  id: plank
  name: plank
  name_plural: planks
- type: item_type
  id: welder
  name: welder
- type: item_type
  id: oxy_torch
  name: oxy-torch
- type: item_type
  id: steel_chunk
  name: chunk of steel
  name_plural: chunks of steel
- type: requirement
  id: plank_frame
  qualities:
    - {id: HAMMER}
  components:
    - [plank, 2]
    - [nail, 8]
- type: requirement
  id: welded_bracket
  tools:
    - [[welder, 20], [oxy_torch, 10]]
  components:
    - [steel_chunk, 2]
`

const testInventory = `item_type,location,quantity,charges,pseudo
hammer,workshop,1,,
nail,workshop,20,,
plank,workshop,3,,
welder,workshop,1,50,
plank,shed,10,,
`

type cliFixture struct {
	dir         string
	definitions string
	inventory   string
}

func newFixture(t *testing.T) *cliFixture {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)

	f := &cliFixture{
		dir:         dir,
		definitions: filepath.Join(dir, "definitions.yaml"),
		inventory:   filepath.Join(dir, "inventory.csv"),
	}
	require.NoError(t, os.WriteFile(f.definitions, []byte(testDefinitions), 0o644))
	require.NoError(t, os.WriteFile(f.inventory, []byte(testInventory), 0o644))
	f.writeConfig(t, "csv")
	return f
}

func (f *cliFixture) writeConfig(t *testing.T, source string) {
	t.Helper()
	content := fmt.Sprintf(`
data:
  paths: ["%s"]
inventory:
  source: %s
  path: "%s"
  location: workshop
database:
  type: sqlite
  path: "%s"
logging:
  level: error
output:
  color: none
`, f.definitions, source, f.inventory, filepath.Join(f.dir, "craftreq.db"))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "craftreq.yaml"), []byte(content), 0o644))
}

func (f *cliFixture) run(args ...string) (string, error) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--config", filepath.Join(f.dir, "craftreq.yaml")))
	err := cmd.Execute()
	return out.String(), err
}

func TestCheckCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("check", "plank_frame")
	require.NoError(t, err)

	assert.Contains(t, out, "plank_frame x1 can be crafted")
	assert.Contains(t, out, "Tools required:\n> 1 tool with hammering of 1 or more.\n")
	assert.Contains(t, out, "Components required:\n> 2 planks\n> 8 nails\n")
	assert.Contains(t, out, "Coverage: 100.00%")
}

func TestCheckCommand_Batch(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("check", "plank_frame", "--batch", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "plank_frame x2 cannot be crafted")
	assert.Contains(t, out, "Those components are missing:\n4 planks\n")
}

func TestCheckCommand_JSON(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("check", "welded_bracket", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "welded_bracket", decoded["requirement_id"])
	assert.Equal(t, true, decoded["tools_met"])
	assert.Equal(t, false, decoded["components_met"])
}

func TestCheckCommand_Combined(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("check", "plank_frame", "welded_bracket")
	require.NoError(t, err)

	assert.Contains(t, out, "cannot be crafted")
	assert.Contains(t, out, "> 2 planks\n> 8 nails\n> 2 chunks of steel\n")
}

func TestCheckCommand_UnknownRequirement(t *testing.T) {
	f := newFixture(t)

	_, err := f.run("check", "teleporter")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrRequirementNotFound)
}

func TestMissingCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("missing", "plank_frame")
	require.NoError(t, err)
	assert.Equal(t, "Nothing is missing.\n", out)

	out, err = f.run("missing", "plank_frame", "--location", "shed")
	require.NoError(t, err)
	assert.Contains(t, out, "These tools are missing:")
	assert.Contains(t, out, "1 tool with hammering of 1 or more.")
	assert.Contains(t, out, "8 nails")
	assert.NotContains(t, out, "planks")
}

func TestDisassembleCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("disassemble", "welded_bracket")
	require.NoError(t, err)

	assert.Contains(t, out, "welded_bracket (disassembly)")
	assert.Contains(t, out, "> 1 tool with SAW_M_FINE of 1 or more.")
	assert.NotContains(t, out, "welder")
}

func TestListCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("list")
	require.NoError(t, err)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "plank_frame")
	assert.Contains(t, out, "welded_bracket")
}

func TestValidateCommand(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("validate")
	require.NoError(t, err)
	assert.Equal(t, "2 requirements OK\n", out)

	broken := filepath.Join(f.dir, "broken.yaml")
	doc := `
- type: requirement
  id: gearbox
  components:
    - [sprocket, 4]
`
	require.NoError(t, os.WriteFile(broken, []byte(doc), 0o644))

	out, err = f.run("validate", "--data", f.definitions+","+broken)
	require.Error(t, err)
	assert.Contains(t, out, "sprocket in gearbox is not a valid item template")
}

func TestInventoryImportAndDatabaseCheck(t *testing.T) {
	f := newFixture(t)

	out, err := f.run("inventory", "import", f.inventory)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Imported 5 stacks from %s\n", f.inventory), out)

	out, err = f.run("inventory", "show", "--location", "shed")
	require.NoError(t, err)
	assert.Contains(t, out, "plank")
	assert.Contains(t, out, "10")

	f.writeConfig(t, "database")
	out, err = f.run("check", "plank_frame")
	require.NoError(t, err)
	assert.Contains(t, out, "plank_frame x1 can be crafted")
}

func TestInvalidFlag(t *testing.T) {
	f := newFixture(t)

	_, err := f.run("check", "plank_frame", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Format")
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
