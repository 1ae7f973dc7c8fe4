package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/craftreq/pkg/domain/entities"
)

var inventoryHeader = []string{"item_type", "location", "quantity", "charges", "pseudo"}

// Loader handles loading inventory stacks from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadInventory loads inventory stacks from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryStack, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ReadInventory(file)
}

// ReadInventory parses inventory stacks from r.
// The charges and pseudo columns may be left blank.
func (l *Loader) ReadInventory(r io.Reader) ([]*entities.InventoryStack, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("inventory CSV must have a header")
	}

	header := records[0]
	if !validateHeader(header, inventoryHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", inventoryHeader, header)
	}

	var stacks []*entities.InventoryStack
	for i, record := range records[1:] {
		if len(record) != len(inventoryHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(inventoryHeader), len(record))
		}

		stack, err := parseStack(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		stacks = append(stacks, stack)
	}

	return stacks, nil
}

// WriteInventory writes stacks in the format ReadInventory accepts
func (l *Loader) WriteInventory(w io.Writer, stacks []*entities.InventoryStack) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(inventoryHeader); err != nil {
		return fmt.Errorf("failed to write inventory CSV header: %w", err)
	}
	for _, stack := range stacks {
		record := []string{
			string(stack.ItemType),
			stack.Location,
			strconv.Itoa(stack.Quantity),
			strconv.Itoa(stack.Charges),
			strconv.FormatBool(stack.Pseudo),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write inventory CSV row for %s: %w", stack.ItemType, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseStack(record []string) (*entities.InventoryStack, error) {
	itemType := entities.ItemTypeID(strings.TrimSpace(record[0]))
	location := strings.TrimSpace(record[1])

	quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[2])
	}

	charges := 0
	if s := strings.TrimSpace(record[3]); s != "" {
		charges, err = strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid charges: %s", record[3])
		}
	}

	pseudo := false
	if s := strings.TrimSpace(record[4]); s != "" {
		pseudo, err = strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid pseudo flag: %s", record[4])
		}
	}

	return entities.NewInventoryStack(itemType, location, quantity, charges, pseudo)
}
