package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEventStore_AppendAndRead(t *testing.T) {
	store := NewInMemoryEventStore(nil)

	require.NoError(t, store.AppendEvent(CatalogStream,
		NewEvent(RequirementAddedEvent, CatalogStream, RequirementAdded{RequirementID: "plank_frame", Groups: 3})))
	require.NoError(t, store.AppendEvent(CatalogStream,
		NewEvent(RequirementUpdatedEvent, CatalogStream, RequirementUpdated{RequirementID: "plank_frame", OldGroups: 3, NewGroups: 4})))

	events, err := store.ReadEvents(CatalogStream, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Version())
	assert.Equal(t, 2, events[1].Version())

	added, ok := PayloadAs[RequirementAdded](events[0])
	require.True(t, ok)
	assert.Equal(t, 3, added.Groups)

	_, ok = PayloadAs[CatalogReset](events[0])
	assert.False(t, ok)

	later, err := store.ReadEvents(CatalogStream, 2)
	require.NoError(t, err)
	assert.Len(t, later, 1)

	none, err := store.ReadEvents("unknown", 1)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

type recordingHandler struct {
	types []string
	seen  []string
}

func (h *recordingHandler) Handle(event Event) error {
	h.seen = append(h.seen, event.Type())
	return nil
}

func (h *recordingHandler) CanHandle(eventType string) bool {
	for _, t := range h.types {
		if t == eventType {
			return true
		}
	}
	return false
}

func TestInMemoryEventStore_Subscribe(t *testing.T) {
	store := NewInMemoryEventStore(nil)
	handler := &recordingHandler{types: []string{RequirementAddedEvent, CatalogResetEvent}}
	require.NoError(t, store.Subscribe([]string{RequirementAddedEvent, CatalogResetEvent}, handler))

	var updates int
	require.NoError(t, store.Subscribe([]string{RequirementUpdatedEvent}, HandlerFunc(func(Event) error {
		updates++
		return nil
	})))

	require.NoError(t, store.AppendEvent(CatalogStream, NewEvent(RequirementAddedEvent, CatalogStream, nil)))
	require.NoError(t, store.AppendEvent(CatalogStream, NewEvent(RequirementUpdatedEvent, CatalogStream, nil)))
	require.NoError(t, store.AppendEvent(CatalogStream, NewEvent(CatalogResetEvent, CatalogStream, nil)))

	assert.Equal(t, []string{RequirementAddedEvent, CatalogResetEvent}, handler.seen)
	assert.Equal(t, 1, updates)
	assert.Equal(t, 3, store.Len())

	require.NoError(t, store.Unsubscribe(handler))
	require.NoError(t, store.AppendEvent(CatalogStream, NewEvent(RequirementAddedEvent, CatalogStream, nil)))
	assert.Len(t, handler.seen, 2)
}

func TestInMemoryEventStore_ReadReturnsCopies(t *testing.T) {
	store := NewInMemoryEventStore(nil)
	require.NoError(t, store.AppendEvent(CatalogStream, NewEvent(RequirementAddedEvent, CatalogStream, nil)))

	events, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	events[0] = nil

	again, err := store.ReadAllEvents(0)
	require.NoError(t, err)
	require.NotNil(t, again[0])
	assert.Equal(t, RequirementAddedEvent, again[0].Type())
}
