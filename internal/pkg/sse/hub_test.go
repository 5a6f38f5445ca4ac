package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-1", Event{RecipientID: "emp-1", Event: "notification", Data: "hello"})

	select {
	case got := <-ch:
		assert.Equal(t, "notification", got.Event)
		assert.Equal(t, "hello", got.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestPublishToOtherEmployeeNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-2", Event{RecipientID: "emp-2", Event: "notification"})

	select {
	case <-ch:
		t.Fatal("event for emp-2 must not reach emp-1")
	default:
	}
}

func TestMultipleStreamsPerEmployee(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup1()
	defer cleanup2()

	require.Equal(t, 2, hub.SubscriberCount("emp-1"))

	hub.Publish("emp-1", Event{RecipientID: "emp-1", Event: "ping"})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}

func TestCleanupClosesAndUnregisters(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	cleanup()

	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cleanup must not panic.
	hub.Publish("emp-1", Event{RecipientID: "emp-1", Event: "ping"})
}

func TestPublishSkipsFullChannel(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Channel buffer is 10; the extra publishes are dropped, not blocked.
	for i := 0; i < 25; i++ {
		hub.Publish("emp-1", Event{RecipientID: "emp-1", Event: "ping"})
	}

	assert.Len(t, ch, 10)
}

func TestPublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	ch2, cleanup2 := hub.Subscribe("emp-2")
	defer cleanup1()
	defer cleanup2()

	hub.PublishToMany([]string{"emp-1", "emp-2"}, Event{Event: "broadcast"})

	got1 := <-ch1
	got2 := <-ch2
	assert.Equal(t, "emp-1", got1.RecipientID)
	assert.Equal(t, "emp-2", got2.RecipientID)
}
