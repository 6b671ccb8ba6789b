package events

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBus() *Bus {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewBus(log)
}

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	bus := newTestBus()

	var order []int
	bus.Subscribe(ObjectAdded, func(Event) { order = append(order, 1) })
	bus.Subscribe(ObjectAdded, func(Event) { order = append(order, 2) })
	bus.Subscribe(ObjectAdded, func(Event) { order = append(order, 3) })

	bus.Publish(ObjectAdded, ObjectAddedPayload{ID: "a", Kind: "wall"})
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestHandlerPanicDoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	delivered := false
	bus.Subscribe(ObjectDeleted, func(Event) { panic("boom") })
	bus.Subscribe(ObjectDeleted, func(Event) { delivered = true })

	require.NotPanics(t, func() {
		bus.Publish(ObjectDeleted, ObjectDeletedPayload{ID: "x"})
	})
	assert.True(t, delivered)
}

func TestMismatchedPayloadIsDropped(t *testing.T) {
	bus := newTestBus()

	called := false
	bus.Subscribe(ObjectAdded, func(Event) { called = true })

	bus.Publish(ObjectAdded, ObjectDeletedPayload{ID: "x"})
	bus.Publish(ObjectAdded, nil)
	assert.False(t, called)
}

func TestUnsubscribe(t *testing.T) {
	bus := newTestBus()

	count := 0
	sub := bus.Subscribe(ModeChanged, func(Event) { count++ })
	bus.Publish(ModeChanged, ModeChangedPayload{Mode: "2d"})
	bus.Unsubscribe(sub)
	bus.Publish(ModeChanged, ModeChangedPayload{Mode: "3d"})

	assert.Equal(t, 1, count)

	// Unknown handles are a no-op.
	bus.Unsubscribe(Subscription{name: ModeChanged, id: 999})
}

func TestEventCarriesTimestampAndPayload(t *testing.T) {
	bus := newTestBus()

	var got Event
	bus.Subscribe(ObjectSelected, func(ev Event) { got = ev })
	bus.Publish(ObjectSelected, ObjectSelectedPayload{IDs: []string{"a", "b"}})

	require.Equal(t, ObjectSelected, got.Name)
	assert.False(t, got.Timestamp.IsZero())
	payload, ok := got.Payload.(ObjectSelectedPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, payload.IDs)
}

func TestUnsubscribeAll(t *testing.T) {
	bus := newTestBus()

	count := 0
	bus.Subscribe(Error, func(Event) { count++ })
	bus.Subscribe(ToolChanged, func(Event) { count++ })
	bus.UnsubscribeAll()

	bus.Publish(Error, ErrorPayload{Op: "test"})
	bus.Publish(ToolChanged, ToolChangedPayload{Tool: "select"})
	assert.Zero(t, count)
}
