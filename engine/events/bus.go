package events

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Handler consumes one event. Handlers run synchronously on the publishing
// goroutine and must not mutate engine state reentrantly.
type Handler func(Event)

// Subscription identifies one registered handler for Unsubscribe.
type Subscription struct {
	name Name
	id   uint64
}

type subscriber struct {
	id uint64
	fn Handler
}

// Bus is a synchronous publish/subscribe channel. Delivery is FIFO per event
// name in subscription order. A panicking handler is logged and skipped;
// later handlers still run. Not safe for concurrent use.
type Bus struct {
	log    *logrus.Logger
	nextID uint64
	subs   map[Name][]subscriber
}

func NewBus(log *logrus.Logger) *Bus {
	if log == nil {
		log = logrus.New()
	}
	return &Bus{log: log, subs: make(map[Name][]subscriber)}
}

func (b *Bus) Subscribe(name Name, fn Handler) Subscription {
	b.nextID++
	b.subs[name] = append(b.subs[name], subscriber{id: b.nextID, fn: fn})
	return Subscription{name: name, id: b.nextID}
}

// Unsubscribe removes the handler; unknown handles are a no-op.
func (b *Bus) Unsubscribe(s Subscription) {
	list := b.subs[s.name]
	for i, sub := range list {
		if sub.id == s.id {
			b.subs[s.name] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// UnsubscribeAll drops every handler. Used on teardown.
func (b *Bus) UnsubscribeAll() {
	b.subs = make(map[Name][]subscriber)
}

// Publish delivers payload to every subscriber of name, in order. A payload
// published under a name it does not belong to is dropped with a diagnostic.
func (b *Bus) Publish(name Name, payload Payload) {
	if payload == nil || payload.EventName() != name {
		b.log.WithField("event", name).Warn("events: dropping payload with mismatched name")
		return
	}
	ev := Event{Name: name, Payload: payload, Timestamp: time.Now()}
	// Copy so a handler subscribing/unsubscribing mid-delivery does not
	// disturb this delivery pass.
	list := append([]subscriber(nil), b.subs[name]...)
	for _, sub := range list {
		b.deliver(sub, ev)
	}
}

func (b *Bus) deliver(sub subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"event": ev.Name,
				"panic": r,
			}).Error("events: handler panicked")
		}
	}()
	sub.fn(ev)
}
