// Package pubsub provides the in-process replacement for the hosted store's
// change feed: the submission path publishes a refresh event, the events
// endpoint fans it out to connected clients.
package pubsub

import (
	"sync"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type Broker struct {
	mu   sync.Mutex
	subs map[<-chan ports.Event]chan ports.Event
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[<-chan ports.Event]chan ports.Event),
	}
}

func (b *Broker) Subscribe(buffer int) <-chan ports.Event {
	ch := make(chan ports.Event, buffer)
	b.mu.Lock()
	b.subs[ch] = ch
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch <-chan ports.Event) {
	b.mu.Lock()
	if sub, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(sub)
	}
	b.mu.Unlock()
}

// Publish never blocks: a subscriber with a full buffer misses the event.
// Consumers re-fetch on the next one, so a dropped notification only delays a
// refresh.
func (b *Broker) Publish(event ports.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		select {
		case sub <- event:
		default:
		}
	}
}
