package ports

// Event is a change notification fanned out to subscribers. The results feed
// only ever needs "a new response landed, re-fetch", so the payload stays
// minimal.
type Event struct {
	Name string `json:"event"`
}

type Publisher interface {
	Publish(event Event)
}

type Subscriber interface {
	Subscribe(buffer int) <-chan Event
	Unsubscribe(ch <-chan Event)
}

type Broker interface {
	Publisher
	Subscriber
}
