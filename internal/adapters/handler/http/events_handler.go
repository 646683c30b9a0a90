package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SchoolKitHub/nakedtruth-polling-app/internal/core/ports"
)

type EventsHandler struct {
	broker ports.Broker
}

func NewEventsHandler(broker ports.Broker) *EventsHandler {
	return &EventsHandler{
		broker: broker,
	}
}

// StreamEvents pushes a server-sent event whenever a response is persisted.
// Clients treat it as "invalidate and re-fetch"; the subscription lives as
// long as the request context.
func (h *EventsHandler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := h.broker.Subscribe(16)
	defer h.broker.Unsubscribe(sub)

	fmt.Fprint(w, "event: ready\ndata: {}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
			flusher.Flush()
		}
	}
}
