package events

// Handler processes specific event types
// Collaborators (audio, high-score recorder, metrics) implement this to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously on the frame loop during dispatch
	HandleEvent(event GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// HandlerFunc adapts a function to Handler for a fixed set of types
type HandlerFunc struct {
	Types []EventType
	Fn    func(GameEvent)
}

func (h HandlerFunc) HandleEvent(event GameEvent) { h.Fn(event) }
func (h HandlerFunc) EventTypes() []EventType     { return h.Types }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
	batch    []GameEvent // Reused between dispatches
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events and routes to handlers in FIFO order
// Returns the number of events consumed
func (r *Router) DispatchAll() int {
	r.batch = r.queue.ConsumeInto(r.batch[:0])
	for _, ev := range r.batch {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
	clear(r.batch)
	return len(r.batch)
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
