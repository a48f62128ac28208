package game

type EventType int

const (
	EventJump EventType = iota
	EventLand
	EventSegmentRecycled
)

type Event struct {
	Type EventType
	X, Z float64
	Data int // segment index for recycles
}

type EventHandler func(Event)

// EventBus queues events raised during a frame and dispatches them in
// order when the frame's simulation step is done.
type EventBus struct {
	handlers map[EventType][]EventHandler
	pending  []Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit queues e for the next Flush.
func (eb *EventBus) Emit(e Event) {
	eb.pending = append(eb.pending, e)
}

// Flush dispatches queued events. Events emitted by handlers run in the
// same flush.
func (eb *EventBus) Flush() {
	for i := 0; i < len(eb.pending); i++ {
		e := eb.pending[i]
		for _, fn := range eb.handlers[e.Type] {
			fn(e)
		}
	}
	eb.pending = eb.pending[:0]
}
