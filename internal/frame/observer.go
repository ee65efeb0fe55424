package frame

import "time"

// EventType names the table operation that produced an event
type EventType string

const (
	EventTransform EventType = "transform"
	EventFilter    EventType = "filter"
	EventAggregate EventType = "aggregate"
	EventIndex     EventType = "index"
	EventSelect    EventType = "select"
)

// Event describes one completed table operation
type Event struct {
	Type      EventType
	Timestamp time.Time
	Columns   int         // schema width of the source table
	Data      interface{} // operation-specific details
}

// Observer receives an event after each successful table operation
type Observer interface {
	OnEvent(event Event)
}

func (t *Table) emit(typ EventType, details interface{}) {
	if t.observer == nil {
		return
	}
	t.observer.OnEvent(Event{
		Type:      typ,
		Timestamp: time.Now(),
		Columns:   len(t.columns),
		Data:      details,
	})
}
