package game

type EventKind int

const (
	EventSpawned EventKind = iota
	EventLocked
	EventCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventCleared:
		return "cleared"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event reports a change in the session. Rows is set for EventCleared.
type Event struct {
	Kind  EventKind
	Piece Piece
	Rows  int
}

// Subscribe registers fn to receive events. Events are buffered while
// systems run and delivered in order by Flush, which the Scheduler calls at
// the end of every frame.
func (s *Session) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// Flush delivers buffered events to the subscribers and empties the buffer.
func (s *Session) Flush() {
	// Listeners may act on the session and queue further events.
	for len(s.events) > 0 {
		pending := s.events
		s.events = nil
		for _, e := range pending {
			for _, fn := range s.listeners {
				fn(e)
			}
		}
	}
}
