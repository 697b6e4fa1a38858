package core

// Event is a fire-and-forget notification for audio/UI collaborators.
type Event interface {
	triplesEvent()
}

// MoveEvent is sent after a top symbol moved into the preview.
type MoveEvent struct {
	Level  int
	From   Position
	Symbol Symbol
}

func (MoveEvent) triplesEvent() {}

// EliminateEvent is sent once per eliminated triple, cascades included.
type EliminateEvent struct {
	Level  int
	Anchor Symbol
	Score  int // Score after this elimination
}

func (EliminateEvent) triplesEvent() {}

// VictoryEvent is sent when the board and the preview are both empty.
type VictoryEvent struct {
	Level int
	Score int
	Moves int
}

func (VictoryEvent) triplesEvent() {}

// TimeoutEvent is sent when the caller reports the level clock ran out.
type TimeoutEvent struct {
	Level int
	Score int
}

func (TimeoutEvent) triplesEvent() {}

// Notifier receives engine events. Implementations must not block.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(e).
func (f NotifierFunc) Notify(e Event) { f(e) }

// Fanout delivers every event to each non-nil notifier in order.
type Fanout []Notifier

// Notify implements Notifier.
func (f Fanout) Notify(e Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(e)
		}
	}
}

type discardNotifier struct{}

func (discardNotifier) Notify(Event) {}
