//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_observer.go -package=mocks
package domain

// Closed set of attribute-change kinds an entity can report. Observers
// switch on these instead of knowing concrete entity types.
type StringWhat int32

const (
	StringName StringWhat = iota + 1
	StringPersonalStatus
	StringRoomName
	StringRoomSubject
)

type IntWhat int32

const (
	IntStatus IntWhat = iota + 1
	IntWindowFocus
)

type RefWhat int32

const (
	RefAvatar RefWhat = iota + 1
)

// Observer receives synchronous attribute-change callbacks from entities it
// registered with. Implementations must not block; they run on the notifying
// goroutine.
type Observer interface {
	ObserveString(what StringWhat, value string)
	ObserveInteger(what IntWhat, value int32)
	ObserveRef(what RefWhat, value any)
}

// Notifier is the subscriber list embedded by observable entities.
// Fan-out is synchronous and follows registration order.
type Notifier struct {
	observers []Observer
}

func (n *Notifier) RegisterObserver(o Observer) {
	if o == nil {
		return
	}
	n.observers = append(n.observers, o)
}

func (n *Notifier) UnregisterObserver(o Observer) {
	for i, registered := range n.observers {
		if registered == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

func (n *Notifier) NotifyString(what StringWhat, value string) {
	for _, o := range n.observers {
		o.ObserveString(what, value)
	}
}

func (n *Notifier) NotifyInteger(what IntWhat, value int32) {
	for _, o := range n.observers {
		o.ObserveInteger(what, value)
	}
}

func (n *Notifier) NotifyRef(what RefWhat, value any) {
	for _, o := range n.observers {
		o.ObserveRef(what, value)
	}
}
