package recycler

import "fmt"

// NotificationKind identifies the variant of a structural notification.
type NotificationKind uint8

const (
	// KindFullReset invalidates every position and view type.
	KindFullReset NotificationKind = iota
	KindRangeInserted
	KindRangeRemoved
	KindRangeChanged
	KindMoved
)

func (k NotificationKind) String() string {
	switch k {
	case KindFullReset:
		return "FullReset"
	case KindRangeInserted:
		return "RangeInserted"
	case KindRangeRemoved:
		return "RangeRemoved"
	case KindRangeChanged:
		return "RangeChanged"
	case KindMoved:
		return "Moved"
	default:
		return fmt.Sprintf("NotificationKind(%d)", uint8(k))
	}
}

// Notification describes one structural change of an adapter. Range variants
// use Start and Count; Moved uses From and To.
type Notification struct {
	Kind  NotificationKind
	Start int
	Count int
	From  int
	To    int
}

// FullReset returns a notification invalidating the whole list.
func FullReset() Notification {
	return Notification{Kind: KindFullReset}
}

// RangeInserted returns a notification for count items inserted at start.
func RangeInserted(start, count int) Notification {
	return Notification{Kind: KindRangeInserted, Start: start, Count: count}
}

// RangeRemoved returns a notification for count items removed at start.
func RangeRemoved(start, count int) Notification {
	return Notification{Kind: KindRangeRemoved, Start: start, Count: count}
}

// RangeChanged returns a notification for count items at start that must be
// bound again.
func RangeChanged(start, count int) Notification {
	return Notification{Kind: KindRangeChanged, Start: start, Count: count}
}

// Moved returns a notification for a single item moved from one position to
// another.
func Moved(from, to int) Notification {
	return Notification{Kind: KindMoved, From: from, To: to}
}

// Shift returns the notification with every position offset by delta. A full
// reset carries no positions and is returned unchanged.
func (n Notification) Shift(delta int) Notification {
	switch n.Kind {
	case KindFullReset:
		return n
	case KindMoved:
		n.From += delta
		n.To += delta
	default:
		n.Start += delta
	}
	return n
}

func (n Notification) String() string {
	switch n.Kind {
	case KindFullReset:
		return "FullReset"
	case KindMoved:
		return fmt.Sprintf("Moved{%d,%d}", n.From, n.To)
	default:
		return fmt.Sprintf("%s{%d,%d}", n.Kind, n.Start, n.Count)
	}
}

// Observer receives structural notifications. Observers run synchronously on
// the goroutine that mutated the adapter and must not mutate the same adapter.
type Observer func(Notification)

type observerEntry struct {
	id int
	fn Observer
}

// observable keeps an ordered set of observers. The zero value is ready to
// use.
type observable struct {
	nextID    int
	observers []observerEntry
}

// Subscribe registers an observer and returns the function that removes it.
// Calling the returned function more than once is harmless.
func (o *observable) Subscribe(observer Observer) (unsubscribe func()) {
	if observer == nil {
		return func() {}
	}
	o.nextID++
	id := o.nextID
	o.observers = append(o.observers, observerEntry{id: id, fn: observer})
	return func() {
		for i, entry := range o.observers {
			if entry.id == id {
				o.observers = append(o.observers[:i:i], o.observers[i+1:]...)
				return
			}
		}
	}
}

func (o *observable) notify(n Notification) {
	for _, entry := range o.observers {
		entry.fn(n)
	}
}

func (o *observable) observerCount() int {
	return len(o.observers)
}
