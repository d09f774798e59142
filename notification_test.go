package recycler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationShift(t *testing.T) {
	tests := []struct {
		name  string
		in    Notification
		delta int
		want  Notification
	}{
		{"inserted", RangeInserted(0, 3), 2, RangeInserted(2, 3)},
		{"removed", RangeRemoved(4, 1), 1, RangeRemoved(5, 1)},
		{"changed", RangeChanged(1, 5), 3, RangeChanged(4, 5)},
		{"moved shifts both ends", Moved(0, 4), 2, Moved(2, 6)},
		{"full reset unchanged", FullReset(), 7, FullReset()},
		{"zero delta", RangeInserted(3, 1), 0, RangeInserted(3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Shift(tt.delta))
		})
	}
}

func TestNotificationString(t *testing.T) {
	assert.Equal(t, "FullReset", FullReset().String())
	assert.Equal(t, "RangeInserted{2,3}", RangeInserted(2, 3).String())
	assert.Equal(t, "Moved{1,4}", Moved(1, 4).String())
	assert.Equal(t, "NotificationKind(42)", NotificationKind(42).String())
}

func TestObservableSubscribe(t *testing.T) {
	var o observable
	var first, second []Notification

	unsubscribeFirst := o.Subscribe(func(n Notification) { first = append(first, n) })
	o.Subscribe(func(n Notification) { second = append(second, n) })
	require.Equal(t, 2, o.observerCount())

	o.notify(RangeInserted(0, 1))
	unsubscribeFirst()
	unsubscribeFirst()
	o.notify(RangeRemoved(0, 1))

	assert.Equal(t, []Notification{RangeInserted(0, 1)}, first)
	assert.Equal(t, []Notification{RangeInserted(0, 1), RangeRemoved(0, 1)}, second)
	assert.Equal(t, 1, o.observerCount())
}

func TestObservableNilObserver(t *testing.T) {
	var o observable
	unsubscribe := o.Subscribe(nil)
	assert.Zero(t, o.observerCount())
	assert.NotPanics(t, unsubscribe)
}

// recorder collects the notifications of an adapter.
type recorder struct {
	got []Notification
}

func record(a Adapter) *recorder {
	r := &recorder{}
	a.Subscribe(func(n Notification) { r.got = append(r.got, n) })
	return r
}

func (r *recorder) take() []Notification {
	got := r.got
	r.got = nil
	return got
}
