package session

import (
	"time"

	"github.com/wpasession/p2pctl/internal/cotask"
	"github.com/wpasession/p2pctl/internal/dispatch"
	"github.com/wpasession/p2pctl/internal/eventsource"
	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// NoTimeout passed to WaitForMessage/WaitForMessages means wait
// indefinitely (no dispatcher timer is armed).
const NoTimeout time.Duration = -1

// WaitForMessage returns a task that completes with the next event of
// the given kind, or times out after timeout (NoTimeout for none).
func (m *Manager) WaitForMessage(kind wpaevent.MessageKind, timeout time.Duration) *cotask.Task[wpaevent.EventRecord] {
	return m.WaitForMessages([]wpaevent.MessageKind{kind}, timeout)
}

// WaitForMessages returns a task that completes with the next event
// whose kind is in kinds, or times out after timeout.
//
// Implements §4.5: registers against the internal event source; if
// the fired event doesn't match the filter, re-registers for the next
// fire instead of completing. A timeout arms a dispatcher timer that
// transitions the task to TimedOut and removes it from the event
// source's awaiter list. If the caller abandons the task (calls
// Cancel directly, or simply drops it and it is garbage collected
// after some other path reaches a terminal state), the task's delete
// listener performs the same cleanup, so an abandoned wait never
// leaks an awaiter slot.
func (m *Manager) WaitForMessages(kinds []wpaevent.MessageKind, timeout time.Duration) *cotask.Task[wpaevent.EventRecord] {
	task := cotask.New[wpaevent.EventRecord]()
	filter := newFilter(kinds)

	var esHandle eventsource.Handle
	var timerHandle dispatch.Handle
	hasTimer := false

	var onEvent func(rec wpaevent.EventRecord, err error)
	onEvent = func(rec wpaevent.EventRecord, err error) {
		if err != nil {
			task.Cancel()
			return
		}
		if _, ok := filter[rec.Kind]; !ok {
			esHandle = m.eventSource.Wait(onEvent)
			return
		}
		if hasTimer {
			m.dispatcher.CancelTimer(timerHandle)
		}
		task.Complete(rec)
	}

	esHandle = m.eventSource.Wait(onEvent)

	if timeout >= 0 {
		hasTimer = true
		timerHandle = m.dispatcher.AddTimer(timeout, func() {
			m.eventSource.Remove(esHandle)
			task.TimeOut()
		})
	}

	task.AddDeleteListener(func() {
		m.eventSource.Remove(esHandle)
		if hasTimer {
			m.dispatcher.CancelTimer(timerHandle)
		}
	})

	return task
}
