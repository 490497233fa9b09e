package session

import (
	"sync/atomic"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// listenerHandleBase is the fixed starting value for listener
// handles; they are monotonically assigned from here and never
// reused.
const listenerHandleBase = 0x100

// ListenerHandle identifies a registered event listener.
type ListenerHandle uint64

var listenerHandleSeq atomic.Uint64

func nextListenerHandle() ListenerHandle {
	return ListenerHandle(listenerHandleBase + listenerHandleSeq.Add(1) - 1)
}

// ListenerFunc observes one dispatched event record.
type ListenerFunc func(rec wpaevent.EventRecord)

type listenerEntry struct {
	handle   ListenerHandle
	filter   map[wpaevent.MessageKind]struct{}
	callback ListenerFunc
}

// matches reports whether kind passes this listener's filter. A
// listener registered with no kinds (filter is empty) receives every
// event, matching the zero-argument AddEventListener call used for an
// unconditional observer such as the dashboard feed.
func (e listenerEntry) matches(kind wpaevent.MessageKind) bool {
	if len(e.filter) == 0 {
		return true
	}
	_, ok := e.filter[kind]
	return ok
}

func newFilter(kinds []wpaevent.MessageKind) map[wpaevent.MessageKind]struct{} {
	set := make(map[wpaevent.MessageKind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}
