// Package session implements the session manager: owns one transport
// handle and one listener table, runs the inbound drain loop, and
// classifies and dispatches parsed events to listeners and to
// suspended tasks.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wpasession/p2pctl/internal/dispatch"
	"github.com/wpasession/p2pctl/internal/eventsource"
	"github.com/wpasession/p2pctl/internal/transport"
	"github.com/wpasession/p2pctl/internal/wpaevent"
	"github.com/wpasession/p2pctl/internal/wpaparse"
)

// ErrAlreadyOpen is returned by Open when a handle is already held.
var ErrAlreadyOpen = errors.New("session: already open")

// ErrNotOpen is returned by operations that require an open transport
// while the manager is Closed.
var ErrNotOpen = errors.New("session: not open")

const defaultRecentEvents = 64
const defaultLineBuffer = 256
const defaultReceiveTimeout = 2 * time.Second
const defaultPumpInterval = 50 * time.Millisecond

// Manager is the session manager described in the component design:
// it owns a Transport, a listener table, a ring buffer of recently
// dispatched events for diagnostics, and the internal event source
// that WaitForMessage suspends on.
type Manager struct {
	transport transport.Transport

	mu       sync.Mutex
	state    State
	logLevel LogLevel
	logFn    LogFunc

	listeners    []listenerEntry
	eventSource  *eventsource.Source[wpaevent.EventRecord]
	dispatcher   *dispatch.Dispatcher
	recent       []wpaevent.EventRecord
	recentCursor int

	lines  chan string
	readErrMu sync.Mutex
	readErr   error
}

// New creates a session manager bound to tr, initially Closed.
func New(tr transport.Transport) *Manager {
	return &Manager{
		transport:   tr,
		logLevel:    LogInfo,
		eventSource: eventsource.New[wpaevent.EventRecord](),
		dispatcher:  dispatch.New(nil),
		recent:      make([]wpaevent.EventRecord, 0, defaultRecentEvents),
	}
}

// Dispatcher exposes the manager's dispatcher for StartTask-style
// consumers that need to arm their own timers.
func (m *Manager) Dispatcher() *dispatch.Dispatcher {
	return m.dispatcher
}

// Open opens the transport at path and attaches for unsolicited
// events. Fails with ErrAlreadyOpen if a handle is already held; on
// attach failure the transport is closed and the manager rolls back
// to Closed.
func (m *Manager) Open(ctx context.Context, path string) error {
	m.mu.Lock()
	if m.state != Closed {
		m.mu.Unlock()
		return ErrAlreadyOpen
	}
	m.mu.Unlock()

	if err := m.transport.Open(ctx, path); err != nil {
		return err
	}
	m.mu.Lock()
	m.state = Open
	m.mu.Unlock()

	if err := m.transport.Attach(ctx); err != nil {
		_ = m.transport.Close()
		m.mu.Lock()
		m.state = Closed
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	m.state = Attached
	m.lines = make(chan string, defaultLineBuffer)
	m.mu.Unlock()

	go m.readLoop()

	m.log(LogInfo, fmt.Sprintf("session opened: %s", path))
	return nil
}

// Close detaches (if attached) and closes (if open). Idempotent and
// safe to call unconditionally during teardown.
func (m *Manager) Close() error {
	m.mu.Lock()
	state := m.state
	m.state = Closed
	m.mu.Unlock()

	if state == Closed {
		return nil
	}

	if state == Attached {
		m.transport.Detach()
	}
	err := m.transport.Close()
	m.log(LogInfo, "session closed")
	return err
}

// State returns the manager's current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SetLogLevel sets the minimum level passed to the log callback.
func (m *Manager) SetLogLevel(lvl LogLevel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logLevel = lvl
}

// GetLogLevel returns the current log level filter.
func (m *Manager) GetLogLevel() LogLevel {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logLevel
}

// SetLogCallback installs the diagnostic log sink. Pass nil to
// disable.
func (m *Manager) SetLogCallback(fn LogFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logFn = fn
}

func (m *Manager) log(lvl LogLevel, text string) {
	m.mu.Lock()
	fn := m.logFn
	threshold := m.logLevel
	m.mu.Unlock()
	if fn == nil || lvl < threshold {
		return
	}
	fn(lvl, text)
}

// AddEventListener registers callback to be invoked for every
// dispatched event whose kind is in kinds, or for every event when no
// kinds are given. Returns a fresh handle.
func (m *Manager) AddEventListener(callback ListenerFunc, kinds ...wpaevent.MessageKind) ListenerHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := nextListenerHandle()
	m.listeners = append(m.listeners, listenerEntry{
		handle:   h,
		filter:   newFilter(kinds),
		callback: callback,
	})
	return h
}

// RemoveEventListener removes the entry with the given handle. No-op
// if absent.
func (m *Manager) RemoveEventListener(h ListenerHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.listeners {
		if e.handle == h {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// RecentEvents returns up to n of the most recently dispatched
// events, oldest first. Supplements the core spec with a bounded
// diagnostic ring buffer the original implementation keeps for its
// CLI status dump.
func (m *Manager) RecentEvents(n int) []wpaevent.EventRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 || n > len(m.recent) {
		n = len(m.recent)
	}
	// Once the ring is full, recentCursor indexes the oldest entry.
	ordered := make([]wpaevent.EventRecord, 0, len(m.recent))
	ordered = append(ordered, m.recent[m.recentCursor:]...)
	ordered = append(ordered, m.recent[:m.recentCursor]...)
	out := make([]wpaevent.EventRecord, n)
	copy(out, ordered[len(ordered)-n:])
	return out
}

func (m *Manager) recordRecent(rec wpaevent.EventRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.recent) < defaultRecentEvents {
		m.recent = append(m.recent, rec)
		return
	}
	m.recent[m.recentCursor] = rec
	m.recentCursor = (m.recentCursor + 1) % defaultRecentEvents
}

// fireEvent implements the FireEvent discipline: the listener table is
// snapshotted before iteration so that listeners added or removed
// during dispatch of this event do not affect who observes it.
// Matched listeners run in registration order; panics are recovered
// and logged at Error, never aborting the drain loop. After
// synchronous listener dispatch the record is published to the
// internal event source, resuming any awaiting tasks.
func (m *Manager) fireEvent(rec wpaevent.EventRecord) {
	m.mu.Lock()
	snapshot := make([]listenerEntry, len(m.listeners))
	copy(snapshot, m.listeners)
	m.mu.Unlock()

	for _, e := range snapshot {
		if !e.matches(rec.Kind) {
			continue
		}
		m.invokeListener(e, rec)
	}

	m.recordRecent(rec)
	m.eventSource.Fire(rec)
}

func (m *Manager) invokeListener(e listenerEntry, rec wpaevent.EventRecord) {
	defer func() {
		if r := recover(); r != nil {
			m.log(LogError, fmt.Sprintf("listener %d panicked: %v", e.handle, r))
		}
	}()
	e.callback(rec)
}

// processLine parses one raw line and, on a parsed event, fires it.
// Empty lines are skipped silently; parse failures are logged at Debug
// and discarded, matching ProcessMessage's discipline.
func (m *Manager) processLine(line string) {
	var rec wpaevent.EventRecord
	ok, err := wpaparse.Parse(line, &rec)
	if err != nil {
		m.log(LogDebug, fmt.Sprintf("discarding malformed line %q: %v", line, err))
		return
	}
	if !ok {
		return
	}
	if rec.Kind == wpaevent.Unknown {
		m.log(LogDebug, fmt.Sprintf("unknown event kind %q", rec.RawKind))
	}
	m.log(LogTrace, rec.String())
	m.fireEvent(rec)
}

// readLoop owns the blocking transport read and hands raw lines to
// the pump goroutine over m.lines, a single-producer/single-consumer
// channel that preserves total event ordering. It is the one
// cross-goroutine contract in this design: everything downstream of
// m.lines runs exclusively on whichever goroutine calls Run/PumpOnce.
func (m *Manager) readLoop() {
	defer close(m.lines)
	for {
		line, err := m.transport.Receive(time.Now().Add(defaultReceiveTimeout))
		if err != nil {
			if errors.Is(err, transport.ErrReceiveTimeout) {
				continue
			}
			m.readErrMu.Lock()
			m.readErr = err
			m.readErrMu.Unlock()
			m.log(LogWarning, fmt.Sprintf("drain loop stopping: %v", err))
			return
		}
		m.lines <- line
	}
}

// ReadError returns the error that stopped the read loop, if any.
func (m *Manager) ReadError() error {
	m.readErrMu.Lock()
	defer m.readErrMu.Unlock()
	return m.readErr
}

// PumpOnce drains at most one available line (if any) and then runs
// one dispatcher iteration. Returns true if any work was performed.
func (m *Manager) PumpOnce() bool {
	did := false
	select {
	case line, ok := <-m.lines:
		if ok {
			m.processLine(line)
			did = true
		}
	default:
	}
	if m.dispatcher.PumpMessages() {
		did = true
	}
	return did
}

// Run pumps until ctx is cancelled or the transport reports a
// terminal error. It is the application's main loop once listeners
// and tasks have been registered.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(defaultPumpInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-m.lines:
			if !ok {
				return m.ReadError()
			}
			m.processLine(line)
			m.dispatcher.PumpMessages()
		case <-ticker.C:
			m.dispatcher.PumpMessages()
		}
	}
}

// StartTask posts fn onto the dispatcher's run queue.
func (m *Manager) StartTask(fn func()) dispatch.Handle {
	return m.dispatcher.Post(fn)
}

// Quiescent reports whether the dispatcher has no pending work and
// the drain loop has no buffered lines waiting.
func (m *Manager) Quiescent() bool {
	return m.dispatcher.Quiescent() && len(m.lines) == 0
}
