// Package transport defines the narrow contract the session manager
// requires from a control-socket implementation, plus a concrete
// adapter over a Unix domain datagram socket.
package transport

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by Transport implementations. Callers use
// errors.Is against these values; an implementation may wrap them with
// additional context via fmt.Errorf("...: %w", ...).
var (
	ErrCannotOpen     = errors.New("transport: cannot open control socket")
	ErrAttachFailed   = errors.New("transport: attach failed")
	ErrAttachTimeout  = errors.New("transport: attach timed out")
	ErrReceiveTimeout = errors.New("transport: receive timed out")
	ErrConnectionLost = errors.New("transport: connection lost")
)

// Transport is the contract the session manager consumes from an
// external control-socket library. Open establishes the connection
// that every subsequent call uses; Detach and Close are idempotent.
type Transport interface {
	// Open connects to the control socket at path. Returns
	// ErrCannotOpen on failure.
	Open(ctx context.Context, path string) error

	// Attach subscribes to unsolicited events on the already-open
	// handle. Returns ErrAttachTimeout or ErrAttachFailed on failure.
	Attach(ctx context.Context) error

	// Detach unsubscribes from unsolicited events. Idempotent.
	Detach()

	// Receive blocks until exactly one frame is available, the
	// deadline passes, or the connection is lost. It never delivers a
	// partial frame. Returns ErrReceiveTimeout or ErrConnectionLost.
	Receive(deadline time.Time) (string, error)

	// Send writes a request and returns the single response frame.
	// Provided for completeness; the session manager's drain loop
	// does not call it.
	Send(ctx context.Context, request string) (string, error)

	// Close releases the handle. Idempotent.
	Close() error
}
