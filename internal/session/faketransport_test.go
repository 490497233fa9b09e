package session

import (
	"context"
	"time"

	"github.com/wpasession/p2pctl/internal/transport"
)

// fakeTransport is a minimal in-memory Transport for exercising the
// session manager without a real control socket.
type fakeTransport struct {
	lines    chan string
	opened   bool
	attached bool
	closed   bool
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{lines: make(chan string, 32)}
}

func (f *fakeTransport) Open(ctx context.Context, path string) error {
	f.opened = true
	return nil
}

func (f *fakeTransport) Attach(ctx context.Context) error {
	f.attached = true
	return nil
}

func (f *fakeTransport) Detach() {}

func (f *fakeTransport) Receive(deadline time.Time) (string, error) {
	var timer <-chan time.Time
	if !deadline.IsZero() {
		d := time.Until(deadline)
		if d < 0 {
			d = 0
		}
		t := time.NewTimer(d)
		defer t.Stop()
		timer = t.C
	}
	select {
	case line, ok := <-f.lines:
		if !ok {
			return "", transport.ErrConnectionLost
		}
		return line, nil
	case <-timer:
		return "", transport.ErrReceiveTimeout
	}
}

func (f *fakeTransport) Send(ctx context.Context, request string) (string, error) {
	return "OK", nil
}

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func (f *fakeTransport) push(line string) {
	f.lines <- line
}

func (f *fakeTransport) lose() {
	close(f.lines)
}
