package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	attachRequest   = "ATTACH"
	detachRequest   = "DETACH"
	okResponse      = "OK"
	maxFrameBytes   = 4096
	defaultAttachTO = 5 * time.Second
)

// CtrlSocket is a Transport implementation over a Unix domain datagram
// socket, matching the wire convention of local wpa_supplicant control
// interfaces: the client binds an ephemeral socket path, sends
// requests as datagrams to the supplicant's socket path, and receives
// unsolicited event datagrams (plus command replies) on its own bound
// path. A single Receive call returns exactly one datagram, which is
// naturally frame-aligned — no internal buffering is required to avoid
// delivering partial frames.
type CtrlSocket struct {
	logger *slog.Logger

	mu         sync.Mutex // serializes Send against itself; Receive owns its own goroutine
	conn       *net.UnixConn
	localPath  string
	remoteAddr *net.UnixAddr
	attached   bool
}

// NewCtrlSocket creates an unopened control-socket transport. Call
// Open to connect.
func NewCtrlSocket(logger *slog.Logger) *CtrlSocket {
	if logger == nil {
		logger = slog.Default()
	}
	return &CtrlSocket{logger: logger}
}

// Open binds an ephemeral local datagram socket in the same directory
// as the remote socket (wpa_supplicant requires same-directory peers
// on most platforms) and records the remote address for subsequent
// sends.
func (c *CtrlSocket) Open(ctx context.Context, path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return fmt.Errorf("%w: already open", ErrCannotOpen)
	}

	remote, err := net.ResolveUnixAddr("unixgram", path)
	if err != nil {
		return fmt.Errorf("%w: resolve remote address: %v", ErrCannotOpen, err)
	}

	localPath := filepath.Join(filepath.Dir(path), fmt.Sprintf("p2pctl-%d.sock", os.Getpid()))
	_ = os.Remove(localPath)

	local, err := net.ResolveUnixAddr("unixgram", localPath)
	if err != nil {
		return fmt.Errorf("%w: resolve local address: %v", ErrCannotOpen, err)
	}

	conn, err := net.ListenUnixgram("unixgram", local)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}

	c.conn = conn
	c.localPath = localPath
	c.remoteAddr = remote
	c.logger.Debug("control socket opened", "remote", path, "local", localPath)
	return nil
}

// Attach sends ATTACH and waits for the OK reply.
func (c *CtrlSocket) Attach(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("%w: not open", ErrAttachFailed)
	}

	resp, err := c.Send(ctx, attachRequest)
	if err != nil {
		if errors.Is(err, ErrReceiveTimeout) {
			return fmt.Errorf("%w: %v", ErrAttachTimeout, err)
		}
		return fmt.Errorf("%w: %v", ErrAttachFailed, err)
	}
	if resp != okResponse {
		return fmt.Errorf("%w: unexpected reply %q", ErrAttachFailed, resp)
	}

	c.mu.Lock()
	c.attached = true
	c.mu.Unlock()
	return nil
}

// Detach sends DETACH best-effort. Idempotent.
func (c *CtrlSocket) Detach() {
	c.mu.Lock()
	attached := c.attached
	c.attached = false
	c.mu.Unlock()

	if !attached {
		return
	}
	_, _ = c.Send(context.Background(), detachRequest)
}

// Receive blocks for one datagram or until deadline. A zero deadline
// blocks indefinitely.
func (c *CtrlSocket) Receive(deadline time.Time) (string, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return "", fmt.Errorf("%w: not open", ErrConnectionLost)
	}

	if !deadline.IsZero() {
		if err := conn.SetReadDeadline(deadline); err != nil {
			return "", fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}
	} else {
		_ = conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, maxFrameBytes)
	n, _, err := conn.ReadFromUnix(buf)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return "", ErrReceiveTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrConnectionLost, err)
	}
	return string(buf[:n]), nil
}

// Send writes request as a single datagram to the remote socket and
// waits for exactly one reply datagram.
func (c *CtrlSocket) Send(ctx context.Context, request string) (string, error) {
	c.mu.Lock()
	conn := c.conn
	remote := c.remoteAddr
	c.mu.Unlock()
	if conn == nil {
		return "", fmt.Errorf("%w: not open", ErrConnectionLost)
	}

	if _, err := conn.WriteToUnix([]byte(request), remote); err != nil {
		return "", fmt.Errorf("%w: write: %v", ErrConnectionLost, err)
	}

	deadline := time.Now().Add(defaultAttachTO)
	if ctxDeadline, ok := ctx.Deadline(); ok {
		deadline = ctxDeadline
	}
	return c.Receive(deadline)
}

// Close releases the underlying socket and removes the ephemeral
// local socket file. Idempotent.
func (c *CtrlSocket) Close() error {
	c.mu.Lock()
	conn := c.conn
	localPath := c.localPath
	c.conn = nil
	c.attached = false
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	err := conn.Close()
	if localPath != "" {
		_ = os.Remove(localPath)
	}
	if err != nil {
		return fmt.Errorf("close control socket: %w", err)
	}
	return nil
}
