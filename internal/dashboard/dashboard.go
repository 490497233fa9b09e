// Package dashboard serves a single-page live view of session events
// over a websocket, for bring-up diagnostics. Grounded on the
// api.Server HTTP wiring shape (ServeMux, withLogging, graceful
// Shutdown) with the request handling replaced by a websocket hub.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/crypto/bcrypt"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// Server serves a websocket feed of session events at /events and a
// minimal status page at /.
type Server struct {
	address    string
	port       int
	tokenHash  []byte // nil when authentication is disabled
	logger     *slog.Logger
	httpServer *http.Server

	upgrader websocket.Upgrader

	// snapshot, if set, supplies recently dispatched events to push to
	// a client immediately after it connects, so a newly opened
	// dashboard tab does not start on a blank feed.
	snapshot func() []wpaevent.EventRecord

	mu      sync.Mutex
	clients map[*client]struct{}
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New creates a dashboard server. If token is non-empty, clients must
// present it as a "token" query parameter or "Authorization: Bearer
// <token>" header; it is compared against a bcrypt hash computed once
// at construction time, never stored or logged in plaintext.
func New(address string, port int, token string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		address: address,
		port:    port,
		logger:  logger,
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	if token != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("dashboard: hash token: %w", err)
		}
		s.tokenHash = hash
	}
	return s, nil
}

// SetSnapshotSource installs a function returning recently dispatched
// events, pushed to each client right after it connects. Takes a plain
// function rather than a session.Manager so this package never imports
// internal/session; callers typically pass mgr.RecentEvents.
func (s *Server) SetSnapshotSource(fn func() []wpaevent.EventRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = fn
}

// eventMessage is the JSON shape streamed to each connected client.
type eventMessage struct {
	Time       time.Time         `json:"time"`
	Priority   int               `json:"priority"`
	Kind       string            `json:"kind"`
	Positional []string          `json:"positional,omitempty"`
	Named      map[string]string `json:"named,omitempty"`
}

// Broadcast fans rec out to every connected websocket client. Intended
// to be registered as a session listener callback; never blocks on a
// slow client, dropping the message for that client instead.
func (s *Server) Broadcast(rec wpaevent.EventRecord) {
	payload, err := encodeEvent(rec)
	if err != nil {
		s.logger.Error("dashboard marshal event", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- payload:
		default:
			s.logger.Warn("dashboard client send buffer full, dropping event")
		}
	}
}

func encodeEvent(rec wpaevent.EventRecord) ([]byte, error) {
	msg := eventMessage{
		Time:       time.Now(),
		Priority:   int(rec.Priority),
		Kind:       rec.Kind.String(),
		Positional: rec.Positional,
	}
	if len(rec.Named) > 0 {
		msg.Named = make(map[string]string, len(rec.Named))
		for _, p := range rec.Named {
			msg.Named[p.Key] = p.Value
		}
	}
	return json.Marshal(msg)
}

// Handler builds the server's http.Handler. Exposed separately from
// Start so tests can drive it with httptest.NewServer without binding
// a real port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleRoot)
	mux.HandleFunc("GET /events", s.handleEvents)
	return s.withLogging(mux)
}

// Start runs the HTTP server until ctx is cancelled or the server
// fails. Shutdown is graceful on context cancellation.
func (s *Server) Start(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // streaming websocket connections
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting dashboard server", "address", s.address, "port", s.port)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("dashboard request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "p2pctl dashboard: connect to /events for a live JSON event stream")
}

func (s *Server) authorized(r *http.Request) bool {
	if s.tokenHash == nil {
		return true
	}
	presented := r.URL.Query().Get("token")
	if presented == "" {
		const prefix = "Bearer "
		auth := r.Header.Get("Authorization")
		if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
			presented = auth[len(prefix):]
		}
	}
	if presented == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.tokenHash, []byte(presented)) == nil
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("dashboard websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 64)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	snapshot := s.snapshot
	s.mu.Unlock()

	if snapshot != nil {
		for _, rec := range snapshot() {
			if payload, err := encodeEvent(rec); err == nil {
				c.send <- payload
			}
		}
	}

	go s.writeLoop(c)
	s.readLoop(c)
}

// readLoop discards inbound messages (this is a push-only feed) and
// exists only to detect client disconnects via ReadMessage's error.
func (s *Server) readLoop(c *client) {
	defer s.removeClient(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	if _, ok := s.clients[c]; ok {
		delete(s.clients, c)
		close(c.send)
	}
	s.mu.Unlock()
}
