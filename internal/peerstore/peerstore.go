// Package peerstore persists a diagnostic history of discovered and
// connected P2P peers to a local SQLite database, for operator
// inspection across process restarts. This is history for humans, not
// the "listener state" the core spec excludes from persistence — no
// callback registration survives here, only peer facts.
package peerstore

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/emersion/go-vcard"
	_ "modernc.org/sqlite"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// Peer is one row of the known-peers table.
type Peer struct {
	MAC               string
	DeviceName        string
	PrimaryDeviceType string
	FirstSeen         time.Time
	LastSeen          time.Time
	ConnectCount      int
}

// LastSeenHumanized renders LastSeen as a relative duration, e.g.
// "3 minutes ago".
func (p Peer) LastSeenHumanized() string {
	return humanize.Time(p.LastSeen)
}

// Store manages peer history persistence in SQLite.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or reopens a peer store at dbPath.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("peerstore: open database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("peerstore: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS peers (
			mac TEXT PRIMARY KEY,
			device_name TEXT,
			primary_device_type TEXT,
			first_seen TEXT NOT NULL,
			last_seen TEXT NOT NULL,
			connect_count INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_peers_last_seen ON peers(last_seen);
	`)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// HandleEvent observes P2P-DEVICE-FOUND, P2P-DEVICE-LOST,
// CTRL-EVENT-CONNECTED, and CTRL-EVENT-DISCONNECTED events, wired as a
// session listener. Unrecognized kinds and events with no extractable
// MAC address are ignored.
func (s *Store) HandleEvent(rec wpaevent.EventRecord) {
	mac := extractMAC(rec)
	if mac == "" {
		return
	}

	now := time.Now()
	switch rec.Kind {
	case wpaevent.KindP2pDeviceFound:
		if err := s.recordSeen(mac, unquote(rec.GetNamed("name")), rec.GetNamed("pri_dev_type"), now); err != nil {
			s.logger.Warn("peerstore: record seen failed", "mac", mac, "error", err)
		}
	case wpaevent.KindCtrlEventConnected:
		if err := s.recordConnected(mac, now); err != nil {
			s.logger.Warn("peerstore: record connected failed", "mac", mac, "error", err)
		}
	case wpaevent.KindP2pDeviceLost, wpaevent.KindCtrlEventDisconnected:
		// No dedicated column for "last lost"; last_seen already
		// covers the diagnostic need ("when did we last hear from
		// this peer at all").
	}
}

func (s *Store) recordSeen(mac, deviceName, primaryDeviceType string, when time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO peers (mac, device_name, primary_device_type, first_seen, last_seen, connect_count)
		VALUES (?, ?, ?, ?, ?, 0)
		ON CONFLICT(mac) DO UPDATE SET
			device_name = excluded.device_name,
			primary_device_type = excluded.primary_device_type,
			last_seen = excluded.last_seen
	`, mac, deviceName, primaryDeviceType, when.UTC().Format(time.RFC3339), when.UTC().Format(time.RFC3339))
	return err
}

func (s *Store) recordConnected(mac string, when time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO peers (mac, first_seen, last_seen, connect_count)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(mac) DO UPDATE SET
			last_seen = excluded.last_seen,
			connect_count = connect_count + 1
	`, mac, when.UTC().Format(time.RFC3339), when.UTC().Format(time.RFC3339))
	return err
}

// ListPeers returns all known peers ordered by most recently seen.
func (s *Store) ListPeers() ([]Peer, error) {
	rows, err := s.db.Query(`
		SELECT mac, device_name, primary_device_type, first_seen, last_seen, connect_count
		FROM peers ORDER BY last_seen DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("peerstore: list peers: %w", err)
	}
	defer rows.Close()

	var peers []Peer
	for rows.Next() {
		var p Peer
		var firstSeen, lastSeen string
		if err := rows.Scan(&p.MAC, &p.DeviceName, &p.PrimaryDeviceType, &firstSeen, &lastSeen, &p.ConnectCount); err != nil {
			return nil, fmt.Errorf("peerstore: scan peer: %w", err)
		}
		p.FirstSeen, _ = time.Parse(time.RFC3339, firstSeen)
		p.LastSeen, _ = time.Parse(time.RFC3339, lastSeen)
		peers = append(peers, p)
	}
	return peers, rows.Err()
}

// ExportVCard renders every known peer as a vCard 4.0 entry, one per
// device, so the peer directory can be imported into an address book
// for field diagnostics.
func (s *Store) ExportVCard(w io.Writer) error {
	peers, err := s.ListPeers()
	if err != nil {
		return err
	}

	enc := vcard.NewEncoder(w)
	for _, p := range peers {
		card := make(vcard.Card)
		name := p.DeviceName
		if name == "" {
			name = p.MAC
		}
		card.SetValue("FN", name)
		card.SetValue("UID", "mac:"+p.MAC)
		if p.PrimaryDeviceType != "" {
			card.SetValue("KIND", "device")
			card.AddValue("NOTE", "primary device type: "+p.PrimaryDeviceType)
		}
		card.AddValue("NOTE", fmt.Sprintf("first seen %s, last seen %s, connected %d time(s)",
			p.FirstSeen.Format(time.RFC3339), p.LastSeen.Format(time.RFC3339), p.ConnectCount))
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("peerstore: encode vcard for %s: %w", p.MAC, err)
		}
	}
	return nil
}

func extractMAC(rec wpaevent.EventRecord) string {
	if addr := unquote(rec.GetNamed("p2p_dev_addr")); looksLikeMAC(addr) {
		return addr
	}
	if len(rec.Positional) > 0 && looksLikeMAC(rec.Positional[0]) {
		return rec.Positional[0]
	}
	return ""
}

func looksLikeMAC(s string) bool {
	return len(s) == 17 && strings.Count(s, ":") == 5
}

// unquote strips a single layer of matching "..." or '...' delimiters,
// as preserved verbatim by the parser's named-parameter values.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
