package peerstore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/wpasession/p2pctl/internal/wpaevent"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "peers.db"), nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func deviceFoundEvent(mac, name, priDevType string) wpaevent.EventRecord {
	return wpaevent.EventRecord{
		Kind: wpaevent.KindP2pDeviceFound,
		Named: []wpaevent.NamedParam{
			{Key: "p2p_dev_addr", Value: mac},
			{Key: "pri_dev_type", Value: priDevType},
			{Key: "name", Value: "'" + name + "'"},
		},
	}
}

func connectedEvent(mac string) wpaevent.EventRecord {
	return wpaevent.EventRecord{
		Kind:       wpaevent.KindCtrlEventConnected,
		Positional: []string{mac},
	}
}

func TestHandleEventRecordsDeviceFound(t *testing.T) {
	s := openTestStore(t)
	s.HandleEvent(deviceFoundEvent("02:11:22:33:44:55", "Pixel 7", "1-0050F204-1"))

	peers, err := s.ListPeers()
	if err != nil {
		t.Fatalf("ListPeers() error: %v", err)
	}
	if len(peers) != 1 {
		t.Fatalf("len(peers) = %d, want 1", len(peers))
	}
	if peers[0].MAC != "02:11:22:33:44:55" {
		t.Errorf("MAC = %q", peers[0].MAC)
	}
	if peers[0].DeviceName != "Pixel 7" {
		t.Errorf("DeviceName = %q, want Pixel 7", peers[0].DeviceName)
	}
	if peers[0].ConnectCount != 0 {
		t.Errorf("ConnectCount = %d, want 0", peers[0].ConnectCount)
	}
}

func TestHandleEventRecordsConnectCount(t *testing.T) {
	s := openTestStore(t)
	mac := "02:11:22:33:44:55"
	s.HandleEvent(deviceFoundEvent(mac, "Pixel 7", "1-0050F204-1"))
	s.HandleEvent(connectedEvent(mac))
	s.HandleEvent(connectedEvent(mac))

	peers, err := s.ListPeers()
	if err != nil {
		t.Fatalf("ListPeers() error: %v", err)
	}
	if len(peers) != 1 {
		t.Fatalf("len(peers) = %d, want 1", len(peers))
	}
	if peers[0].ConnectCount != 2 {
		t.Errorf("ConnectCount = %d, want 2", peers[0].ConnectCount)
	}
	if peers[0].DeviceName != "Pixel 7" {
		t.Errorf("DeviceName = %q, want Pixel 7 (preserved across connect events)", peers[0].DeviceName)
	}
}

func TestHandleEventIgnoresEventsWithoutMAC(t *testing.T) {
	s := openTestStore(t)
	s.HandleEvent(wpaevent.EventRecord{Kind: wpaevent.KindP2pDeviceLost})

	peers, err := s.ListPeers()
	if err != nil {
		t.Fatalf("ListPeers() error: %v", err)
	}
	if len(peers) != 0 {
		t.Errorf("len(peers) = %d, want 0", len(peers))
	}
}

func TestListPeersOrdersByMostRecentlySeen(t *testing.T) {
	s := openTestStore(t)
	s.HandleEvent(deviceFoundEvent("02:00:00:00:00:01", "First", ""))
	s.HandleEvent(deviceFoundEvent("02:00:00:00:00:02", "Second", ""))

	peers, err := s.ListPeers()
	if err != nil {
		t.Fatalf("ListPeers() error: %v", err)
	}
	if len(peers) != 2 {
		t.Fatalf("len(peers) = %d, want 2", len(peers))
	}
	if peers[0].MAC != "02:00:00:00:00:02" {
		t.Errorf("most recent peer = %q, want 02:00:00:00:00:02", peers[0].MAC)
	}
}

func TestExportVCardContainsKnownPeers(t *testing.T) {
	s := openTestStore(t)
	s.HandleEvent(deviceFoundEvent("02:11:22:33:44:55", "Pixel 7", "1-0050F204-1"))

	var sb strings.Builder
	if err := s.ExportVCard(&sb); err != nil {
		t.Fatalf("ExportVCard() error: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, "Pixel 7") {
		t.Errorf("vcard output missing device name: %q", out)
	}
	if !strings.Contains(out, "BEGIN:VCARD") {
		t.Errorf("vcard output missing BEGIN:VCARD: %q", out)
	}
}
