package mqttsink

import (
	"testing"

	"github.com/wpasession/p2pctl/internal/config"
	"github.com/wpasession/p2pctl/internal/wpaevent"
)

func TestNewDeviceInfo(t *testing.T) {
	d := NewDeviceInfo("instance-1", "p2pctl-client")
	if len(d.Identifiers) != 1 || d.Identifiers[0] != "instance-1" {
		t.Errorf("Identifiers = %v, want [instance-1]", d.Identifiers)
	}
	if d.Name != "p2pctl-client" {
		t.Errorf("Name = %q, want p2pctl-client", d.Name)
	}
}

func TestSinkTopicPaths(t *testing.T) {
	cfg := config.MQTTConfig{BaseTopic: "p2pctl", DiscoveryPrefix: "homeassistant"}
	s := New(cfg, "abc123", nil)

	if got, want := s.availabilityTopic(), "p2pctl/abc123/availability"; got != want {
		t.Errorf("availabilityTopic() = %q, want %q", got, want)
	}
	if got, want := s.stateTopic("peer_count"), "p2pctl/abc123/peer_count/state"; got != want {
		t.Errorf("stateTopic() = %q, want %q", got, want)
	}
	if got, want := s.discoveryTopic("sensor", "peer_count"), "homeassistant/sensor/abc123/peer_count/config"; got != want {
		t.Errorf("discoveryTopic() = %q, want %q", got, want)
	}
}

func TestSinkSensorDefinitionsIncludeExpectedEntities(t *testing.T) {
	s := New(config.MQTTConfig{BaseTopic: "p2pctl", DiscoveryPrefix: "homeassistant"}, "abc123", nil)
	defs := s.sensorDefinitions()

	want := map[string]bool{"peer_count": false, "link_state": false, "last_event": false}
	for _, d := range defs {
		if _, ok := want[d.entitySuffix]; ok {
			want[d.entitySuffix] = true
		}
	}
	for suffix, found := range want {
		if !found {
			t.Errorf("sensorDefinitions() missing entity %q", suffix)
		}
	}
}

func TestHandleEventTracksPeerCountAndLinkState(t *testing.T) {
	s := New(config.MQTTConfig{BaseTopic: "p2pctl"}, "abc123", nil)

	s.HandleEvent(wpaevent.EventRecord{
		Kind: wpaevent.KindP2pDeviceFound,
		Named: []wpaevent.NamedParam{
			{Key: "p2p_dev_addr", Value: "02:11:22:33:44:55"},
		},
	})
	s.HandleEvent(wpaevent.EventRecord{
		Kind: wpaevent.KindP2pDeviceFound,
		Named: []wpaevent.NamedParam{
			{Key: "p2p_dev_addr", Value: "02:11:22:33:44:66"},
		},
	})

	s.mu.Lock()
	count := len(s.peers)
	s.mu.Unlock()
	if count != 2 {
		t.Fatalf("peer count = %d, want 2", count)
	}

	s.HandleEvent(wpaevent.EventRecord{
		Kind: wpaevent.KindP2pDeviceLost,
		Named: []wpaevent.NamedParam{
			{Key: "p2p_dev_addr", Value: "02:11:22:33:44:55"},
		},
	})
	s.mu.Lock()
	count = len(s.peers)
	s.mu.Unlock()
	if count != 1 {
		t.Errorf("peer count after lost = %d, want 1", count)
	}

	s.HandleEvent(wpaevent.EventRecord{Kind: wpaevent.KindCtrlEventConnected})
	s.mu.Lock()
	state := s.linkState
	s.mu.Unlock()
	if state != "connected" {
		t.Errorf("linkState = %q, want connected", state)
	}

	s.HandleEvent(wpaevent.EventRecord{Kind: wpaevent.KindCtrlEventDisconnected})
	s.mu.Lock()
	state = s.linkState
	s.mu.Unlock()
	if state != "disconnected" {
		t.Errorf("linkState = %q, want disconnected", state)
	}
}

func TestHandleEventWithoutConnectionDoesNotPanic(t *testing.T) {
	s := New(config.MQTTConfig{BaseTopic: "p2pctl"}, "abc123", nil)
	s.HandleEvent(wpaevent.EventRecord{Kind: wpaevent.KindCtrlEventConnected})
}
