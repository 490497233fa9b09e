// Package mqttsink bridges session events to a Home Assistant MQTT
// broker via discovery-style sensors: peer_count, last_event, and
// link_state. It is wired into a session.Manager the same way
// internal/peerstore is, as a plain listener callback, so the
// dependency runs one way (mqttsink imports wpaevent, not session).
package mqttsink

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/eclipse/paho.golang/autopaho"
	"github.com/eclipse/paho.golang/paho"

	"github.com/wpasession/p2pctl/internal/config"
	"github.com/wpasession/p2pctl/internal/wpaevent"
)

// Sink manages the MQTT connection and publishes peer/link state
// derived from session events.
type Sink struct {
	cfg        config.MQTTConfig
	instanceID string
	device     DeviceInfo
	logger     *slog.Logger

	cm *autopaho.ConnectionManager

	mu        sync.Mutex
	peers     map[string]struct{}
	lastEvent string
	linkState string
}

// New creates a Sink but does not connect. Call Start to begin
// publishing. A nil logger defaults to slog.Default().
func New(cfg config.MQTTConfig, instanceID string, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{
		cfg:        cfg,
		instanceID: instanceID,
		device:     NewDeviceInfo(instanceID, cfg.ClientID),
		logger:     logger,
		peers:      make(map[string]struct{}),
		linkState:  "idle",
	}
}

// Start connects to the configured broker and publishes discovery
// config plus an "online" availability message. It blocks until ctx is
// cancelled, reconnecting in the background via autopaho as needed.
func (s *Sink) Start(ctx context.Context) error {
	brokerURL, err := url.Parse(s.cfg.BrokerURL)
	if err != nil {
		return fmt.Errorf("mqttsink: parse broker url: %w", err)
	}

	availTopic := s.availabilityTopic()

	pahoCfg := autopaho.ClientConfig{
		ServerUrls:      []*url.URL{brokerURL},
		KeepAlive:       30,
		ConnectUsername: s.cfg.Username,
		ConnectPassword: []byte(s.cfg.Password),
		WillMessage: &paho.WillMessage{
			Topic:   availTopic,
			Payload: []byte("offline"),
			QoS:     1,
			Retain:  true,
		},
		OnConnectionUp: func(cm *autopaho.ConnectionManager, _ *paho.Connack) {
			s.logger.Info("mqttsink connected to broker", "broker", s.cfg.BrokerURL)
			publishCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.publishDiscovery(publishCtx, cm)
			s.publishAvailability(publishCtx, cm, "online")
			s.publishStates(publishCtx)
		},
		OnConnectError: func(err error) {
			s.logger.Warn("mqttsink connection error", "error", err)
		},
		ClientConfig: paho.ClientConfig{
			ClientID: s.cfg.ClientID,
		},
	}

	if brokerURL.Scheme == "mqtts" || brokerURL.Scheme == "ssl" {
		pahoCfg.TlsCfg = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	cm, err := autopaho.NewConnection(ctx, pahoCfg)
	if err != nil {
		return fmt.Errorf("mqttsink: connect: %w", err)
	}
	s.mu.Lock()
	s.cm = cm
	s.mu.Unlock()

	connCtx, connCancel := context.WithTimeout(ctx, 30*time.Second)
	defer connCancel()
	if err := cm.AwaitConnection(connCtx); err != nil {
		s.logger.Warn("mqttsink initial connection timed out, will retry in background", "error", err)
	}

	<-ctx.Done()
	return nil
}

// Stop publishes an "offline" availability message and disconnects.
func (s *Sink) Stop(ctx context.Context) error {
	s.mu.Lock()
	cm := s.cm
	s.mu.Unlock()
	if cm == nil {
		return nil
	}
	s.publishAvailability(ctx, cm, "offline")
	return cm.Disconnect(ctx)
}

// HandleEvent observes session events and republishes the derived
// peer_count / link_state / last_event sensors. Registered as a plain
// session listener callback from the command entry point.
func (s *Sink) HandleEvent(rec wpaevent.EventRecord) {
	s.mu.Lock()
	switch rec.Kind {
	case wpaevent.KindP2pDeviceFound:
		if mac := positionalOrNamed(rec, "p2p_dev_addr"); mac != "" {
			s.peers[mac] = struct{}{}
		}
	case wpaevent.KindP2pDeviceLost:
		if mac := positionalOrNamed(rec, "p2p_dev_addr"); mac != "" {
			delete(s.peers, mac)
		}
	case wpaevent.KindCtrlEventConnected:
		s.linkState = "connected"
	case wpaevent.KindCtrlEventDisconnected:
		s.linkState = "disconnected"
	}
	s.lastEvent = rec.Kind.String()
	s.mu.Unlock()

	s.mu.Lock()
	cm := s.cm
	s.mu.Unlock()
	if cm == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.publishStates(ctx)
}

func positionalOrNamed(rec wpaevent.EventRecord, namedKey string) string {
	if v := rec.GetNamed(namedKey); v != "" {
		return v
	}
	if len(rec.Positional) > 0 {
		return rec.Positional[0]
	}
	return ""
}

func (s *Sink) baseTopic() string {
	return s.cfg.BaseTopic + "/" + s.instanceID
}

func (s *Sink) availabilityTopic() string {
	return s.baseTopic() + "/availability"
}

func (s *Sink) stateTopic(entity string) string {
	return s.baseTopic() + "/" + entity + "/state"
}

func (s *Sink) discoveryTopic(component, entity string) string {
	return s.cfg.DiscoveryPrefix + "/" + component + "/" + s.instanceID + "/" + entity + "/config"
}

type sensorDef struct {
	entitySuffix string
	config       SensorConfig
}

func (s *Sink) sensorDefinitions() []sensorDef {
	avail := s.availabilityTopic()
	return []sensorDef{
		{
			entitySuffix: "peer_count",
			config: SensorConfig{
				Name:              "Peer Count",
				ObjectID:          "peer_count",
				HasEntityName:     true,
				UniqueID:          s.instanceID + "_peer_count",
				StateTopic:        s.stateTopic("peer_count"),
				AvailabilityTopic: avail,
				Device:            s.device,
				Icon:              "mdi:wifi",
				StateClass:        "measurement",
			},
		},
		{
			entitySuffix: "link_state",
			config: SensorConfig{
				Name:              "Link State",
				ObjectID:          "link_state",
				HasEntityName:     true,
				UniqueID:          s.instanceID + "_link_state",
				StateTopic:        s.stateTopic("link_state"),
				AvailabilityTopic: avail,
				Device:            s.device,
				Icon:              "mdi:access-point-network",
			},
		},
		{
			entitySuffix: "last_event",
			config: SensorConfig{
				Name:              "Last Event",
				ObjectID:          "last_event",
				HasEntityName:     true,
				UniqueID:          s.instanceID + "_last_event",
				StateTopic:        s.stateTopic("last_event"),
				AvailabilityTopic: avail,
				Device:            s.device,
				Icon:              "mdi:history",
				EntityCategory:    "diagnostic",
			},
		},
	}
}

func (s *Sink) publishDiscovery(ctx context.Context, cm *autopaho.ConnectionManager) {
	for _, def := range s.sensorDefinitions() {
		topic := s.discoveryTopic("sensor", def.entitySuffix)
		payload, err := json.Marshal(def.config)
		if err != nil {
			s.logger.Error("mqttsink marshal discovery payload", "entity", def.entitySuffix, "error", err)
			continue
		}
		if _, err := cm.Publish(ctx, &paho.Publish{
			Topic:   topic,
			Payload: payload,
			QoS:     1,
			Retain:  true,
		}); err != nil {
			s.logger.Warn("mqttsink discovery publish failed", "entity", def.entitySuffix, "error", err)
		}
	}
}

func (s *Sink) publishAvailability(ctx context.Context, cm *autopaho.ConnectionManager, status string) {
	if _, err := cm.Publish(ctx, &paho.Publish{
		Topic:   s.availabilityTopic(),
		Payload: []byte(status),
		QoS:     1,
		Retain:  true,
	}); err != nil {
		s.logger.Warn("mqttsink availability publish failed", "status", status, "error", err)
	}
}

func (s *Sink) publishStates(ctx context.Context) {
	s.mu.Lock()
	cm := s.cm
	peerCount := len(s.peers)
	linkState := s.linkState
	lastEvent := s.lastEvent
	s.mu.Unlock()
	if cm == nil {
		return
	}

	states := map[string]string{
		"peer_count": strconv.Itoa(peerCount),
		"link_state": linkState,
		"last_event": lastEvent,
	}
	for entity, value := range states {
		if _, err := cm.Publish(ctx, &paho.Publish{
			Topic:   s.stateTopic(entity),
			Payload: []byte(value),
			QoS:     0,
			Retain:  true,
		}); err != nil {
			s.logger.Debug("mqttsink state publish failed", "entity", entity, "error", err)
		}
	}
}
