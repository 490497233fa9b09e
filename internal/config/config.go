// Package config handles p2pctl configuration loading.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultSearchPaths returns the config file search order. An
// explicit path (from -config flag) is checked first. Then:
// ./p2pctl.yaml, ~/.config/p2pctl/config.yaml, /config/config.yaml,
// /etc/p2pctl/config.yaml.
func DefaultSearchPaths() []string {
	paths := []string{"p2pctl.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "p2pctl", "config.yaml"))
	}

	paths = append(paths, "/config/config.yaml") // Container convention
	paths = append(paths, "/etc/p2pctl/config.yaml")
	return paths
}

// FindConfig locates a config file. If explicit is non-empty, it must
// exist. Otherwise, searches DefaultSearchPaths and returns the first
// that exists.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	for _, p := range DefaultSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no config file found (searched: %v)", DefaultSearchPaths())
}

// Config holds all p2pctl configuration.
type Config struct {
	CtrlSocket CtrlSocketConfig `yaml:"ctrl_socket"`
	PeerStore  PeerStoreConfig  `yaml:"peer_store"`
	MQTT       MQTTConfig       `yaml:"mqtt"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	LogLevel   string           `yaml:"log_level"`
}

// CtrlSocketConfig locates the supplicant control interface.
type CtrlSocketConfig struct {
	// Path is the supplicant's control socket, e.g.
	// /var/run/wpa_supplicant/p2p-dev-wlan0.
	Path string `yaml:"path"`
	// SupplicantBinary is the executable name searched for on PATH
	// at attach time, as a diagnostic only: a miss is logged as a
	// warning and p2pctl never launches the supplicant itself.
	SupplicantBinary string `yaml:"supplicant_binary"`
	// ReceiveTimeoutMs is loaded and defaulted to 2000, but nothing
	// reads it: the session manager's inner transport read uses its
	// own fixed 2 s timeout.
	ReceiveTimeoutMs int `yaml:"receive_timeout_ms"`
}

// PeerStoreConfig configures the discovered-peer history database.
type PeerStoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// MQTTConfig configures the optional Home Assistant MQTT bridge.
type MQTTConfig struct {
	Enabled         bool   `yaml:"enabled"`
	BrokerURL       string `yaml:"broker_url"`
	ClientID        string `yaml:"client_id"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	BaseTopic       string `yaml:"base_topic"`
	DiscoveryPrefix string `yaml:"discovery_prefix"`
}

// DashboardConfig configures the optional websocket live dashboard.
type DashboardConfig struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Port    int    `yaml:"port"`
	Token   string `yaml:"token"`
}

// Configured reports whether the MQTT bridge has enough information
// to attempt a connection.
func (c MQTTConfig) Configured() bool {
	return c.Enabled && c.BrokerURL != ""
}

// Load reads configuration from a YAML file, expands environment
// variables, applies defaults for any unset fields, and validates the
// result. After Load returns successfully, all fields are usable
// without additional nil/empty checks.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${HOME}, ${MQTT_PASSWORD}).
	// This is a convenience for container deployments; the
	// recommended approach is to put values directly in the config
	// file.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in zero-value fields with sensible defaults.
// Called automatically by Load. After this, callers can read any
// field without checking for empty strings or zero values.
func (c *Config) applyDefaults() {
	if c.CtrlSocket.SupplicantBinary == "" {
		c.CtrlSocket.SupplicantBinary = "wpa_supplicant"
	}
	if c.CtrlSocket.ReceiveTimeoutMs == 0 {
		c.CtrlSocket.ReceiveTimeoutMs = 2000
	}
	if c.PeerStore.DBPath == "" {
		c.PeerStore.DBPath = "./peers.db"
	}
	if c.MQTT.ClientID == "" {
		c.MQTT.ClientID = "p2pctl"
	}
	if c.MQTT.BaseTopic == "" {
		c.MQTT.BaseTopic = "p2pctl"
	}
	if c.MQTT.DiscoveryPrefix == "" {
		c.MQTT.DiscoveryPrefix = "homeassistant"
	}
	if c.Dashboard.Port == 0 {
		c.Dashboard.Port = 8787
	}
}

// Validate checks that the configuration is internally consistent. It
// runs after applyDefaults, so it can assume defaults are populated.
// Returns an error describing the first problem found, or nil.
func (c *Config) Validate() error {
	if c.CtrlSocket.Path == "" {
		return fmt.Errorf("ctrl_socket.path is required")
	}
	if c.Dashboard.Enabled && (c.Dashboard.Port < 1 || c.Dashboard.Port > 65535) {
		return fmt.Errorf("dashboard.port %d out of range (1-65535)", c.Dashboard.Port)
	}
	if c.LogLevel != "" {
		if _, err := ParseLogLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Default returns a default configuration pointed at the common
// p2p-dev interface control socket path. All defaults are already
// applied.
func Default() *Config {
	cfg := &Config{
		CtrlSocket: CtrlSocketConfig{
			Path: "/var/run/wpa_supplicant/p2p-dev-wlan0",
		},
	}
	cfg.applyDefaults()
	return cfg
}
