package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/wpasession/p2pctl/internal/dashboard"
	"github.com/wpasession/p2pctl/internal/mqttsink"
	"github.com/wpasession/p2pctl/internal/peerstore"
	"github.com/wpasession/p2pctl/internal/session"
	"github.com/wpasession/p2pctl/internal/transport"
	"github.com/wpasession/p2pctl/internal/wpaevent"
	"github.com/wpasession/p2pctl/internal/wpapath"
)

func runAttach(logger *slog.Logger, configPath string) {
	cfg := loadConfig(logger, configPath)
	id := instanceID(cfg)

	if bin, err := wpapath.SearchPath(cfg.CtrlSocket.SupplicantBinary); err != nil {
		logger.Warn("supplicant binary not found on PATH, assuming it is already running",
			"binary", cfg.CtrlSocket.SupplicantBinary, "error", err)
	} else {
		logger.Info("found supplicant binary", "path", bin)
	}

	tr := transport.NewCtrlSocket(logger)
	mgr := session.New(tr)
	wireSessionLogging(mgr, logger, cfg)

	ctx, cancel := setupSignalContext()
	defer cancel()

	openCtx, openCancel := context.WithTimeout(ctx, 10*time.Second)
	defer openCancel()
	if err := mgr.Open(openCtx, cfg.CtrlSocket.Path); err != nil {
		logger.Error("failed to open control socket", "path", cfg.CtrlSocket.Path, "error", err)
		os.Exit(1)
	}
	defer mgr.Close()
	logger.Info("attached to control socket", "path", cfg.CtrlSocket.Path)

	if cfg.PeerStore.Enabled {
		store, err := peerstore.Open(cfg.PeerStore.DBPath, logger)
		if err != nil {
			logger.Error("failed to open peer store", "path", cfg.PeerStore.DBPath, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		mgr.AddEventListener(store.HandleEvent,
			wpaevent.KindP2pDeviceFound, wpaevent.KindP2pDeviceLost,
			wpaevent.KindCtrlEventConnected, wpaevent.KindCtrlEventDisconnected)
		logger.Info("peer store enabled", "path", cfg.PeerStore.DBPath)
	}

	if cfg.MQTT.Configured() {
		sink := mqttsink.New(cfg.MQTT, id, logger)
		// No kind filter: last_event should reflect the most recent
		// event of any kind, not just the four that move peer_count
		// and link_state.
		mgr.AddEventListener(sink.HandleEvent)
		go func() {
			if err := sink.Start(ctx); err != nil {
				logger.Error("mqtt sink stopped", "error", err)
			}
		}()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			sink.Stop(stopCtx)
		}()
	}

	if cfg.Dashboard.Enabled {
		dash, err := dashboard.New(cfg.Dashboard.Address, cfg.Dashboard.Port, cfg.Dashboard.Token, logger)
		if err != nil {
			logger.Error("failed to start dashboard", "error", err)
			os.Exit(1)
		}
		dash.SetSnapshotSource(func() []wpaevent.EventRecord { return mgr.RecentEvents(32) })
		mgr.AddEventListener(dash.Broadcast)
		go func() {
			if err := dash.Start(ctx); err != nil {
				logger.Error("dashboard server stopped", "error", err)
			}
		}()
	}

	if os.Getenv("P2PCTL_UNTIL_IDLE") != "" {
		runUntilIdle(mgr, logger)
		return
	}

	if err := mgr.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session run stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("p2pctl stopped")
}

// runUntilIdle pumps the session manager until its dispatcher and
// inbound line buffer both go quiescent, then returns. Set
// P2PCTL_UNTIL_IDLE to exercise this path; it is meant for smoke-testing
// sink wiring (peer store, MQTT, dashboard) against a control socket
// without running the process forever.
func runUntilIdle(mgr *session.Manager, logger *slog.Logger) {
	const timeout = 5 * time.Second
	deadline := time.Now().Add(timeout)
	for !mgr.Quiescent() {
		if time.Now().After(deadline) {
			logger.Warn("until-idle diagnostic timed out before quiescence", "timeout", timeout)
			return
		}
		mgr.PumpOnce()
		time.Sleep(10 * time.Millisecond)
	}
	logger.Info("until-idle diagnostic: dispatcher and line buffer quiescent")
}
