package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/wpasession/p2pctl/internal/peerstore"
	"github.com/wpasession/p2pctl/internal/report"
	"github.com/wpasession/p2pctl/internal/wpaevent"
)

func runReport(logger *slog.Logger, configPath string) {
	cfg := loadConfig(logger, configPath)

	store, err := peerstore.Open(cfg.PeerStore.DBPath, logger)
	if err != nil {
		logger.Error("failed to open peer store", "path", cfg.PeerStore.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	peers, err := store.ListPeers()
	if err != nil {
		logger.Error("failed to list peers", "error", err)
		os.Exit(1)
	}

	// The peer store has no raw event ring buffer of its own (that
	// lives on the live session.Manager, which "report" does not
	// attach); a standalone report is peer-directory-only.
	var recent []wpaevent.EventRecord

	md := report.RenderMarkdown(time.Now(), recent, peers)
	html, err := report.RenderHTML(md)
	if err != nil {
		logger.Error("failed to render report", "error", err)
		os.Exit(1)
	}

	fmt.Print(html)
}
