package main

import (
	"log/slog"
	"os"

	"github.com/wpasession/p2pctl/internal/bootstrap"
)

// runBootstrap renders a DPP bootstrapping QR code to outputPath. The
// channel and MAC are read from the environment (P2PCTL_BOOTSTRAP_CHANNEL,
// P2PCTL_BOOTSTRAP_MAC) since the bootstrap command takes no flags of
// its own beyond the output path.
func runBootstrap(logger *slog.Logger, outputPath string) {
	info := bootstrap.Info{
		Channel: envInt("P2PCTL_BOOTSTRAP_CHANNEL", 6),
		MAC:     os.Getenv("P2PCTL_BOOTSTRAP_MAC"),
	}

	const size = 256
	if err := bootstrap.WritePNGFile(info, size, outputPath); err != nil {
		logger.Error("failed to render bootstrap QR code", "error", err)
		os.Exit(1)
	}
	logger.Info("bootstrap QR code written", "path", outputPath, "uri", info.URI())
}

func envInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return def
		}
		n = n*10 + int(c-'0')
	}
	return n
}
