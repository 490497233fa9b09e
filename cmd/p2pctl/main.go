// Command p2pctl attaches to a wpa_supplicant P2P control interface,
// dispatches parsed events to optional sinks (peer history, MQTT,
// dashboard), and can render a session report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/wpasession/p2pctl/internal/buildinfo"
	"github.com/wpasession/p2pctl/internal/config"
	"github.com/wpasession/p2pctl/internal/session"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	logger := newLogger(slog.LevelInfo)

	if flag.NArg() == 0 {
		printUsage()
		return
	}

	switch flag.Arg(0) {
	case "attach":
		runAttach(logger, *configPath)
	case "report":
		runReport(logger, *configPath)
	case "bootstrap":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "usage: p2pctl bootstrap <output.png>")
			os.Exit(1)
		}
		runBootstrap(logger, flag.Arg(1))
	case "version":
		fmt.Println(buildinfo.String())
		for k, v := range buildinfo.BuildInfo() {
			fmt.Printf("  %-12s %s\n", k+":", v)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", flag.Arg(0))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("p2pctl - Wi-Fi Direct control interface client")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  attach     Attach to the control socket and run sinks until interrupted")
	fmt.Println("             (set P2PCTL_UNTIL_IDLE to exit once the dispatcher goes idle)")
	fmt.Println("  report     Render a peer/session report from the peer store")
	fmt.Println("  bootstrap  Render a DPP bootstrapping QR code")
	fmt.Println("  version    Show version")
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

// newLogger builds a JSON-handler logger when stdout is not a TTY (the
// common case: container/systemd stdout) and a text-handler logger
// when stdout is a TTY, mirroring how operators actually read p2pctl
// output in a log aggregator versus at a desk.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, ReplaceAttr: config.ReplaceLogLevelNames}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func loadConfig(logger *slog.Logger, configPath string) *config.Config {
	cfgPath, err := config.FindConfig(configPath)
	if err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}
	if cfg.LogLevel != "" {
		if level, err := config.ParseLogLevel(cfg.LogLevel); err == nil {
			*logger = *newLogger(level)
		}
	}
	return cfg
}

// instanceID returns a stable identifier for this p2pctl deployment,
// used as the MQTT client/device identifier.
func instanceID(cfg *config.Config) string {
	if cfg.MQTT.ClientID != "" {
		return cfg.MQTT.ClientID
	}
	return uuid.NewString()
}

// sessionLogLevel maps the configured application log level onto the
// session manager's own LogLevel scale, so the manager's wire-level
// trace log (EventRecord.String() on every dispatched event) surfaces
// through the same logger and the same "trace" threshold as the rest
// of the process.
func sessionLogLevel(cfg *config.Config) session.LogLevel {
	lvl, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return session.LogInfo
	}
	switch {
	case lvl <= config.LevelTrace:
		return session.LogTrace
	case lvl <= slog.LevelDebug:
		return session.LogDebug
	case lvl <= slog.LevelInfo:
		return session.LogInfo
	case lvl <= slog.LevelWarn:
		return session.LogWarning
	default:
		return session.LogError
	}
}

// wireSessionLogging bridges the session manager's internal log sink
// to logger, so wire-level diagnostics (including the per-event trace
// log) are visible through the same output the rest of p2pctl uses.
func wireSessionLogging(mgr *session.Manager, logger *slog.Logger, cfg *config.Config) {
	mgr.SetLogLevel(sessionLogLevel(cfg))
	mgr.SetLogCallback(func(lvl session.LogLevel, text string) {
		switch lvl {
		case session.LogTrace:
			logger.Log(context.Background(), config.LevelTrace, text)
		case session.LogDebug:
			logger.Debug(text)
		case session.LogWarning:
			logger.Warn(text)
		case session.LogError:
			logger.Error(text)
		default:
			logger.Info(text)
		}
	})
}

func setupSignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}
