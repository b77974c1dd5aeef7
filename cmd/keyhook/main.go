package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dooshek/keyhook/internal/config"
	"github.com/dooshek/keyhook/internal/dbusctl"
	"github.com/dooshek/keyhook/internal/fileops"
	"github.com/dooshek/keyhook/internal/hook"
	"github.com/dooshek/keyhook/internal/logger"
	"github.com/dooshek/keyhook/internal/replay"
	"github.com/dooshek/keyhook/internal/stream"
	"github.com/dooshek/keyhook/internal/trace"
	"github.com/dooshek/keyhook/pkg/keyevent"
	"github.com/fatih/color"
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

// consoleListener prints each captured event, coloring by event kind and
// flagging action keys.
func consoleListener() hook.Listener {
	pressed := color.New(color.FgGreen)
	released := color.New(color.Faint)
	typed := color.New(color.FgCyan)
	action := color.New(color.FgYellow, color.Bold)

	return hook.ListenerFunc(func(ev *keyevent.KeyEvent) {
		c := pressed
		switch ev.Kind() {
		case keyevent.KeyReleased:
			c = released
		case keyevent.KeyTyped:
			c = typed
		}
		if keyevent.IsActionKey(ev.Code) {
			c = action
		}
		c.Println(ev.String())
	})
}

func runReplay(tracePath string, speed float64) error {
	if !strings.ContainsRune(tracePath, os.PathSeparator) {
		fileOps, err := fileops.NewDefaultFileOps()
		if err != nil {
			return fmt.Errorf("failed to initialize file operations: %w", err)
		}
		tracePath = fileOps.TracePath(tracePath)
	}

	events, err := trace.Load(tracePath)
	if err != nil {
		return fmt.Errorf("failed to load trace: %w", err)
	}

	logger.Infof("Replaying %d events from %s", len(events), tracePath)
	player := &replay.Player{Speed: speed}
	return player.Play(context.Background(), events)
}

func main() {
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	logFilename := flag.String("log-filename", "", "Log to file instead of stdout")
	device := flag.String("device", "", "Keyboard device path (default: first keyboard found)")
	recordTrace := flag.String("record", "", "Record captured events to the named trace file")
	replayTrace := flag.String("replay", "", "Replay the named trace file and exit")
	replaySpeed := flag.Float64("replay-speed", 1.0, "Replay speed multiplier")
	wsListen := flag.String("ws-listen", "", "Serve the websocket event tap on this address")
	dbusEnable := flag.Bool("dbus", false, "Expose pause/resume control on the session bus")
	quiet := flag.Bool("quiet", false, "Do not print captured events to the console")
	flag.Parse()

	logger.SetLevel(*logLevel)
	if *logFilename != "" {
		if err := logger.SetOutputFile(*logFilename); err != nil {
			logger.Error("Failed to set log file", err)
			os.Exit(1)
		}
		defer logger.CloseLogFile()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	// Flags take precedence over the config file.
	if *device == "" {
		*device = cfg.Device
	}
	if *wsListen == "" {
		*wsListen = cfg.WSListen
	}
	if !*dbusEnable {
		*dbusEnable = cfg.DBus
	}
	if cfg.LogLevel != "" && *logLevel == "info" {
		logger.SetLevel(cfg.LogLevel)
	}

	if len(cfg.Labels) > 0 {
		keyevent.SetLabels(keyevent.LabelMap(cfg.Labels))
		logger.Debugf("Loaded %d key label overrides", len(cfg.Labels))
	}

	if *replayTrace != "" {
		if err := runReplay(*replayTrace, *replaySpeed); err != nil {
			logger.Error("Replay failed", err)
			os.Exit(1)
		}
		return
	}

	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		logger.Error("Failed to initialize file operations", err)
		os.Exit(1)
	}
	if err := fileOps.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", err)
		os.Exit(1)
	}

	if err := fileOps.CheckPID(); err != nil {
		if errors.Is(err, fileops.ErrProcessAlreadyRunning) {
			logger.Errorf("Another keyhook instance is already running")
		} else {
			logger.Error("Failed to check PID file", err)
		}
		os.Exit(1)
	}
	if err := fileOps.SavePID(); err != nil {
		logger.Error("Failed to save PID file", err)
		os.Exit(1)
	}
	defer fileOps.HandleExit()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := hook.NewDispatcher()
	defer dispatcher.Close()

	if !*quiet {
		dispatcher.AddListener(consoleListener())
	}

	if *recordTrace != "" {
		recorder, err := trace.NewRecorder(fileOps.TracePath(*recordTrace))
		if err != nil {
			logger.Error("Failed to create trace recorder", err)
			os.Exit(1)
		}
		defer recorder.Close()
		dispatcher.AddListener(recorder)
		logger.Infof("Recording events to %s", fileOps.TracePath(*recordTrace))
	}

	h := hook.New(dispatcher, *device)

	if *wsListen != "" {
		tap := stream.NewServer(*wsListen)
		dispatcher.AddListener(tap)
		go func() {
			if err := tap.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Event tap server stopped", err)
			}
		}()
	}

	if *dbusEnable {
		dbusSrv := dbusctl.NewServer(h)
		if err := dbusSrv.Start(); err != nil {
			logger.Error("Failed to start D-Bus control service", err)
			os.Exit(1)
		}
		defer dbusSrv.Stop()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Infof("Received signal %v, shutting down...", sig)
		cancel()
		h.Stop()
	}()

	if err := h.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Hook stopped", err)
		os.Exit(1)
	}
}
